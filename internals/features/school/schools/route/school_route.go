// file: internals/features/school/schools/route/school_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolctl "schoolku_backend/internals/features/school/schools/controller"
)

// AdminSchoolRoutes: create + detail (group sudah admin-only).
func AdminSchoolRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := schoolctl.New(db, validator.New())

	grp := admin.Group("/schools")
	grp.Post("/", ctl.Create)
	grp.Get("/:id", ctl.GetByID)
}

// UserSchoolRoutes: sekolah milik current user (semua role).
func UserSchoolRoutes(user fiber.Router, db *gorm.DB) {
	ctl := schoolctl.New(db, validator.New())
	user.Get("/school", ctl.MySchool)
}
