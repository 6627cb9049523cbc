// file: internals/features/school/subjects/route/subject_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectctl "schoolku_backend/internals/features/school/subjects/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// AdminSubjectRoutes: create & delete (group sudah admin-only).
func AdminSubjectRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := subjectctl.New(db, validator.New())

	grp := admin.Group("/subjects")
	grp.Post("/", ctl.Create)
	grp.Delete("/:id", ctl.Delete)
}

// UserSubjectRoutes: list & detail untuk teacher/admin.
func UserSubjectRoutes(user fiber.Router, db *gorm.DB) {
	ctl := subjectctl.New(db, validator.New())

	grp := user.Group("/subjects", authMiddleware.TeacherOrAdmin("data mapel"))
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
}
