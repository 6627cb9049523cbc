// file: internals/features/school/schedules/route/schedule_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schedulectl "schoolku_backend/internals/features/school/schedules/controller"
)

// AdminScheduleRoutes: CRUD jadwal (group sudah admin-only).
func AdminScheduleRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := schedulectl.New(db, validator.New())

	grp := admin.Group("/schedules")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}

// UserScheduleRoutes: jadwal milik current user.
func UserScheduleRoutes(user fiber.Router, db *gorm.DB) {
	ctl := schedulectl.New(db, validator.New())
	user.Get("/schedules/mine", ctl.Mine)
}
