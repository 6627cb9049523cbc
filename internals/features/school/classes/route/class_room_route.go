// file: internals/features/school/classes/route/class_room_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classctl "schoolku_backend/internals/features/school/classes/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// AdminClassRoomRoutes: CRUD kelas + enroll (group sudah admin-only).
func AdminClassRoomRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := classctl.New(db, validator.New())

	grp := admin.Group("/classes")
	grp.Post("/", ctl.Create)
	grp.Get("/:id", ctl.GetByID)
	grp.Delete("/:id", ctl.Delete)
	grp.Post("/:id/enroll", ctl.Enroll)
}

// UserClassRoomRoutes: list kelas untuk teacher & admin.
func UserClassRoomRoutes(user fiber.Router, db *gorm.DB) {
	ctl := classctl.New(db, validator.New())

	grp := user.Group("/classes", authMiddleware.TeacherOrAdmin("daftar kelas"))
	grp.Get("/", ctl.List)
}
