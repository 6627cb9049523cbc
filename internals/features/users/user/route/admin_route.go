// file: internals/features/users/user/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userctl "schoolku_backend/internals/features/users/user/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// AdminUserRoutes: manajemen user per sekolah (group sudah admin-only).
func AdminUserRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := userctl.New(db, validator.New())

	grp := admin.Group("/users")
	grp.Post("/", ctl.Create)
	grp.Delete("/:id", ctl.Delete)

	grp.Get("/teachers", ctl.Teachers)
	grp.Get("/teachers/:id", ctl.TeacherByID)
	grp.Get("/students", ctl.Students)
	grp.Get("/students/top", ctl.TopStudents)
	grp.Get("/dashboard", ctl.DashboardStats)
}

// UserLookupRoutes: detail student untuk teacher & admin.
func UserLookupRoutes(user fiber.Router, db *gorm.DB) {
	ctl := userctl.New(db, validator.New())

	grp := user.Group("/students", authMiddleware.TeacherOrAdmin("data siswa"))
	grp.Get("/:id", ctl.StudentByID)
}
