// file: internals/features/school/grades/route/grade_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradectl "schoolku_backend/internals/features/school/grades/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// AdminGradeRoutes: tambah nilai manual + rekap per student
// (group sudah admin-only).
func AdminGradeRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := gradectl.New(db, validator.New())
	admin.Post("/grades", ctl.Add)
	admin.Get("/students/:id/grades", ctl.StudentGrades)
}

// UserGradeRoutes: nilai milik sendiri + bulk update oleh pengajar.
func UserGradeRoutes(user fiber.Router, db *gorm.DB) {
	ctl := gradectl.New(db, validator.New())

	user.Get("/grades/mine", authMiddleware.StudentOnly("nilai"), ctl.Mine)
	user.Put("/grades/bulk", authMiddleware.TeacherOrAdmin("update nilai"), ctl.BulkUpdate)
}
