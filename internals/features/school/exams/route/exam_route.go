// file: internals/features/school/exams/route/exam_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examctl "schoolku_backend/internals/features/school/exams/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// UserExamRoutes: semua route ujian hidup di bawah /api/u (semua role
// login); otorisasi detil per-handler karena aksesnya role-switch.
func UserExamRoutes(user fiber.Router, db *gorm.DB) {
	ctl := examctl.New(db, validator.New())

	grp := user.Group("/exams")
	grp.Post("/", authMiddleware.TeacherOrAdmin("membuat ujian"), ctl.Create)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Get("/:id/questions", ctl.Questions)
	grp.Post("/:id/submissions", authMiddleware.StudentOnly("mengumpulkan jawaban"), ctl.Submit)
	grp.Get("/:id/submissions", authMiddleware.TeacherOrAdmin("laporan ujian"), ctl.Reports)
}
