// file: internals/features/school/grades/controller/grade_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/grades/dto"
	m "schoolku_backend/internals/features/school/grades/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
	"schoolku_backend/internals/constants"
)

/* =========================
   Controller & Constructor
   ========================= */

type GradeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *GradeController {
	return &GradeController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is required")
	}
	return uuid.Parse(idStr)
}

/* =========================
   Add (admin)
   ========================= */

func (ctl *GradeController) Add(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	schoolID, err := act.RequireSchool()
	if err != nil {
		return err
	}

	var req d.AddGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	// student harus milik sekolah ini dan sudah masuk kelas;
	// kelas grade diambil dari kelas student, bukan dari payload.
	var student userModel.UserModel
	if err := ctl.DB.First(&student, "user_id = ?", req.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if student.UserRole != constants.RoleStudent ||
		student.UserSchoolID == nil || *student.UserSchoolID != schoolID {
		return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
	}
	if student.UserClassID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student belum terdaftar di kelas manapun")
	}

	ok, err := helperAuth.SubjectInSchool(ctl.DB, req.SubjectID, schoolID)
	if err := helperAuth.EnsureInSchool(ok, err, "Subject"); err != nil {
		return err
	}

	gradeType := req.Type
	if gradeType == "" {
		gradeType = "regular"
	}

	grade := m.StudentGradeModel{
		GradeStudentID: req.StudentID,
		GradeSubjectID: req.SubjectID,
		GradeClassID:   *student.UserClassID,
		GradeScore:     req.Score,
		GradeType:      gradeType,
	}
	if err := ctl.DB.Create(&grade).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Nilai berhasil ditambahkan", d.FromModel(&grade))
}

/* =========================
   BulkUpdate (teacher/admin)
   ========================= */

func (ctl *GradeController) BulkUpdate(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}

	var req d.BulkUpdateGradesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	updated := make([]m.StudentGradeModel, 0, len(req.Items))
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Items {
			var grade m.StudentGradeModel
			if err := tx.First(&grade, "grade_id = ?", item.GradeID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusNotFound, "Nilai tidak ditemukan")
				}
				return err
			}

			if err := ctl.authorizeGrade(tx, act, &grade); err != nil {
				return err
			}

			grade.GradeScore = item.Score
			if err := tx.Save(&grade).Error; err != nil {
				return err
			}
			updated = append(updated, grade)
		}
		return nil
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Nilai diperbarui", d.FromModels(updated))
}

// authorizeGrade: teacher hanya boleh menyentuh nilai mapel yang dia
// pegang; admin harus satu sekolah dengan mapelnya.
func (ctl *GradeController) authorizeGrade(tx *gorm.DB, act helperAuth.Actor, grade *m.StudentGradeModel) error {
	if act.IsTeacher() {
		var n int64
		if err := tx.Table("subjects").
			Where("subject_id = ? AND subject_teacher_id = ?", grade.GradeSubjectID, act.ID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		return nil
	}

	schoolID, err := act.RequireSchool()
	if err != nil {
		return err
	}
	ok, err := helperAuth.SubjectInSchool(tx, grade.GradeSubjectID, schoolID)
	return helperAuth.EnsureInSchool(ok, err, "Nilai")
}

/* =========================
   Listing
   ========================= */

// Mine: semua nilai milik student yang login.
func (ctl *GradeController) Mine(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}

	var rows []m.StudentGradeModel
	if err := ctl.DB.
		Where("grade_student_id = ?", act.ID).
		Order("grade_recorded_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromModels(rows))
}

// StudentGrades: nilai satu student, untuk teacher/admin satu sekolah.
func (ctl *GradeController) StudentGrades(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	schoolID, err := act.RequireSchool()
	if err != nil {
		return err
	}

	studentID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ok, err := helperAuth.UserInSchool(ctl.DB, studentID, schoolID)
	if err := helperAuth.EnsureInSchool(ok, err, "Student"); err != nil {
		return err
	}

	var rows []m.StudentGradeModel
	if err := ctl.DB.
		Where("grade_student_id = ?", studentID).
		Order("grade_recorded_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromModels(rows))
}
