// file: internals/features/school/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	gradeModel "schoolku_backend/internals/features/school/grades/model"
	d "schoolku_backend/internals/features/school/subjects/dto"
	m "schoolku_backend/internals/features/school/subjects/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	"schoolku_backend/internals/constants"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *SubjectController {
	return &SubjectController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is required")
	}
	return uuid.Parse(idStr)
}

/* =========================
   Create (admin)
   ========================= */

func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	schoolID, err := act.RequireSchool()
	if err != nil {
		return err
	}

	var req d.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	ok, err := helperAuth.ClassInSchool(ctl.DB, req.ClassID, schoolID)
	if err := helperAuth.EnsureInSchool(ok, err, "ClassRoom"); err != nil {
		return err
	}

	// teacher (opsional) harus guru di sekolah yang sama
	if req.TeacherID != nil && *req.TeacherID != uuid.Nil {
		var n int64
		if err := ctl.DB.Table("users").
			Where("user_id = ? AND user_school_id = ? AND user_role = ?", *req.TeacherID, schoolID, constants.RoleTeacher).
			Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if n == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
		}
	}

	name := strings.TrimSpace(req.Name)

	var existing m.SubjectModel
	err = ctl.DB.
		Where("subject_name = ? AND subject_class_id = ?", name, req.ClassID).
		First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Mapel ini sudah ter-assign ke kelas tersebut")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	subject := m.SubjectModel{
		SubjectName:      name,
		SubjectClassID:   req.ClassID,
		SubjectTeacherID: req.TeacherID,
	}

	// insert subject + backfill nilai 0 untuk semua student kelas (atomic)
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&subject).Error; err != nil {
			return err
		}

		var studentIDs []uuid.UUID
		if err := tx.Table("users").
			Where("user_class_id = ? AND user_role = ?", req.ClassID, constants.RoleStudent).
			Pluck("user_id", &studentIDs).Error; err != nil {
			return err
		}
		if len(studentIDs) == 0 {
			return nil
		}
		grades := make([]gradeModel.StudentGradeModel, 0, len(studentIDs))
		for _, sid := range studentIDs {
			grades = append(grades, gradeModel.StudentGradeModel{
				GradeStudentID: sid,
				GradeSubjectID: subject.SubjectID,
				GradeClassID:   req.ClassID,
				GradeScore:     0,
				GradeType:      "regular",
			})
		}
		return tx.Create(&grades).Error
	}); err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Mapel berhasil dibuat", d.FromModel(&subject))
}

/* =========================
   List (teacher → miliknya, admin → satu sekolah)
   ========================= */

func (ctl *SubjectController) List(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}

	var subjects []m.SubjectModel

	if act.IsTeacher() {
		if err := ctl.DB.
			Where("subject_teacher_id = ?", act.ID).
			Order("subject_name ASC").
			Find(&subjects).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonOK(c, "ok", d.FromModels(subjects))
	}

	schoolID, err := act.RequireSchool()
	if err != nil {
		return err
	}
	if err := ctl.DB.
		Joins("JOIN class_rooms ON class_rooms.class_room_id = subjects.subject_class_id").
		Where("class_rooms.class_room_school_id = ?", schoolID).
		Order("subject_name ASC").
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromModels(subjects))
}

/* =========================
   Detail & Delete
   ========================= */

func (ctl *SubjectController) GetByID(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var subject m.SubjectModel
	if err := ctl.DB.First(&subject, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// teacher hanya boleh lihat mapelnya sendiri; admin harus satu sekolah
	if act.IsTeacher() {
		if subject.SubjectTeacherID == nil || *subject.SubjectTeacherID != act.ID {
			return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
		}
	} else {
		schoolID, err := act.RequireSchool()
		if err != nil {
			return err
		}
		ok, err := helperAuth.SubjectInSchool(ctl.DB, subject.SubjectID, schoolID)
		if err := helperAuth.EnsureInSchool(ok, err, "Mapel"); err != nil {
			return err
		}
	}

	return helper.JsonOK(c, "ok", d.FromModel(&subject))
}

func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	schoolID, err := act.RequireSchool()
	if err != nil {
		return err
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ok, err := helperAuth.SubjectInSchool(ctl.DB, id, schoolID)
	if err := helperAuth.EnsureInSchool(ok, err, "Mapel"); err != nil {
		return err
	}

	var subject m.SubjectModel
	if err := ctl.DB.First(&subject, "subject_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.Delete(&m.SubjectModel{}, "subject_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Mapel dihapus", d.FromModel(&subject))
}
