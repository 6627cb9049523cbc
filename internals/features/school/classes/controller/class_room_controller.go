// file: internals/features/school/classes/controller/class_room_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/classes/dto"
	m "schoolku_backend/internals/features/school/classes/model"
	gradeModel "schoolku_backend/internals/features/school/grades/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	"schoolku_backend/internals/constants"
)

type ClassRoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ClassRoomController {
	return &ClassRoomController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is required")
	}
	return uuid.Parse(idStr)
}

/* =========================
   Create (nama unik per sekolah)
   ========================= */

func (ctl *ClassRoomController) Create(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	schoolID, err := act.RequireSchool()
	if err != nil {
		return err
	}

	var req d.CreateClassRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	name := strings.TrimSpace(req.Name)

	var existing m.ClassRoomModel
	err = ctl.DB.
		Where("class_room_name = ? AND class_room_school_id = ?", name, schoolID).
		First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Kelas dengan nama ini sudah ada di sekolah kamu")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	room := m.ClassRoomModel{
		ClassRoomName:     name,
		ClassRoomSchoolID: schoolID,
	}
	// unique index (school, name) jadi guard terakhir saat race
	if err := ctl.DB.Create(&room).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Kelas berhasil dibuat", d.FromModel(&room))
}

/* =========================
   List & Detail
   ========================= */

func (ctl *ClassRoomController) List(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	schoolID, err := act.RequireSchool()
	if err != nil {
		return err
	}

	var rooms []m.ClassRoomModel
	if err := ctl.DB.
		Where("class_room_school_id = ?", schoolID).
		Order("class_room_name ASC").
		Find(&rooms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromModels(rooms))
}

func (ctl *ClassRoomController) GetByID(c *fiber.Ctx) error {
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

	var room m.ClassRoomModel
	if err := ctl.DB.
		Where("class_room_id = ? AND class_room_school_id = ?", id, schoolID).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "ClassRoom tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromModel(&room))
}

/* =========================
   Delete
   ========================= */

func (ctl *ClassRoomController) Delete(c *fiber.Ctx) error {
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

	var room m.ClassRoomModel
	if err := ctl.DB.
		Where("class_room_id = ? AND class_room_school_id = ?", id, schoolID).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "ClassRoom tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Delete(&m.ClassRoomModel{}, "class_room_id = ?", room.ClassRoomID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Kelas dihapus", d.FromModel(&room))
}

/* =========================
   Enroll (student → kelas)
   ========================= */

func (ctl *ClassRoomController) Enroll(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	schoolID, err := act.RequireSchool()
	if err != nil {
		return err
	}

	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req d.EnrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	ok, err := helperAuth.ClassInSchool(ctl.DB, classID, schoolID)
	if err := helperAuth.EnsureInSchool(ok, err, "ClassRoom"); err != nil {
		return err
	}

	var student struct {
		UserID   uuid.UUID `gorm:"column:user_id"`
		UserRole string    `gorm:"column:user_role"`
	}
	if err := ctl.DB.Table("users").
		Where("user_id = ? AND user_school_id = ?", req.StudentID, schoolID).
		Take(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if student.UserRole != constants.RoleStudent {
		return helper.JsonError(c, fiber.StatusBadRequest, "User tersebut bukan student")
	}

	// pindah kelas + backfill nilai 0 untuk mapel kelas baru (atomic)
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("users").
			Where("user_id = ?", student.UserID).
			Update("user_class_id", classID).Error; err != nil {
			return err
		}

		var subjects []subjectModel.SubjectModel
		if err := tx.Where("subject_class_id = ?", classID).Find(&subjects).Error; err != nil {
			return err
		}
		if len(subjects) == 0 {
			return nil
		}
		grades := make([]gradeModel.StudentGradeModel, 0, len(subjects))
		for _, s := range subjects {
			grades = append(grades, gradeModel.StudentGradeModel{
				GradeStudentID: student.UserID,
				GradeSubjectID: s.SubjectID,
				GradeClassID:   classID,
				GradeScore:     0,
				GradeType:      "regular",
			})
		}
		return tx.Create(&grades).Error
	}); err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Student berhasil didaftarkan ke kelas", fiber.Map{
		"student_id": student.UserID,
		"class_id":   classID,
	})
}
