// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	gradeModel "schoolku_backend/internals/features/school/grades/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	d "schoolku_backend/internals/features/users/user/dto"
	m "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	"schoolku_backend/internals/constants"
)

/* =========================
   Controller & Constructor
   ========================= */

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *UserController {
	return &UserController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is required")
	}
	return uuid.Parse(idStr)
}

/* =========================
   Create (admin, scoped ke sekolah sendiri)
   ========================= */

func (ctl *UserController) Create(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	schoolID, err := act.RequireSchool()
	if err != nil {
		return err
	}

	var req d.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing m.UserModel
	if err := ctl.DB.Where("user_email = ?", email).First(&existing).Error; err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// class hanya relevan untuk student, dan wajib milik sekolah admin
	var classID *uuid.UUID
	if req.Role == constants.RoleStudent && req.ClassID != nil && *req.ClassID != uuid.Nil {
		ok, err := helperAuth.ClassInSchool(ctl.DB, *req.ClassID, schoolID)
		if err := helperAuth.EnsureInSchool(ok, err, "ClassRoom"); err != nil {
			return err
		}
		classID = req.ClassID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	user := m.UserModel{
		UserName:     strings.TrimSpace(req.UserName),
		UserEmail:    email,
		UserPassword: string(hash),
		UserRole:     req.Role,
		UserSchoolID: &schoolID,
		UserClassID:  classID,
	}

	// insert user + backfill nilai 0 untuk semua mapel kelasnya (atomic)
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if user.UserRole == constants.RoleStudent && user.UserClassID != nil {
			return backfillZeroGrades(tx, user.UserID, *user.UserClassID)
		}
		return nil
	}); err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "User berhasil dibuat", d.FromModel(&user))
}

// backfillZeroGrades membuat StudentGrade score=0 untuk setiap subject
// yang sudah ter-assign ke kelas (perilaku lama saat siswa masuk kelas).
func backfillZeroGrades(tx *gorm.DB, studentID, classID uuid.UUID) error {
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
			GradeStudentID: studentID,
			GradeSubjectID: s.SubjectID,
			GradeClassID:   classID,
			GradeScore:     0,
			GradeType:      "regular",
		})
	}
	return tx.Create(&grades).Error
}

/* =========================
   Delete (admin; akun admin tidak pernah boleh dihapus)
   ========================= */

func (ctl *UserController) Delete(c *fiber.Ctx) error {
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

	var target m.UserModel
	if err := ctl.DB.First(&target, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// akun admin tidak bisa dihapus, siapapun pemanggilnya
	if target.UserRole == constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun admin tidak dapat dihapus")
	}
	if target.UserSchoolID == nil || *target.UserSchoolID != schoolID {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	if err := ctl.DB.Delete(&m.UserModel{}, "user_id = ?", target.UserID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "User dihapus", d.FromModel(&target))
}

/* =========================
   Teachers
   ========================= */

func (ctl *UserController) Teachers(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	schoolID, err := act.RequireSchool()
	if err != nil {
		return err
	}

	var teachers []m.UserModel
	if err := ctl.DB.
		Where("user_school_id = ? AND user_role = ?", schoolID, constants.RoleTeacher).
		Order("user_name ASC").
		Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromModels(teachers))
}

func (ctl *UserController) TeacherByID(c *fiber.Ctx) error {
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

	var teacher m.UserModel
	if err := ctl.DB.
		Where("user_id = ? AND user_school_id = ? AND user_role = ?", id, schoolID, constants.RoleTeacher).
		First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromModel(&teacher))
}

/* =========================
   Students (search + pagination)
   ========================= */

func (ctl *UserController) Students(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	schoolID, err := act.RequireSchool()
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.Model(&m.UserModel{}).
		Where("user_school_id = ? AND user_role = ?", schoolID, constants.RoleStudent)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("user_name LIKE ? OR user_email LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var students []m.UserModel
	if err := q.Order("user_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", d.FromModels(students),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// StudentByID boleh diakses teacher & admin (sesama sekolah).
func (ctl *UserController) StudentByID(c *fiber.Ctx) error {
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

	var student m.UserModel
	if err := ctl.DB.
		Where("user_id = ? AND user_school_id = ? AND user_role = ?", id, schoolID, constants.RoleStudent).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromModel(&student))
}

/* =========================
   Top students & dashboard
   ========================= */

func (ctl *UserController) TopStudents(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	schoolID, err := act.RequireSchool()
	if err != nil {
		return err
	}

	var rows []d.TopStudentResponse
	if err := ctl.DB.Table("users").
		Select("users.user_id, users.user_name, users.user_email, COALESCE(AVG(student_grades.grade_score), 0) AS avg_score").
		Joins("LEFT JOIN student_grades ON student_grades.grade_student_id = users.user_id").
		Where("users.user_school_id = ? AND users.user_role = ?", schoolID, constants.RoleStudent).
		Group("users.user_id, users.user_name, users.user_email").
		Order("avg_score DESC").
		Limit(5).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", rows)
}

func (ctl *UserController) DashboardStats(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	schoolID, err := act.RequireSchool()
	if err != nil {
		return err
	}

	var stats d.DashboardStatsResponse
	if err := ctl.DB.Model(&m.UserModel{}).
		Where("user_school_id = ? AND user_role = ?", schoolID, constants.RoleStudent).
		Count(&stats.TotalStudents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.Model(&m.UserModel{}).
		Where("user_school_id = ? AND user_role = ?", schoolID, constants.RoleTeacher).
		Count(&stats.TotalTeachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.Table("class_rooms").
		Where("class_room_school_id = ?", schoolID).
		Count(&stats.TotalClassRooms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", stats)
}
