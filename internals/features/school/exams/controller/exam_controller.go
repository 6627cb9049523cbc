// file: internals/features/school/exams/controller/exam_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/exams/dto"
	m "schoolku_backend/internals/features/school/exams/model"
	svc "schoolku_backend/internals/features/school/exams/service"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type ExamController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ExamController {
	return &ExamController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is required")
	}
	return uuid.Parse(idStr)
}

// loadExamScoped mengambil exam + verifikasi akses per role:
// admin harus satu sekolah, teacher harus pemilik, student harus
// sekelas. Cross-tenant / bukan pemilik dibalas 404.
func (ctl *ExamController) loadExamScoped(c *fiber.Ctx, act helperAuth.Actor, examID uuid.UUID) (*m.ExamModel, error) {
	var exam m.ExamModel
	if err := ctl.DB.First(&exam, "exam_id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Ujian tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	switch {
	case act.IsAdmin():
		schoolID, err := act.RequireSchool()
		if err != nil {
			return nil, err
		}
		ok, err := helperAuth.ExamInSchool(ctl.DB, examID, schoolID)
		if err := helperAuth.EnsureInSchool(ok, err, "Ujian"); err != nil {
			return nil, err
		}
	case act.IsTeacher():
		if exam.ExamTeacherID == nil || *exam.ExamTeacherID != act.ID {
			return nil, fiber.NewError(fiber.StatusNotFound, "Ujian tidak ditemukan")
		}
	case act.IsStudent():
		if act.ClassID == nil || *act.ClassID != exam.ExamClassID {
			return nil, fiber.NewError(fiber.StatusNotFound, "Ujian tidak ditemukan")
		}
	default:
		return nil, fiber.NewError(fiber.StatusForbidden, "Access denied")
	}
	return &exam, nil
}

/* =========================
   Create (teacher pemilik mapel, atau admin)
   ========================= */

func (ctl *ExamController) Create(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}

	var req d.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	for _, q := range req.Questions {
		if q.CorrectIndex >= len(q.Options) {
			return helper.JsonError(c, fiber.StatusBadRequest, "question_correct_index di luar range options")
		}
	}

	// subject harus ter-assign ke kelas yang diminta
	var subject subjectModel.SubjectModel
	if err := ctl.DB.First(&subject, "subject_id = ? AND subject_class_id = ?", req.SubjectID, req.ClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject tidak ditemukan atau tidak ter-assign ke kelas itu")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var teacherID *uuid.UUID
	switch {
	case act.IsTeacher():
		// teacher hanya boleh bikin ujian untuk mapel yang dia pegang
		if subject.SubjectTeacherID == nil || *subject.SubjectTeacherID != act.ID {
			return helper.JsonError(c, fiber.StatusForbidden, "Anda bukan pengajar mapel ini")
		}
		id := act.ID
		teacherID = &id
	case act.IsAdmin():
		schoolID, err := act.RequireSchool()
		if err != nil {
			return err
		}
		ok, err := helperAuth.SubjectInSchool(ctl.DB, req.SubjectID, schoolID)
		if err := helperAuth.EnsureInSchool(ok, err, "Subject"); err != nil {
			return err
		}
		teacherID = subject.SubjectTeacherID
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Access denied")
	}

	// identitas ujian (title,type,subject,class) unik
	var dup int64
	if err := ctl.DB.Model(&m.ExamModel{}).
		Where("exam_title = ? AND exam_type = ? AND exam_subject_id = ? AND exam_class_id = ?",
			req.Title, req.Type, req.SubjectID, req.ClassID).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Ujian dengan judul, tipe, mapel, dan kelas yang sama sudah ada")
	}

	exam := m.ExamModel{
		ExamTitle:           req.Title,
		ExamType:            req.Type,
		ExamDescription:     req.Description,
		ExamDurationMinutes: req.DurationMinutes,
		ExamSubjectID:       req.SubjectID,
		ExamClassID:         req.ClassID,
		ExamTeacherID:       teacherID,
	}
	questions := make([]m.QuestionModel, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, m.QuestionModel{
			QuestionText:         q.Text,
			QuestionOptions:      pq.StringArray(q.Options),
			QuestionCorrectIndex: q.CorrectIndex,
			QuestionPoints:       q.Points,
		})
	}

	if err := svc.CreateExamWithQuestions(ctl.DB, &exam, questions); err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Ujian berhasil dibuat", d.ExamDetailResponse{
		ExamResponse: d.FromExamModel(&exam),
		Questions:    d.FromQuestionModels(questions, true),
	})
}

/* =========================
   List (role switch)
   ========================= */

func (ctl *ExamController) List(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}

	var rows []m.ExamModel
	switch {
	case act.IsStudent():
		if act.ClassID != nil {
			if err := ctl.DB.
				Where("exam_class_id = ?", *act.ClassID).
				Order("exam_created_at DESC").
				Find(&rows).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
			}
		}
	case act.IsTeacher():
		if err := ctl.DB.
			Where("exam_teacher_id = ?", act.ID).
			Order("exam_created_at DESC").
			Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	case act.IsAdmin():
		schoolID, err := act.RequireSchool()
		if err != nil {
			return err
		}
		if err := ctl.DB.
			Joins("JOIN class_rooms ON class_rooms.class_room_id = exams.exam_class_id").
			Where("class_rooms.class_room_school_id = ?", schoolID).
			Order("exam_created_at DESC").
			Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonOK(c, "ok", d.FromExamModels(rows))
}

/* =========================
   Detail & Questions (correct index di-redact untuk student)
   ========================= */

func (ctl *ExamController) GetByID(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	exam, err := ctl.loadExamScoped(c, act, id)
	if err != nil {
		return err
	}

	var questions []m.QuestionModel
	if err := ctl.DB.Where("question_exam_id = ?", exam.ExamID).Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", d.ExamDetailResponse{
		ExamResponse: d.FromExamModel(exam),
		Questions:    d.FromQuestionModels(questions, !act.IsStudent()),
	})
}

func (ctl *ExamController) Questions(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	exam, err := ctl.loadExamScoped(c, act, id)
	if err != nil {
		return err
	}

	var questions []m.QuestionModel
	if err := ctl.DB.Where("question_exam_id = ?", exam.ExamID).Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromQuestionModels(questions, !act.IsStudent()))
}

/* =========================
   Submit (student sekelas)
   ========================= */

func (ctl *ExamController) Submit(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	exam, err := ctl.loadExamScoped(c, act, id)
	if err != nil {
		return err
	}

	var req d.SubmitExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	answers := make([]svc.AnswerSelection, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, svc.AnswerSelection{
			QuestionID:    a.QuestionID,
			SelectedIndex: a.SelectedIndex,
		})
	}

	submission, err := svc.SubmitExam(ctl.DB, exam, act.ID, answers)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Jawaban berhasil dikumpulkan", d.FromSubmissionModel(submission))
}

/* =========================
   Reports (submission list, teacher pemilik / admin)
   ========================= */

func (ctl *ExamController) Reports(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	if act.IsStudent() {
		return helper.JsonError(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	exam, err := ctl.loadExamScoped(c, act, id)
	if err != nil {
		return err
	}

	var rows []m.ExamSubmissionModel
	if err := ctl.DB.
		Where("submission_exam_id = ?", exam.ExamID).
		Order("submission_submitted_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromSubmissionModels(rows))
}
