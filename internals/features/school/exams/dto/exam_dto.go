// file: internals/features/school/exams/dto/exam_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/exams/model"
)

/* =========================
   Requests
   ========================= */

type QuestionInput struct {
	Text         string   `json:"question_text" validate:"required,min=1"`
	Options      []string `json:"question_options" validate:"required,min=2,dive,required"`
	CorrectIndex int      `json:"question_correct_index" validate:"min=0"`
	Points       int      `json:"question_points" validate:"required,min=1"`
}

type CreateExamRequest struct {
	Title           string          `json:"exam_title" validate:"required,min=1,max=256"`
	Type            string          `json:"exam_type" validate:"required,oneof=quiz midterm final"`
	Description     *string         `json:"exam_description"`
	DurationMinutes int             `json:"exam_duration_minutes" validate:"required,min=1"`
	SubjectID       uuid.UUID       `json:"exam_subject_id" validate:"required"`
	ClassID         uuid.UUID       `json:"exam_class_id" validate:"required"`
	Questions       []QuestionInput `json:"questions" validate:"required,min=1,dive"`
}

type AnswerInput struct {
	QuestionID    uuid.UUID `json:"question_id" validate:"required"`
	SelectedIndex int       `json:"selected_index" validate:"min=0"`
}

type SubmitExamRequest struct {
	Answers []AnswerInput `json:"answers" validate:"required,dive"`
}

/* =========================
   Responses
   ========================= */

type ExamResponse struct {
	ExamID          uuid.UUID `json:"exam_id"`
	Title           string    `json:"exam_title"`
	Type            string    `json:"exam_type"`
	Description     *string   `json:"exam_description,omitempty"`
	DurationMinutes int       `json:"exam_duration_minutes"`
	SubjectID       uuid.UUID `json:"exam_subject_id"`
	ClassID         uuid.UUID `json:"exam_class_id"`
	TeacherID       *uuid.UUID `json:"exam_teacher_id,omitempty"`
	CreatedAt       time.Time `json:"exam_created_at"`
}

func FromExamModel(e *m.ExamModel) ExamResponse {
	return ExamResponse{
		ExamID:          e.ExamID,
		Title:           e.ExamTitle,
		Type:            e.ExamType,
		Description:     e.ExamDescription,
		DurationMinutes: e.ExamDurationMinutes,
		SubjectID:       e.ExamSubjectID,
		ClassID:         e.ExamClassID,
		TeacherID:       e.ExamTeacherID,
		CreatedAt:       e.ExamCreatedAt,
	}
}

func FromExamModels(rows []m.ExamModel) []ExamResponse {
	out := make([]ExamResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromExamModel(&rows[i]))
	}
	return out
}

// QuestionResponse: correct index pakai pointer supaya bisa di-redact
// (nil → field hilang dari JSON) untuk role student.
type QuestionResponse struct {
	QuestionID   uuid.UUID `json:"question_id"`
	ExamID       uuid.UUID `json:"question_exam_id"`
	Text         string    `json:"question_text"`
	Options      []string  `json:"question_options"`
	CorrectIndex *int      `json:"question_correct_index,omitempty"`
	Points       int       `json:"question_points"`
}

// FromQuestionModel mengkonversi satu soal; includeAnswer=false untuk student.
func FromQuestionModel(q *m.QuestionModel, includeAnswer bool) QuestionResponse {
	resp := QuestionResponse{
		QuestionID: q.QuestionID,
		ExamID:     q.QuestionExamID,
		Text:       q.QuestionText,
		Options:    []string(q.QuestionOptions),
		Points:     q.QuestionPoints,
	}
	if includeAnswer {
		idx := q.QuestionCorrectIndex
		resp.CorrectIndex = &idx
	}
	return resp
}

func FromQuestionModels(rows []m.QuestionModel, includeAnswer bool) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromQuestionModel(&rows[i], includeAnswer))
	}
	return out
}

type ExamDetailResponse struct {
	ExamResponse
	Questions []QuestionResponse `json:"questions"`
}

type SubmissionResponse struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	StudentID    uuid.UUID `json:"submission_student_id"`
	ExamID       uuid.UUID `json:"submission_exam_id"`
	TotalScore   int       `json:"submission_total_score"`
	SubmittedAt  time.Time `json:"submission_submitted_at"`
}

func FromSubmissionModel(s *m.ExamSubmissionModel) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID: s.SubmissionID,
		StudentID:    s.SubmissionStudentID,
		ExamID:       s.SubmissionExamID,
		TotalScore:   s.SubmissionTotalScore,
		SubmittedAt:  s.SubmissionSubmittedAt,
	}
}

func FromSubmissionModels(rows []m.ExamSubmissionModel) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromSubmissionModel(&rows[i]))
	}
	return out
}
