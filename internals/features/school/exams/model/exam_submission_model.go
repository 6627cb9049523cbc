// file: internals/features/school/exams/model/exam_submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ExamSubmissionModel: satu row per submit. Tidak ada unique constraint
// (student_id, exam_id) — retake memang diizinkan.
type ExamSubmissionModel struct {
	SubmissionID        uuid.UUID `gorm:"column:submission_id;type:uuid;primaryKey" json:"submission_id"`
	SubmissionStudentID uuid.UUID `gorm:"column:submission_student_id;type:uuid;not null;index" json:"submission_student_id"`
	SubmissionExamID    uuid.UUID `gorm:"column:submission_exam_id;type:uuid;not null;index" json:"submission_exam_id"`

	SubmissionTotalScore int `gorm:"column:submission_total_score;not null" json:"submission_total_score"`

	// raw answers: [{"question_id": "...", "selected_index": 0}, ...]
	SubmissionAnswers datatypes.JSON `gorm:"column:submission_answers;type:jsonb;not null" json:"submission_answers"`

	SubmissionSubmittedAt time.Time `gorm:"column:submission_submitted_at;not null;autoCreateTime" json:"submission_submitted_at"`
}

func (ExamSubmissionModel) TableName() string { return "exam_submissions" }

func (m *ExamSubmissionModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubmissionID == uuid.Nil {
		m.SubmissionID = uuid.New()
	}
	return nil
}
