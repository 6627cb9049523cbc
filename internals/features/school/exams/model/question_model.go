// file: internals/features/school/exams/model/question_model.go
package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type QuestionModel struct {
	QuestionID     uuid.UUID `gorm:"column:question_id;type:uuid;primaryKey" json:"question_id"`
	QuestionExamID uuid.UUID `gorm:"column:question_exam_id;type:uuid;not null;index" json:"question_exam_id"`

	QuestionText    string         `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionOptions pq.StringArray `gorm:"column:question_options;type:text[];not null" json:"question_options"`

	// index jawaban benar; tidak pernah diserialisasi ke student (lihat dto)
	QuestionCorrectIndex int `gorm:"column:question_correct_index;not null" json:"question_correct_index"`
	QuestionPoints       int `gorm:"column:question_points;not null" json:"question_points"`
}

func (QuestionModel) TableName() string { return "exam_questions" }

func (m *QuestionModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuestionID == uuid.Nil {
		m.QuestionID = uuid.New()
	}
	return nil
}
