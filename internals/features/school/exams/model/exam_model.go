// file: internals/features/school/exams/model/exam_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamModel struct {
	ExamID    uuid.UUID `gorm:"column:exam_id;type:uuid;primaryKey" json:"exam_id"`
	ExamTitle string    `gorm:"column:exam_title;type:varchar(256);not null;uniqueIndex:uq_exams_identity" json:"exam_title"`
	ExamType  string    `gorm:"column:exam_type;type:varchar(32);not null;uniqueIndex:uq_exams_identity" json:"exam_type"`

	ExamDescription     *string `gorm:"column:exam_description;type:text" json:"exam_description,omitempty"`
	ExamDurationMinutes int     `gorm:"column:exam_duration_minutes;not null" json:"exam_duration_minutes"`

	ExamSubjectID uuid.UUID  `gorm:"column:exam_subject_id;type:uuid;not null;uniqueIndex:uq_exams_identity" json:"exam_subject_id"`
	ExamClassID   uuid.UUID  `gorm:"column:exam_class_id;type:uuid;not null;uniqueIndex:uq_exams_identity;index" json:"exam_class_id"`
	ExamTeacherID *uuid.UUID `gorm:"column:exam_teacher_id;type:uuid;index" json:"exam_teacher_id,omitempty"`

	ExamCreatedAt time.Time `gorm:"column:exam_created_at;not null;autoCreateTime" json:"exam_created_at"`
}

func (ExamModel) TableName() string { return "exams" }

func (m *ExamModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExamID == uuid.Nil {
		m.ExamID = uuid.New()
	}
	return nil
}
