// file: internals/features/school/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectModel sekaligus membawa assignment mapel → kelas + teacher penanggung jawab
// (satu row = satu mapel yang diajarkan di satu kelas).
type SubjectModel struct {
	SubjectID   uuid.UUID `gorm:"column:subject_id;type:uuid;primaryKey" json:"subject_id"`
	SubjectName string    `gorm:"column:subject_name;type:varchar(256);not null;uniqueIndex:uq_subjects_class_name" json:"subject_name"`

	SubjectClassID   uuid.UUID  `gorm:"column:subject_class_id;type:uuid;not null;uniqueIndex:uq_subjects_class_name" json:"subject_class_id"`
	SubjectTeacherID *uuid.UUID `gorm:"column:subject_teacher_id;type:uuid;index" json:"subject_teacher_id,omitempty"`

	SubjectCreatedAt time.Time `gorm:"column:subject_created_at;not null;autoCreateTime" json:"subject_created_at"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (m *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubjectID == uuid.Nil {
		m.SubjectID = uuid.New()
	}
	return nil
}
