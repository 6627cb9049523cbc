// file: internals/features/school/grades/model/student_grade_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentGradeModel struct {
	GradeID        uuid.UUID `gorm:"column:grade_id;type:uuid;primaryKey" json:"grade_id"`
	GradeStudentID uuid.UUID `gorm:"column:grade_student_id;type:uuid;not null;index" json:"grade_student_id"`
	GradeSubjectID uuid.UUID `gorm:"column:grade_subject_id;type:uuid;not null;index" json:"grade_subject_id"`
	GradeClassID   uuid.UUID `gorm:"column:grade_class_id;type:uuid;not null;index" json:"grade_class_id"`

	GradeScore int    `gorm:"column:grade_score;not null" json:"grade_score"`
	GradeType  string `gorm:"column:grade_type;type:varchar(32);not null;default:'regular'" json:"grade_type"`

	GradeRecordedAt time.Time `gorm:"column:grade_recorded_at;not null;autoCreateTime" json:"grade_recorded_at"`
}

func (StudentGradeModel) TableName() string { return "student_grades" }

func (m *StudentGradeModel) BeforeCreate(tx *gorm.DB) error {
	if m.GradeID == uuid.Nil {
		m.GradeID = uuid.New()
	}
	return nil
}
