// file: internals/features/school/schools/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchoolModel struct {
	SchoolID      uuid.UUID `gorm:"column:school_id;type:uuid;primaryKey" json:"school_id"`
	SchoolName    string    `gorm:"column:school_name;type:varchar(256);not null" json:"school_name"`
	SchoolAdminID uuid.UUID `gorm:"column:school_admin_id;type:uuid;not null;index" json:"school_admin_id"`

	SchoolCreatedAt time.Time `gorm:"column:school_created_at;not null;autoCreateTime" json:"school_created_at"`
}

func (SchoolModel) TableName() string { return "schools" }

func (m *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolID == uuid.Nil {
		m.SchoolID = uuid.New()
	}
	return nil
}
