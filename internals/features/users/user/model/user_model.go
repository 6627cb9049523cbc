// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserName     string    `gorm:"column:user_name;type:varchar(256);not null" json:"user_name"`
	UserEmail    string    `gorm:"column:user_email;type:varchar(256);not null;uniqueIndex" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;type:varchar(256);not null" json:"-"`
	UserRole     string    `gorm:"column:user_role;type:varchar(16);not null;default:'student'" json:"user_role"`

	// tenant scope (admin/teacher/student); class hanya untuk student
	UserSchoolID *uuid.UUID `gorm:"column:user_school_id;type:uuid;index" json:"user_school_id,omitempty"`
	UserClassID  *uuid.UUID `gorm:"column:user_class_id;type:uuid;index" json:"user_class_id,omitempty"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;not null;autoCreateTime" json:"user_created_at"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
