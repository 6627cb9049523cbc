// file: internals/features/school/classes/model/class_room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassRoomModel struct {
	ClassRoomID   uuid.UUID `gorm:"column:class_room_id;type:uuid;primaryKey" json:"class_room_id"`
	ClassRoomName string    `gorm:"column:class_room_name;type:varchar(256);not null;uniqueIndex:uq_class_rooms_school_name" json:"class_room_name"`

	// tenant scope; nama kelas unik per sekolah
	ClassRoomSchoolID uuid.UUID `gorm:"column:class_room_school_id;type:uuid;not null;uniqueIndex:uq_class_rooms_school_name" json:"class_room_school_id"`

	ClassRoomCreatedAt time.Time `gorm:"column:class_room_created_at;not null;autoCreateTime" json:"class_room_created_at"`
}

func (ClassRoomModel) TableName() string { return "class_rooms" }

func (m *ClassRoomModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassRoomID == uuid.Nil {
		m.ClassRoomID = uuid.New()
	}
	return nil
}
