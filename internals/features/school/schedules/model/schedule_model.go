// file: internals/features/school/schedules/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hari valid untuk jadwal.
var ValidDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func IsValidDay(day string) bool {
	for _, d := range ValidDays {
		if d == day {
			return true
		}
	}
	return false
}

// ScheduleModel: satu slot per (kelas, hari, jam). Jam disimpan "HH:MM"
// zero-padded sehingga perbandingan leksikografis = perbandingan waktu.
type ScheduleModel struct {
	ScheduleID        uuid.UUID `gorm:"column:schedule_id;type:uuid;primaryKey" json:"schedule_id"`
	ScheduleClassID   uuid.UUID `gorm:"column:schedule_class_id;type:uuid;not null;index:idx_schedules_class_day" json:"schedule_class_id"`
	ScheduleSubjectID uuid.UUID `gorm:"column:schedule_subject_id;type:uuid;not null;index" json:"schedule_subject_id"`

	ScheduleDay       string `gorm:"column:schedule_day;type:varchar(10);not null;index:idx_schedules_class_day" json:"schedule_day"`
	ScheduleStartTime string `gorm:"column:schedule_start_time;type:varchar(5);not null" json:"schedule_start_time"`
	ScheduleEndTime   string `gorm:"column:schedule_end_time;type:varchar(5);not null" json:"schedule_end_time"`

	ScheduleCreatedAt time.Time `gorm:"column:schedule_created_at;not null;autoCreateTime" json:"schedule_created_at"`
}

func (ScheduleModel) TableName() string { return "schedules" }

func (m *ScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ScheduleID == uuid.Nil {
		m.ScheduleID = uuid.New()
	}
	return nil
}
