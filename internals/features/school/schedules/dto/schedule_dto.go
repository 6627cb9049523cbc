// file: internals/features/school/schedules/dto/schedule_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/schedules/model"
)

type CreateScheduleRequest struct {
	ClassID   uuid.UUID `json:"schedule_class_id" validate:"required"`
	SubjectID uuid.UUID `json:"schedule_subject_id" validate:"required"`
	Day       string    `json:"schedule_day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string    `json:"schedule_start_time" validate:"required,len=5"`
	EndTime   string    `json:"schedule_end_time" validate:"required,len=5"`
}

// ValidTimeRange memastikan "HH:MM" parseable dan start < end.
func (r CreateScheduleRequest) ValidTimeRange() bool {
	if _, err := time.Parse("15:04", r.StartTime); err != nil {
		return false
	}
	if _, err := time.Parse("15:04", r.EndTime); err != nil {
		return false
	}
	return r.StartTime < r.EndTime
}

type ScheduleResponse struct {
	ScheduleID uuid.UUID `json:"schedule_id"`
	ClassID    uuid.UUID `json:"schedule_class_id"`
	SubjectID  uuid.UUID `json:"schedule_subject_id"`
	Day        string    `json:"schedule_day"`
	StartTime  string    `json:"schedule_start_time"`
	EndTime    string    `json:"schedule_end_time"`
	CreatedAt  time.Time `json:"schedule_created_at"`
}

func FromModel(s *m.ScheduleModel) ScheduleResponse {
	return ScheduleResponse{
		ScheduleID: s.ScheduleID,
		ClassID:    s.ScheduleClassID,
		SubjectID:  s.ScheduleSubjectID,
		Day:        s.ScheduleDay,
		StartTime:  s.ScheduleStartTime,
		EndTime:    s.ScheduleEndTime,
		CreatedAt:  s.ScheduleCreatedAt,
	}
}

func FromModels(rows []m.ScheduleModel) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
