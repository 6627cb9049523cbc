// file: internals/features/school/classes/dto/class_room_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/classes/model"
)

type CreateClassRoomRequest struct {
	Name string `json:"class_room_name" validate:"required,min=1,max=256"`
}

type EnrollStudentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
}

type ClassRoomResponse struct {
	ClassRoomID uuid.UUID `json:"class_room_id"`
	Name        string    `json:"class_room_name"`
	SchoolID    uuid.UUID `json:"class_room_school_id"`
	CreatedAt   time.Time `json:"class_room_created_at"`
}

func FromModel(cr *m.ClassRoomModel) ClassRoomResponse {
	return ClassRoomResponse{
		ClassRoomID: cr.ClassRoomID,
		Name:        cr.ClassRoomName,
		SchoolID:    cr.ClassRoomSchoolID,
		CreatedAt:   cr.ClassRoomCreatedAt,
	}
}

func FromModels(rows []m.ClassRoomModel) []ClassRoomResponse {
	out := make([]ClassRoomResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
