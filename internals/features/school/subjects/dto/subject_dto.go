// file: internals/features/school/subjects/dto/subject_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/subjects/model"
)

type CreateSubjectRequest struct {
	Name      string     `json:"subject_name" validate:"required,min=1,max=256"`
	ClassID   uuid.UUID  `json:"subject_class_id" validate:"required"`
	TeacherID *uuid.UUID `json:"subject_teacher_id" validate:"omitempty"`
}

type SubjectResponse struct {
	SubjectID uuid.UUID  `json:"subject_id"`
	Name      string     `json:"subject_name"`
	ClassID   uuid.UUID  `json:"subject_class_id"`
	TeacherID *uuid.UUID `json:"subject_teacher_id,omitempty"`
	CreatedAt time.Time  `json:"subject_created_at"`
}

func FromModel(s *m.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID: s.SubjectID,
		Name:      s.SubjectName,
		ClassID:   s.SubjectClassID,
		TeacherID: s.SubjectTeacherID,
		CreatedAt: s.SubjectCreatedAt,
	}
}

func FromModels(rows []m.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
