// file: internals/features/school/schools/dto/school_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/schools/model"
)

type CreateSchoolRequest struct {
	Name string `json:"school_name" validate:"required,min=3,max=256"`
}

type SchoolResponse struct {
	SchoolID  uuid.UUID `json:"school_id"`
	Name      string    `json:"school_name"`
	AdminID   uuid.UUID `json:"school_admin_id"`
	CreatedAt time.Time `json:"school_created_at"`
}

func FromModel(s *m.SchoolModel) SchoolResponse {
	return SchoolResponse{
		SchoolID:  s.SchoolID,
		Name:      s.SchoolName,
		AdminID:   s.SchoolAdminID,
		CreatedAt: s.SchoolCreatedAt,
	}
}
