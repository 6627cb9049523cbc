// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/users/user/model"
)

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

type CreateUserRequest struct {
	UserName string     `json:"user_name" validate:"required,min=2,max=256"`
	Email    string     `json:"user_email" validate:"required,email"`
	Password string     `json:"user_password" validate:"required,min=6"`
	Role     string     `json:"user_role" validate:"required,oneof=student teacher"`
	ClassID  *uuid.UUID `json:"user_class_id" validate:"omitempty"`
}

/* =========================================================
   2) RESPONSE DTO
   ========================================================= */

type UserResponse struct {
	UserID    uuid.UUID  `json:"user_id"`
	UserName  string     `json:"user_name"`
	UserEmail string     `json:"user_email"`
	UserRole  string     `json:"user_role"`
	SchoolID  *uuid.UUID `json:"user_school_id,omitempty"`
	ClassID   *uuid.UUID `json:"user_class_id,omitempty"`
	CreatedAt time.Time  `json:"user_created_at"`
}

func FromModel(u *m.UserModel) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		UserName:  u.UserName,
		UserEmail: u.UserEmail,
		UserRole:  u.UserRole,
		SchoolID:  u.UserSchoolID,
		ClassID:   u.UserClassID,
		CreatedAt: u.UserCreatedAt,
	}
}

func FromModels(users []m.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FromModel(&users[i]))
	}
	return out
}

/* =========================================================
   3) AGGREGATES
   ========================================================= */

type TopStudentResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	AvgScore  float64   `json:"avg_score"`
}

type DashboardStatsResponse struct {
	TotalStudents   int64 `json:"total_students"`
	TotalTeachers   int64 `json:"total_teachers"`
	TotalClassRooms int64 `json:"total_class_rooms"`
}
