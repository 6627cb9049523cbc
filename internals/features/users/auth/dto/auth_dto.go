// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	userDTO "schoolku_backend/internals/features/users/user/dto"
)

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

type SignupRequest struct {
	UserName string `json:"user_name" validate:"required,min=2,max=256"`
	Email    string `json:"user_email" validate:"required,email"`
	Password string `json:"user_password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"user_email" validate:"required,email"`
	Password string `json:"user_password" validate:"required"`
}

type CreateAdminRequest struct {
	UserName string `json:"user_name" validate:"required,min=2,max=256"`
	Email    string `json:"user_email" validate:"required,email"`
	Password string `json:"user_password" validate:"required,min=6"`
}

/* =========================================================
   2) RESPONSE DTO
   ========================================================= */

type AuthResponse struct {
	User  userDTO.UserResponse `json:"user"`
	Token string               `json:"token"`
}
