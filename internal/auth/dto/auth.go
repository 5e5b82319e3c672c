package dto

import authdomain "taskmanager-backend/internal/auth/domain"

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=7,nopassword"`
	Age      *int   `json:"age" validate:"omitnil,gte=0"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileFields lists the JSON keys PATCH /users/me accepts.
var UpdateProfileFields = []string{"name", "email", "password", "age"}

type UpdateProfileRequest struct {
	Name     *string `json:"name" validate:"omitnil,min=1"`
	Email    *string `json:"email" validate:"omitnil,email"`
	Password *string `json:"password" validate:"omitnil,min=7,nopassword"`
	Age      *int    `json:"age" validate:"omitnil,gte=0"`
}

type AuthResponse struct {
	User  *authdomain.User `json:"user"`
	Token string           `json:"token"`
}
