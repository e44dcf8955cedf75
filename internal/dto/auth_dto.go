package dto

import "time"

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
	Project  string `json:"project" binding:"omitempty,oneof=project1 project2 admin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserProfileDTO is the sanitized user representation. It never carries the
// password hash.
type UserProfileDTO struct {
	ID        uint      `json:"id"`
	Username  *string   `json:"username,omitempty"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Project   string    `json:"project"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponseDTO struct {
	Token string         `json:"token"`
	User  UserProfileDTO `json:"user"`
}
