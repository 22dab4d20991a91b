package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/model"
)

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	Name        string `json:"name" validate:"required,max=150"`
	Role        string `json:"role" validate:"required,oneof=seeker hr"`
	CompanyName string `json:"company_name,omitempty" validate:"max=150"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserDTO struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Role       model.Role `json:"role"`
	IsVerified bool       `json:"is_verified"`
	Avatar     string     `json:"avatar,omitempty"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func NewUserDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		IsVerified: u.IsVerified,
		Avatar:     u.Avatar,
		LastLogin:  u.LastLogin,
		CreatedAt:  u.CreatedAt,
	}
}
