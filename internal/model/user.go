package model

import (
	"time"

	"github.com/deppfellow/recipebox/internal/validation"
)

// User is a registered account. PasswordHash never leaves the service.
type User struct {
	ID              int64     `json:"id" db:"id"`
	Username        string    `json:"username" db:"username"`
	Email           string    `json:"email" db:"email"`
	PasswordHash    string    `json:"-" db:"password_hash"`
	ProfileImageURL string    `json:"profile_image_url" db:"profile_image_url"`
	RegisteredAt    time.Time `json:"registered_at" db:"registered_at"`
}

// NewUser is the row inserted on registration.
type NewUser struct {
	Username        string
	Email           string
	PasswordHash    string
	ProfileImageURL string
}

// RegisterUserPayload is the body of POST /register.
type RegisterUserPayload struct {
	Username        string  `json:"username" validate:"required,max=100"`
	Email           string  `json:"email" validate:"required,email,max=255"`
	Password        string  `json:"password" validate:"required,max=1024"`
	ProfileImageURL *string `json:"profileImageUrl" validate:"omitempty,url"`
}

func (p *RegisterUserPayload) Validate() error {
	return validation.Struct(p)
}

// LoginPayload is the body of POST /login.
type LoginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (p *LoginPayload) Validate() error {
	return validation.Struct(p)
}
