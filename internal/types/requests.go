package types

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest is the body of POST /api/auth/register
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254" msg:"Invalid email format."`
	Password string `json:"password" validate:"required,min=8,max=72" msg:"Password must be at least 8 characters long."`
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" msg:"Invalid email format."`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned after a successful registration or login
type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Token  string    `json:"token"`
}

// ExportResponse points at an uploaded export document
type ExportResponse struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ExportDocument is the JSON document written by an export
type ExportDocument struct {
	GeneratedAt   time.Time             `json:"generated_at"`
	Profile       *UserProfile          `json:"profile"`
	Weight        []WeightRecord        `json:"weight"`
	BloodPressure []BloodPressureRecord `json:"blood_pressure"`
	Symptoms      []SymptomRecord       `json:"symptoms"`
}
