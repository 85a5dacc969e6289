package types

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile is the profile returned by GET /api/users/me
type UserProfile struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth Date      `json:"date_of_birth"`
	HeightCM    int       `json:"height_cm"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProfileRequest is the body of POST /api/users/me
type CreateProfileRequest struct {
	FirstName   string `json:"first_name" validate:"required,notblank,max=100" msg:"First name cannot be empty."`
	LastName    string `json:"last_name" validate:"required,notblank,max=100" msg:"Last name cannot be empty."`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02" msg:"Invalid date format."`
	HeightCM    *int   `json:"height_cm" validate:"required,gt=0,lte=300" msg:"Height must be a positive integer."`
}

// UpdateProfileRequest is the body of PUT /api/users/me. Nil fields are left untouched.
type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name" validate:"omitnil,notblank,max=100" msg:"First name cannot be empty."`
	LastName    *string `json:"last_name" validate:"omitnil,notblank,max=100" msg:"Last name cannot be empty."`
	DateOfBirth *string `json:"date_of_birth" validate:"omitnil,datetime=2006-01-02" msg:"Invalid date format."`
	HeightCM    *int    `json:"height_cm" validate:"omitnil,gt=0,lte=300" msg:"Height must be a positive integer."`
}

// Empty reports whether no field was supplied
func (r *UpdateProfileRequest) Empty() bool {
	return r.FirstName == nil && r.LastName == nil && r.DateOfBirth == nil && r.HeightCM == nil
}

// ProfileInput is a validated profile creation payload
type ProfileInput struct {
	FirstName   string
	LastName    string
	DateOfBirth Date
	HeightCM    int
}

// ProfileChanges is a validated profile update. Nil fields are left untouched.
type ProfileChanges struct {
	FirstName   *string
	LastName    *string
	DateOfBirth *Date
	HeightCM    *int
}
