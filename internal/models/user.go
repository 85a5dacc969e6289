package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/healthlog/backend/internal/types"
)

// User is an account that can sign in
type User struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Email        string    `gorm:"size:254;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate assigns an id when the caller did not
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserProfile holds the personal data of a user. Its id is the user id.
type UserProfile struct {
	ID          uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	FirstName   string     `gorm:"size:100;not null" json:"first_name"`
	LastName    string     `gorm:"size:100;not null" json:"last_name"`
	DateOfBirth types.Date `gorm:"type:date;not null" json:"date_of_birth"`
	HeightCM    int        `gorm:"column:height_cm;not null" json:"height_cm"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToDTO converts the model to its API representation
func (p *UserProfile) ToDTO() *types.UserProfile {
	return &types.UserProfile{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
		HeightCM:    p.HeightCM,
		UpdatedAt:   p.UpdatedAt,
	}
}
