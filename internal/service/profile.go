package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/healthlog/backend/internal/database"
	"github.com/pageza/healthlog/backend/internal/models"
	"github.com/pageza/healthlog/backend/internal/types"
)

// ProfileService handles user profile operations
type ProfileService struct {
	db *gorm.DB
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		db: db,
	}
}

// GetProfile retrieves a user's profile. A user without a profile gets (nil, nil).
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.UserProfile, error) {
	profile, err := s.find(ctx, s.db, userID)
	if err != nil || profile == nil {
		return nil, err
	}
	return profile.ToDTO(), nil
}

// UpdateProfile changes the supplied fields of a user's profile
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, changes types.ProfileChanges) (*types.UserProfile, error) {
	var updated *models.UserProfile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile, err := s.find(ctx, tx, userID)
		if err != nil {
			return err
		}
		if profile == nil {
			return ErrProfileNotFound
		}

		// Update fields if provided
		if changes.FirstName != nil {
			profile.FirstName = *changes.FirstName
		}
		if changes.LastName != nil {
			profile.LastName = *changes.LastName
		}
		if changes.DateOfBirth != nil {
			profile.DateOfBirth = *changes.DateOfBirth
		}
		if changes.HeightCM != nil {
			profile.HeightCM = *changes.HeightCM
		}

		if err := tx.Save(profile).Error; err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
		updated = profile
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated.ToDTO(), nil
}

// CreateProfile inserts the profile of a user. A second profile for the same user is a conflict.
func (s *ProfileService) CreateProfile(ctx context.Context, userID uuid.UUID, in types.ProfileInput) (*types.UserProfile, error) {
	existing, err := s.find(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileExists
	}

	profile := models.UserProfile{
		ID:          userID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DateOfBirth: in.DateOfBirth,
		HeightCM:    in.HeightCM,
	}
	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		// lost a race with a concurrent create
		if database.IsUniqueViolation(err) {
			return nil, ErrProfileExists
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile.ToDTO(), nil
}

func (s *ProfileService) find(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := db.WithContext(ctx).Where("id = ?", userID).Take(&profile).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &profile, nil
}
