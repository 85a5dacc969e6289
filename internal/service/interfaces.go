package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/healthlog/backend/internal/models"
	"github.com/pageza/healthlog/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(claims *types.TokenClaims) (string, error)
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, changes types.ProfileChanges) (*types.UserProfile, error)
	CreateProfile(ctx context.Context, userID uuid.UUID, in types.ProfileInput) (*types.UserProfile, error)
}

// IWeightService defines the interface for weight record operations
type IWeightService interface {
	ListWeightRecords(ctx context.Context, userID uuid.UUID, p types.Pagination) (types.Page[types.WeightRecord], error)
	CreateWeightRecord(ctx context.Context, userID uuid.UUID, in types.WeightInput) (types.WeightRecord, error)
	UpdateWeightRecord(ctx context.Context, userID uuid.UUID, id int64, in types.WeightInput) (types.WeightRecord, Outcome, error)
	DeleteWeightRecord(ctx context.Context, userID uuid.UUID, id int64) (Outcome, error)
}

// IBloodPressureService defines the interface for blood pressure record operations
type IBloodPressureService interface {
	ListBloodPressureRecords(ctx context.Context, userID uuid.UUID, p types.Pagination) (types.Page[types.BloodPressureRecord], error)
	CreateBloodPressureRecord(ctx context.Context, userID uuid.UUID, in types.BloodPressureInput) (types.BloodPressureRecord, error)
	UpdateBloodPressureRecord(ctx context.Context, userID uuid.UUID, id int64, in types.BloodPressureInput) (types.BloodPressureRecord, Outcome, error)
	DeleteBloodPressureRecord(ctx context.Context, userID uuid.UUID, id int64) (Outcome, error)
}

// ISymptomService defines the interface for symptom record operations
type ISymptomService interface {
	ListSymptomRecords(ctx context.Context, userID uuid.UUID, p types.Pagination) (types.Page[types.SymptomRecord], error)
	CreateSymptomRecord(ctx context.Context, userID uuid.UUID, in types.SymptomInput) (types.SymptomRecord, error)
	UpdateSymptomRecord(ctx context.Context, userID uuid.UUID, id int64, in types.SymptomInput) (types.SymptomRecord, Outcome, error)
	DeleteSymptomRecord(ctx context.Context, userID uuid.UUID, id int64) (Outcome, error)
}

// IChartService defines the interface for chart data
type IChartService interface {
	WeightChart(ctx context.Context, userID uuid.UUID, period types.ChartPeriod, now time.Time) (*types.WeightChartData, error)
	BloodPressureChart(ctx context.Context, userID uuid.UUID, period types.ChartPeriod, now time.Time) (*types.BloodPressureChartData, error)
}

// IExportService defines the interface for data exports
type IExportService interface {
	ExportRecords(ctx context.Context, userID uuid.UUID, now time.Time) (*types.ExportResponse, error)
}
