package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/healthlog/backend/internal/events"
	"github.com/pageza/healthlog/backend/internal/models"
	"github.com/pageza/healthlog/backend/internal/types"
)

// WeightService manages weight records
type WeightService struct {
	recordStore
}

var _ IWeightService = (*WeightService)(nil)

// NewWeightService creates a new WeightService instance
func NewWeightService(db *gorm.DB, publisher events.Publisher) *WeightService {
	return &WeightService{recordStore: newRecordStore(db, publisher, "weight")}
}

// ListWeightRecords returns one page of the user's weight records, newest first
func (s *WeightService) ListWeightRecords(ctx context.Context, userID uuid.UUID, p types.Pagination) (types.Page[types.WeightRecord], error) {
	rows, total, err := listPage[models.WeightRecord](ctx, s.db, userID, p)
	if err != nil {
		return types.Page[types.WeightRecord]{}, err
	}
	data := make([]types.WeightRecord, len(rows))
	for i := range rows {
		data[i] = rows[i].ToDTO()
	}
	return types.Page[types.WeightRecord]{Data: data, Total: total}, nil
}

// CreateWeightRecord stores a new weight record for the user
func (s *WeightService) CreateWeightRecord(ctx context.Context, userID uuid.UUID, in types.WeightInput) (types.WeightRecord, error) {
	rec := models.WeightRecord{UserID: userID, Date: in.Date, WeightKG: in.WeightKG}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return types.WeightRecord{}, fmt.Errorf("failed to create weight record: %w", err)
	}
	s.recorded(ctx, events.Created, userID, rec.ID)
	return rec.ToDTO(), nil
}

// UpdateWeightRecord replaces the values of a weight record the user owns
func (s *WeightService) UpdateWeightRecord(ctx context.Context, userID uuid.UUID, id int64, in types.WeightInput) (types.WeightRecord, Outcome, error) {
	var rec models.WeightRecord
	outcome, err := updateOwned(ctx, s.db, userID, id, map[string]interface{}{
		"date":      in.Date,
		"weight_kg": in.WeightKG,
	}, &rec)
	if err != nil || outcome != OutcomeSuccess {
		return types.WeightRecord{}, outcome, err
	}
	s.recorded(ctx, events.Updated, userID, id)
	return rec.ToDTO(), OutcomeSuccess, nil
}

// DeleteWeightRecord removes a weight record the user owns
func (s *WeightService) DeleteWeightRecord(ctx context.Context, userID uuid.UUID, id int64) (Outcome, error) {
	outcome, err := deleteOwned[models.WeightRecord](ctx, s.db, userID, id)
	if err != nil || outcome != OutcomeSuccess {
		return outcome, err
	}
	s.recorded(ctx, events.Deleted, userID, id)
	return OutcomeSuccess, nil
}

// AllWeightRecords returns every weight record of the user in date order
func (s *WeightService) AllWeightRecords(ctx context.Context, userID uuid.UUID) ([]types.WeightRecord, error) {
	var rows []models.WeightRecord
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("date ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load weight records: %w", err)
	}
	out := make([]types.WeightRecord, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDTO()
	}
	return out, nil
}
