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

// BloodPressureService manages blood pressure records
type BloodPressureService struct {
	recordStore
}

var _ IBloodPressureService = (*BloodPressureService)(nil)

func NewBloodPressureService(db *gorm.DB, publisher events.Publisher) *BloodPressureService {
	return &BloodPressureService{recordStore: newRecordStore(db, publisher, "blood_pressure")}
}

func (s *BloodPressureService) ListBloodPressureRecords(ctx context.Context, userID uuid.UUID, p types.Pagination) (types.Page[types.BloodPressureRecord], error) {
	rows, total, err := listPage[models.BloodPressureRecord](ctx, s.db, userID, p)
	if err != nil {
		return types.Page[types.BloodPressureRecord]{}, err
	}
	data := make([]types.BloodPressureRecord, len(rows))
	for i := range rows {
		data[i] = rows[i].ToDTO()
	}
	return types.Page[types.BloodPressureRecord]{Data: data, Total: total}, nil
}

func (s *BloodPressureService) CreateBloodPressureRecord(ctx context.Context, userID uuid.UUID, in types.BloodPressureInput) (types.BloodPressureRecord, error) {
	rec := models.BloodPressureRecord{
		UserID:    userID,
		Date:      in.Date,
		Systolic:  in.Systolic,
		Diastolic: in.Diastolic,
		Pulse:     in.Pulse,
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return types.BloodPressureRecord{}, fmt.Errorf("failed to create blood pressure record: %w", err)
	}
	s.recorded(ctx, events.Created, userID, rec.ID)
	return rec.ToDTO(), nil
}

func (s *BloodPressureService) UpdateBloodPressureRecord(ctx context.Context, userID uuid.UUID, id int64, in types.BloodPressureInput) (types.BloodPressureRecord, Outcome, error) {
	var rec models.BloodPressureRecord
	outcome, err := updateOwned(ctx, s.db, userID, id, map[string]interface{}{
		"date":      in.Date,
		"systolic":  in.Systolic,
		"diastolic": in.Diastolic,
		"pulse":     in.Pulse,
	}, &rec)
	if err != nil || outcome != OutcomeSuccess {
		return types.BloodPressureRecord{}, outcome, err
	}
	s.recorded(ctx, events.Updated, userID, id)
	return rec.ToDTO(), OutcomeSuccess, nil
}

func (s *BloodPressureService) DeleteBloodPressureRecord(ctx context.Context, userID uuid.UUID, id int64) (Outcome, error) {
	outcome, err := deleteOwned[models.BloodPressureRecord](ctx, s.db, userID, id)
	if err != nil || outcome != OutcomeSuccess {
		return outcome, err
	}
	s.recorded(ctx, events.Deleted, userID, id)
	return OutcomeSuccess, nil
}

func (s *BloodPressureService) AllBloodPressureRecords(ctx context.Context, userID uuid.UUID) ([]types.BloodPressureRecord, error) {
	var rows []models.BloodPressureRecord
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("date ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load blood pressure records: %w", err)
	}
	out := make([]types.BloodPressureRecord, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDTO()
	}
	return out, nil
}
