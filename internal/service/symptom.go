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

// SymptomService manages symptom records
type SymptomService struct {
	recordStore
}

var _ ISymptomService = (*SymptomService)(nil)

func NewSymptomService(db *gorm.DB, publisher events.Publisher) *SymptomService {
	return &SymptomService{recordStore: newRecordStore(db, publisher, "symptom")}
}

func (s *SymptomService) ListSymptomRecords(ctx context.Context, userID uuid.UUID, p types.Pagination) (types.Page[types.SymptomRecord], error) {
	rows, total, err := listPage[models.SymptomRecord](ctx, s.db, userID, p)
	if err != nil {
		return types.Page[types.SymptomRecord]{}, err
	}
	data := make([]types.SymptomRecord, len(rows))
	for i := range rows {
		data[i] = rows[i].ToDTO()
	}
	return types.Page[types.SymptomRecord]{Data: data, Total: total}, nil
}

func (s *SymptomService) CreateSymptomRecord(ctx context.Context, userID uuid.UUID, in types.SymptomInput) (types.SymptomRecord, error) {
	rec := models.SymptomRecord{
		UserID:      userID,
		Date:        in.Date,
		BodyPart:    in.BodyPart,
		PainType:    in.PainType,
		Description: in.Description,
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return types.SymptomRecord{}, fmt.Errorf("failed to create symptom record: %w", err)
	}
	s.recorded(ctx, events.Created, userID, rec.ID)
	return rec.ToDTO(), nil
}

func (s *SymptomService) UpdateSymptomRecord(ctx context.Context, userID uuid.UUID, id int64, in types.SymptomInput) (types.SymptomRecord, Outcome, error) {
	var rec models.SymptomRecord
	outcome, err := updateOwned(ctx, s.db, userID, id, map[string]interface{}{
		"date":        in.Date,
		"body_part":   in.BodyPart,
		"pain_type":   in.PainType,
		"description": in.Description,
	}, &rec)
	if err != nil || outcome != OutcomeSuccess {
		return types.SymptomRecord{}, outcome, err
	}
	s.recorded(ctx, events.Updated, userID, id)
	return rec.ToDTO(), OutcomeSuccess, nil
}

func (s *SymptomService) DeleteSymptomRecord(ctx context.Context, userID uuid.UUID, id int64) (Outcome, error) {
	outcome, err := deleteOwned[models.SymptomRecord](ctx, s.db, userID, id)
	if err != nil || outcome != OutcomeSuccess {
		return outcome, err
	}
	s.recorded(ctx, events.Deleted, userID, id)
	return OutcomeSuccess, nil
}

func (s *SymptomService) AllSymptomRecords(ctx context.Context, userID uuid.UUID) ([]types.SymptomRecord, error) {
	var rows []models.SymptomRecord
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("date ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load symptom records: %w", err)
	}
	out := make([]types.SymptomRecord, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDTO()
	}
	return out, nil
}
