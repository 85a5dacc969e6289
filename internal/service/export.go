package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pageza/healthlog/backend/internal/types"
)

// ExportURLTTL is how long an export download link stays valid
const ExportURLTTL = 15 * time.Minute

// ObjectStore is the part of S3 an export needs
type ObjectStore interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) error
	GeneratePresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error)
}

// ExportService writes a user's data to object storage as one JSON document
type ExportService struct {
	store         ObjectStore
	profiles      *ProfileService
	weight        *WeightService
	bloodPressure *BloodPressureService
	symptoms      *SymptomService
}

var _ IExportService = (*ExportService)(nil)

// NewExportService creates an ExportService. A nil store disables exports.
func NewExportService(store ObjectStore, profiles *ProfileService, weight *WeightService, bp *BloodPressureService, symptoms *SymptomService) *ExportService {
	return &ExportService{
		store:         store,
		profiles:      profiles,
		weight:        weight,
		bloodPressure: bp,
		symptoms:      symptoms,
	}
}

// ExportKey is the object key of an export made at now
func ExportKey(userID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("exports/%s/%s.json", userID, now.UTC().Format("20060102T150405Z"))
}

// ExportRecords uploads the profile and every record of the user and returns a download link
func (s *ExportService) ExportRecords(ctx context.Context, userID uuid.UUID, now time.Time) (*types.ExportResponse, error) {
	if s.store == nil {
		return nil, ErrExportsDisabled
	}

	doc := types.ExportDocument{GeneratedAt: now.UTC()}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		doc.Profile, err = s.profiles.GetProfile(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		doc.Weight, err = s.weight.AllWeightRecords(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		doc.BloodPressure, err = s.bloodPressure.AllBloodPressureRecords(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		doc.Symptoms, err = s.symptoms.AllSymptomRecords(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}

	key := ExportKey(userID, now)
	if err := s.store.PutObject(ctx, key, data, "application/json"); err != nil {
		return nil, err
	}
	url, err := s.store.GeneratePresignedURL(ctx, key, ExportURLTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to presign export: %w", err)
	}

	return &types.ExportResponse{
		Key:       key,
		URL:       url,
		ExpiresAt: now.UTC().Add(ExportURLTTL),
	}, nil
}
