package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/healthlog/backend/internal/service"
	"github.com/pageza/healthlog/backend/internal/testhelpers"
	"github.com/pageza/healthlog/backend/internal/types"
)

type mockObjectStore struct {
	mock.Mock
}

func (m *mockObjectStore) PutObject(ctx context.Context, key string, data []byte, contentType string) error {
	args := m.Called(ctx, key, data, contentType)
	return args.Error(0)
}

func (m *mockObjectStore) GeneratePresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, key, expiration)
	return args.String(0), args.Error(1)
}

func newExportService(t *testing.T, store service.ObjectStore) (*service.ExportService, *service.WeightService, *service.ProfileService) {
	db := testhelpers.SetupSQLite(t)
	profiles := service.NewProfileService(db)
	weight := service.NewWeightService(db, nil)
	return service.NewExportService(store, profiles, weight,
		service.NewBloodPressureService(db, nil), service.NewSymptomService(db, nil)), weight, profiles
}

func TestExportRecords(t *testing.T) {
	store := &mockObjectStore{}
	svc, weight, profiles := newExportService(t, store)
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	_, err := profiles.CreateProfile(ctx, userID, types.ProfileInput{
		FirstName: "Anna", LastName: "Nowak", DateOfBirth: types.MustParseDate("1990-01-01"), HeightCM: 170,
	})
	require.NoError(t, err)
	_, err = weight.CreateWeightRecord(ctx, userID, types.WeightInput{Date: types.MustParseDate("2024-03-01"), WeightKG: 70})
	require.NoError(t, err)

	key := "exports/" + userID.String() + "/20240310T093000Z.json"
	var uploaded []byte
	store.On("PutObject", mock.Anything, key, mock.Anything, "application/json").
		Run(func(args mock.Arguments) { uploaded = args.Get(2).([]byte) }).
		Return(nil)
	store.On("GeneratePresignedURL", mock.Anything, key, service.ExportURLTTL).
		Return("https://bucket.example/signed", nil)

	resp, err := svc.ExportRecords(ctx, userID, now)
	require.NoError(t, err)
	assert.Equal(t, key, resp.Key)
	assert.Equal(t, "https://bucket.example/signed", resp.URL)
	assert.Equal(t, now.Add(15*time.Minute), resp.ExpiresAt)
	store.AssertExpectations(t)

	var doc types.ExportDocument
	require.NoError(t, json.Unmarshal(uploaded, &doc))
	require.NotNil(t, doc.Profile)
	assert.Equal(t, "Anna", doc.Profile.FirstName)
	require.Len(t, doc.Weight, 1)
	assert.Equal(t, 70.0, doc.Weight[0].WeightKG)
	assert.Empty(t, doc.Symptoms)
}

func TestExportRecordsUploadFailure(t *testing.T) {
	store := &mockObjectStore{}
	svc, _, _ := newExportService(t, store)

	store.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("access denied"))

	_, err := svc.ExportRecords(context.Background(), uuid.New(), time.Now())
	assert.Error(t, err)
	store.AssertNotCalled(t, "GeneratePresignedURL", mock.Anything, mock.Anything, mock.Anything)
}

func TestExportRecordsDisabled(t *testing.T) {
	svc, _, _ := newExportService(t, nil)

	_, err := svc.ExportRecords(context.Background(), uuid.New(), time.Now())
	assert.ErrorIs(t, err, service.ErrExportsDisabled)
}
