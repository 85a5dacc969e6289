package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/healthlog/backend/internal/service"
	"github.com/pageza/healthlog/backend/internal/types"
)

// MockWeightService is a mock implementation of service.IWeightService
type MockWeightService struct {
	mock.Mock
}

func (m *MockWeightService) ListWeightRecords(ctx context.Context, userID uuid.UUID, p types.Pagination) (types.Page[types.WeightRecord], error) {
	args := m.Called(ctx, userID, p)
	return args.Get(0).(types.Page[types.WeightRecord]), args.Error(1)
}

func (m *MockWeightService) CreateWeightRecord(ctx context.Context, userID uuid.UUID, in types.WeightInput) (types.WeightRecord, error) {
	args := m.Called(ctx, userID, in)
	return args.Get(0).(types.WeightRecord), args.Error(1)
}

func (m *MockWeightService) UpdateWeightRecord(ctx context.Context, userID uuid.UUID, id int64, in types.WeightInput) (types.WeightRecord, service.Outcome, error) {
	args := m.Called(ctx, userID, id, in)
	return args.Get(0).(types.WeightRecord), args.Get(1).(service.Outcome), args.Error(2)
}

func (m *MockWeightService) DeleteWeightRecord(ctx context.Context, userID uuid.UUID, id int64) (service.Outcome, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(service.Outcome), args.Error(1)
}

// MockChartService is a mock implementation of service.IChartService
type MockChartService struct {
	mock.Mock
}

func (m *MockChartService) WeightChart(ctx context.Context, userID uuid.UUID, period types.ChartPeriod, now time.Time) (*types.WeightChartData, error) {
	args := m.Called(ctx, userID, period, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.WeightChartData), args.Error(1)
}

func (m *MockChartService) BloodPressureChart(ctx context.Context, userID uuid.UUID, period types.ChartPeriod, now time.Time) (*types.BloodPressureChartData, error) {
	args := m.Called(ctx, userID, period, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.BloodPressureChartData), args.Error(1)
}

// MockExportService is a mock implementation of service.IExportService
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportRecords(ctx context.Context, userID uuid.UUID, now time.Time) (*types.ExportResponse, error) {
	args := m.Called(ctx, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ExportResponse), args.Error(1)
}
