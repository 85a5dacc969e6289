package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/healthlog/backend/internal/models"
	"github.com/pageza/healthlog/backend/internal/types"
)

// movingAverageWindow is the number of points, the current one included, in a moving average
const movingAverageWindow = 5

// ChartService derives chart series from the stored records
type ChartService struct {
	db       *gorm.DB
	profiles *ProfileService
}

var _ IChartService = (*ChartService)(nil)

func NewChartService(db *gorm.DB) *ChartService {
	return &ChartService{db: db, profiles: NewProfileService(db)}
}

// PeriodStart returns the first day covered by period when the chart is drawn on now
func PeriodStart(period types.ChartPeriod, now time.Time) types.Date {
	today := types.NewDate(now)
	switch period {
	case types.PeriodWeek:
		return types.Date{Time: today.AddDate(0, 0, -6)}
	case types.PeriodQuarter:
		return types.Date{Time: today.AddDate(0, -3, 0)}
	case types.PeriodYear:
		return types.Date{Time: today.AddDate(-1, 0, 0)}
	default:
		return types.Date{Time: today.AddDate(0, -1, 0)}
	}
}

// WeightChart returns the weight series of the period with BMI and the 5-point moving average
func (s *ChartService) WeightChart(ctx context.Context, userID uuid.UUID, period types.ChartPeriod, now time.Time) (*types.WeightChartData, error) {
	var rows []models.WeightRecord
	if err := s.inPeriod(ctx, userID, period, now).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load weight chart: %w", err)
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	weights := make([]float64, len(rows))
	for i, r := range rows {
		weights[i] = r.WeightKG
	}
	averages := movingAverages(weights)

	points := make([]types.WeightChartPoint, len(rows))
	for i, r := range rows {
		points[i] = types.WeightChartPoint{
			Date:            r.Date,
			WeightKG:        r.WeightKG,
			BMI:             bmi(r.WeightKG, profile),
			MovingAverage5D: averages[i],
		}
	}

	return &types.WeightChartData{
		Period:          period,
		AverageWeightKG: mean(weights),
		Data:            points,
	}, nil
}

// BloodPressureChart returns the blood pressure series of the period with moving averages
func (s *ChartService) BloodPressureChart(ctx context.Context, userID uuid.UUID, period types.ChartPeriod, now time.Time) (*types.BloodPressureChartData, error) {
	var rows []models.BloodPressureRecord
	if err := s.inPeriod(ctx, userID, period, now).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load blood pressure chart: %w", err)
	}

	systolic := make([]float64, len(rows))
	diastolic := make([]float64, len(rows))
	pulse := make([]float64, len(rows))
	for i, r := range rows {
		systolic[i] = float64(r.Systolic)
		diastolic[i] = float64(r.Diastolic)
		pulse[i] = float64(r.Pulse)
	}
	sysAvg := movingAverages(systolic)
	diaAvg := movingAverages(diastolic)

	points := make([]types.BloodPressureChartPoint, len(rows))
	for i, r := range rows {
		points[i] = types.BloodPressureChartPoint{
			Date:                     r.Date,
			Systolic:                 r.Systolic,
			Diastolic:                r.Diastolic,
			Pulse:                    r.Pulse,
			SystolicMovingAverage5D:  sysAvg[i],
			DiastolicMovingAverage5D: diaAvg[i],
		}
	}

	return &types.BloodPressureChartData{
		Period:           period,
		AverageSystolic:  mean(systolic),
		AverageDiastolic: mean(diastolic),
		AveragePulse:     mean(pulse),
		Data:             points,
	}, nil
}

func (s *ChartService) inPeriod(ctx context.Context, userID uuid.UUID, period types.ChartPeriod, now time.Time) *gorm.DB {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, PeriodStart(period, now), types.NewDate(now)).
		Order("date ASC").
		Order("id ASC")
}

// movingAverages returns, per point, the mean of it and the preceding window-1 points. Points
// without a full window get nil.
func movingAverages(values []float64) []*float64 {
	out := make([]*float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		if i >= movingAverageWindow {
			sum -= values[i-movingAverageWindow]
		}
		if i >= movingAverageWindow-1 {
			out[i] = round2(sum / movingAverageWindow)
		}
	}
	return out
}

func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return round2(sum / float64(len(values)))
}

// bmi is weight / height², height in metres
func bmi(weightKG float64, profile *types.UserProfile) *float64 {
	if profile == nil || profile.HeightCM <= 0 {
		return nil
	}
	h := float64(profile.HeightCM) / 100
	return round2(weightKG / (h * h))
}

func round2(v float64) *float64 {
	r := math.Round(v*100) / 100
	return &r
}
