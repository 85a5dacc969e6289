package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/healthlog/backend/internal/testhelpers"
	"github.com/pageza/healthlog/backend/internal/types"
)

func values(ptrs []*float64) []interface{} {
	out := make([]interface{}, len(ptrs))
	for i, p := range ptrs {
		if p == nil {
			out[i] = nil
		} else {
			out[i] = *p
		}
	}
	return out
}

func TestMovingAverages(t *testing.T) {
	got := movingAverages([]float64{1, 2, 3, 4, 5, 6, 10})
	assert.Equal(t, []interface{}{nil, nil, nil, nil, 3.0, 4.0, 5.6}, values(got))
	assert.Empty(t, movingAverages(nil))
}

func TestMeanAndBMI(t *testing.T) {
	assert.Nil(t, mean(nil))
	assert.Equal(t, 2.33, *mean([]float64{1, 2, 4}))

	assert.Nil(t, bmi(70, nil))
	assert.Nil(t, bmi(70, &types.UserProfile{}))
	assert.Equal(t, 24.22, *bmi(70, &types.UserProfile{HeightCM: 170}))
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2024, 3, 31, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-25", PeriodStart(types.PeriodWeek, now).String())
	assert.Equal(t, "2024-03-02", PeriodStart(types.PeriodMonth, now).String())
	assert.Equal(t, "2023-12-31", PeriodStart(types.PeriodQuarter, now).String())
	assert.Equal(t, "2023-03-31", PeriodStart(types.PeriodYear, now).String())
}

func TestWeightChart(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	weights := NewWeightService(db, nil)
	for i, kg := range []float64{80, 81, 82, 83, 84, 85} {
		_, err := weights.CreateWeightRecord(ctx, userID, types.WeightInput{
			Date:     types.NewDate(now.AddDate(0, 0, -5+i)),
			WeightKG: kg,
		})
		require.NoError(t, err)
	}
	// outside the week
	_, err := weights.CreateWeightRecord(ctx, userID, types.WeightInput{Date: types.NewDate(now.AddDate(0, 0, -30)), WeightKG: 99})
	require.NoError(t, err)

	svc := NewChartService(db)

	chart, err := svc.WeightChart(ctx, userID, types.PeriodWeek, now)
	require.NoError(t, err)
	assert.Equal(t, types.PeriodWeek, chart.Period)
	require.Len(t, chart.Data, 6)
	assert.Equal(t, "2024-03-05", chart.Data[0].Date.String())
	assert.Nil(t, chart.Data[0].BMI)
	assert.Nil(t, chart.Data[3].MovingAverage5D)
	assert.Equal(t, 82.0, *chart.Data[4].MovingAverage5D)
	assert.Equal(t, 83.0, *chart.Data[5].MovingAverage5D)
	assert.Equal(t, 82.5, *chart.AverageWeightKG)

	_, err = NewProfileService(db).CreateProfile(ctx, userID, types.ProfileInput{
		FirstName: "Anna", LastName: "Nowak", DateOfBirth: types.MustParseDate("1990-01-01"), HeightCM: 180,
	})
	require.NoError(t, err)

	chart, err = svc.WeightChart(ctx, userID, types.PeriodWeek, now)
	require.NoError(t, err)
	assert.Equal(t, 24.69, *chart.Data[0].BMI)
}

func TestWeightChartEmpty(t *testing.T) {
	svc := NewChartService(testhelpers.SetupSQLite(t))

	chart, err := svc.WeightChart(context.Background(), uuid.New(), types.PeriodMonth, time.Now())
	require.NoError(t, err)
	assert.Empty(t, chart.Data)
	assert.Nil(t, chart.AverageWeightKG)
}

func TestBloodPressureChart(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	bp := NewBloodPressureService(db, nil)
	for i := 0; i < 5; i++ {
		_, err := bp.CreateBloodPressureRecord(ctx, userID, types.BloodPressureInput{
			Date:      types.NewDate(now.AddDate(0, 0, -i)),
			Systolic:  120 + i,
			Diastolic: 80,
			Pulse:     60 + i,
		})
		require.NoError(t, err)
	}

	chart, err := NewChartService(db).BloodPressureChart(ctx, userID, types.PeriodMonth, now)
	require.NoError(t, err)
	require.Len(t, chart.Data, 5)
	assert.Equal(t, 124, chart.Data[0].Systolic)
	assert.Equal(t, 120, chart.Data[4].Systolic)
	assert.Nil(t, chart.Data[3].SystolicMovingAverage5D)
	assert.Equal(t, 122.0, *chart.Data[4].SystolicMovingAverage5D)
	assert.Equal(t, 80.0, *chart.Data[4].DiastolicMovingAverage5D)
	assert.Equal(t, 122.0, *chart.AverageSystolic)
	assert.Equal(t, 62.0, *chart.AveragePulse)
}
