package types

// ChartPeriod is the time window a chart covers
type ChartPeriod string

const (
	PeriodWeek    ChartPeriod = "week"
	PeriodMonth   ChartPeriod = "month"
	PeriodQuarter ChartPeriod = "quarter"
	PeriodYear    ChartPeriod = "year"
)

// WeightChartPoint combines a weight record with BMI and the moving average
type WeightChartPoint struct {
	Date            Date     `json:"date"`
	WeightKG        float64  `json:"weight_kg"`
	BMI             *float64 `json:"bmi"`
	MovingAverage5D *float64 `json:"moving_average_5d"`
}

// WeightChartData is the response of GET /api/charts/weight
type WeightChartData struct {
	Period          ChartPeriod        `json:"period"`
	AverageWeightKG *float64           `json:"average_weight_kg"`
	Data            []WeightChartPoint `json:"data"`
}

// BloodPressureChartPoint is a blood pressure record with systolic and diastolic moving averages
type BloodPressureChartPoint struct {
	Date                     Date     `json:"date"`
	Systolic                 int      `json:"systolic"`
	Diastolic                int      `json:"diastolic"`
	Pulse                    int      `json:"pulse"`
	SystolicMovingAverage5D  *float64 `json:"systolic_moving_average_5d"`
	DiastolicMovingAverage5D *float64 `json:"diastolic_moving_average_5d"`
}

// BloodPressureChartData is the response of GET /api/charts/blood-pressure
type BloodPressureChartData struct {
	Period           ChartPeriod               `json:"period"`
	AverageSystolic  *float64                  `json:"average_systolic"`
	AverageDiastolic *float64                  `json:"average_diastolic"`
	AveragePulse     *float64                  `json:"average_pulse"`
	Data             []BloodPressureChartPoint `json:"data"`
}
