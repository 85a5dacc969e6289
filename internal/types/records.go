package types

// WeightRecord is a single weight measurement as returned by the API
type WeightRecord struct {
	ID       int64   `json:"id"`
	Date     Date    `json:"date"`
	WeightKG float64 `json:"weight_kg"`
}

// WeightRecordRequest is the body of POST /api/weight and PUT /api/weight/{id}
type WeightRecordRequest struct {
	Date     *string  `json:"date" validate:"required,datetime=2006-01-02" msg:"Invalid date format. Please use YYYY-MM-DD."`
	WeightKG *float64 `json:"weight_kg" validate:"required,gt=0,lte=1000" msg:"Weight must be a positive number."`
}

// BloodPressureRecord is a single blood pressure measurement
type BloodPressureRecord struct {
	ID        int64 `json:"id"`
	Date      Date  `json:"date"`
	Systolic  int   `json:"systolic"`
	Diastolic int   `json:"diastolic"`
	Pulse     int   `json:"pulse"`
}

// BloodPressureRecordRequest is the body of POST /api/blood-pressure and PUT /api/blood-pressure/{id}
type BloodPressureRecordRequest struct {
	Date      *string `json:"date" validate:"required,datetime=2006-01-02" msg:"Invalid date format. Please use YYYY-MM-DD."`
	Systolic  *int    `json:"systolic" validate:"required,gt=0,lte=300" msg:"Systolic pressure must be a positive integer."`
	Diastolic *int    `json:"diastolic" validate:"required,gt=0,lte=300" msg:"Diastolic pressure must be a positive integer."`
	Pulse     *int    `json:"pulse" validate:"required,gt=0,lte=300" msg:"Pulse must be a positive integer."`
}

// SymptomRecord is a single symptom entry
type SymptomRecord struct {
	ID          int64  `json:"id"`
	Date        Date   `json:"date"`
	BodyPart    string `json:"body_part"`
	PainType    string `json:"pain_type"`
	Description string `json:"description"`
}

// SymptomRecordRequest is the body of POST /api/symptoms and PUT /api/symptoms/{id}
type SymptomRecordRequest struct {
	Date        *string `json:"date" validate:"required,datetime=2006-01-02" msg:"Invalid date format. Please use YYYY-MM-DD."`
	BodyPart    *string `json:"body_part" validate:"required,notblank,max=100" msg:"Body part cannot be empty."`
	PainType    *string `json:"pain_type" validate:"required,notblank,max=100" msg:"Pain type cannot be empty."`
	Description *string `json:"description" validate:"omitnil,max=1000"`
}

// WeightInput is a validated weight record payload
type WeightInput struct {
	Date     Date
	WeightKG float64
}

// BloodPressureInput is a validated blood pressure payload
type BloodPressureInput struct {
	Date      Date
	Systolic  int
	Diastolic int
	Pulse     int
}

// SymptomInput is a validated symptom payload
type SymptomInput struct {
	Date        Date
	BodyPart    string
	PainType    string
	Description string
}
