package validation

import (
	"strings"

	"github.com/pageza/healthlog/backend/internal/types"
)

// Weight validates a weight payload and returns its normalized form
func Weight(req *types.WeightRecordRequest) (types.WeightInput, error) {
	if err := Struct(req); err != nil {
		return types.WeightInput{}, err
	}
	date, err := parseDate("date", *req.Date)
	if err != nil {
		return types.WeightInput{}, err
	}
	return types.WeightInput{Date: date, WeightKG: *req.WeightKG}, nil
}

// BloodPressure validates a blood pressure payload and returns its normalized form
func BloodPressure(req *types.BloodPressureRecordRequest) (types.BloodPressureInput, error) {
	if err := Struct(req); err != nil {
		return types.BloodPressureInput{}, err
	}
	date, err := parseDate("date", *req.Date)
	if err != nil {
		return types.BloodPressureInput{}, err
	}
	return types.BloodPressureInput{
		Date:      date,
		Systolic:  *req.Systolic,
		Diastolic: *req.Diastolic,
		Pulse:     *req.Pulse,
	}, nil
}

// Symptom validates a symptom payload. Text fields are trimmed.
func Symptom(req *types.SymptomRecordRequest) (types.SymptomInput, error) {
	if err := Struct(req); err != nil {
		return types.SymptomInput{}, err
	}
	date, err := parseDate("date", *req.Date)
	if err != nil {
		return types.SymptomInput{}, err
	}
	in := types.SymptomInput{
		Date:     date,
		BodyPart: strings.TrimSpace(*req.BodyPart),
		PainType: strings.TrimSpace(*req.PainType),
	}
	if req.Description != nil {
		in.Description = strings.TrimSpace(*req.Description)
	}
	return in, nil
}

// NewProfile validates a profile creation payload
func NewProfile(req *types.CreateProfileRequest) (types.ProfileInput, error) {
	if err := Struct(req); err != nil {
		return types.ProfileInput{}, err
	}
	dob, err := parseDate("date_of_birth", req.DateOfBirth)
	if err != nil {
		return types.ProfileInput{}, err
	}
	return types.ProfileInput{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		DateOfBirth: dob,
		HeightCM:    *req.HeightCM,
	}, nil
}

// ProfileChanges validates a profile update and returns only the supplied fields
func ProfileChanges(req *types.UpdateProfileRequest) (types.ProfileChanges, error) {
	if err := ProfileUpdate(req); err != nil {
		return types.ProfileChanges{}, err
	}
	changes := types.ProfileChanges{HeightCM: req.HeightCM}
	if req.FirstName != nil {
		v := strings.TrimSpace(*req.FirstName)
		changes.FirstName = &v
	}
	if req.LastName != nil {
		v := strings.TrimSpace(*req.LastName)
		changes.LastName = &v
	}
	if req.DateOfBirth != nil {
		dob, err := parseDate("date_of_birth", *req.DateOfBirth)
		if err != nil {
			return types.ProfileChanges{}, err
		}
		changes.DateOfBirth = &dob
	}
	return changes, nil
}

func parseDate(field, raw string) (types.Date, error) {
	d, err := types.ParseDate(raw)
	if err != nil {
		return types.Date{}, FieldError(field, "Invalid date format.")
	}
	return d, nil
}
