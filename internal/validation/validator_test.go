package validation

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/healthlog/backend/internal/types"
)

func validationError(t *testing.T, err error) *Error {
	t.Helper()
	var verr *Error
	require.True(t, errors.As(err, &verr), "expected *validation.Error, got %v", err)
	return verr
}

func TestBindWeightRecord(t *testing.T) {
	var req types.WeightRecordRequest
	err := Bind(strings.NewReader(`{"date":"2024-01-15","weight_kg":70.5}`), &req)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", *req.Date)
	assert.Equal(t, 70.5, *req.WeightKG)
}

func TestBindWeightRecordInvalid(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		field  string
		expect string
	}{
		{"bad date", `{"date":"15-01-2024","weight_kg":70}`, "date", "Invalid date format. Please use YYYY-MM-DD."},
		{"impossible date", `{"date":"2024-02-30","weight_kg":70}`, "date", "Invalid date format. Please use YYYY-MM-DD."},
		{"zero weight", `{"date":"2024-01-15","weight_kg":0}`, "weight_kg", "Weight must be a positive number."},
		{"negative weight", `{"date":"2024-01-15","weight_kg":-3}`, "weight_kg", "Weight must be a positive number."},
		{"missing weight", `{"date":"2024-01-15"}`, "weight_kg", "Required"},
		{"implausible weight", `{"date":"2024-01-15","weight_kg":12345}`, "weight_kg", "Must be at most 1000."},
		{"string weight", `{"date":"2024-01-15","weight_kg":"heavy"}`, "weight_kg", "Expected number, received string."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req types.WeightRecordRequest
			verr := validationError(t, Bind(strings.NewReader(tt.body), &req))
			assert.Equal(t, []string{tt.expect}, verr.FieldErrors[tt.field])
		})
	}
}

func TestBindMalformedBody(t *testing.T) {
	var req types.WeightRecordRequest
	verr := validationError(t, Bind(strings.NewReader(`{"date":`), &req))
	assert.Equal(t, []string{"Invalid JSON body."}, verr.FormErrors)
	assert.Empty(t, verr.FieldErrors)
}

func TestProfileUpdateRequiresAField(t *testing.T) {
	verr := validationError(t, ProfileUpdate(&types.UpdateProfileRequest{}))
	assert.Equal(t, []string{"At least one field must be provided to update."}, verr.FormErrors)
	assert.Empty(t, verr.FieldErrors)
}

func TestProfileUpdateFieldMessages(t *testing.T) {
	empty := ""
	badDate := "yesterday"
	height := -10
	verr := validationError(t, ProfileUpdate(&types.UpdateProfileRequest{
		FirstName:   &empty,
		DateOfBirth: &badDate,
		HeightCM:    &height,
	}))

	assert.Equal(t, []string{"First name cannot be empty."}, verr.FieldErrors["first_name"])
	assert.Equal(t, []string{"Invalid date format."}, verr.FieldErrors["date_of_birth"])
	assert.Equal(t, []string{"Height must be a positive integer."}, verr.FieldErrors["height_cm"])
	assert.NotContains(t, verr.FieldErrors, "last_name")
}

func TestProfileUpdatePartial(t *testing.T) {
	name := "Anna"
	assert.NoError(t, ProfileUpdate(&types.UpdateProfileRequest{FirstName: &name}))
}

func TestCreateProfileBlankName(t *testing.T) {
	height := 170
	verr := validationError(t, Struct(&types.CreateProfileRequest{
		FirstName:   "   ",
		DateOfBirth: "1990-05-01",
		HeightCM:    &height,
	}))
	assert.Equal(t, []string{"First name cannot be empty."}, verr.FieldErrors["first_name"])
	assert.Equal(t, []string{"Required"}, verr.FieldErrors["last_name"])
}

func TestHeightMustBeInteger(t *testing.T) {
	var req types.UpdateProfileRequest
	verr := validationError(t, DecodeJSON(strings.NewReader(`{"height_cm":172.5}`), &req))
	assert.Equal(t, []string{"Expected integer, received number."}, verr.FieldErrors["height_cm"])
}

func TestRegisterRequest(t *testing.T) {
	verr := validationError(t, Struct(&types.RegisterRequest{Email: "not-an-email", Password: "short"}))
	assert.Equal(t, []string{"Invalid email format."}, verr.FieldErrors["email"])
	assert.Equal(t, []string{"Password must be at least 8 characters long."}, verr.FieldErrors["password"])

	assert.NoError(t, Struct(&types.RegisterRequest{Email: "anna@example.com", Password: "correct horse"}))
}

func TestSymptomDescriptionLength(t *testing.T) {
	date, part, pain := "2024-03-01", "knee", "sharp"
	long := strings.Repeat("x", 1001)
	verr := validationError(t, Struct(&types.SymptomRecordRequest{
		Date: &date, BodyPart: &part, PainType: &pain, Description: &long,
	}))
	assert.Equal(t, []string{"Must be at most 1000 characters long."}, verr.FieldErrors["description"])
}

func TestUpperBounds(t *testing.T) {
	date := "2024-01-15"
	big, pulse := 3000000000, 120

	verr := validationError(t, Struct(&types.CreateProfileRequest{
		FirstName: "Anna", LastName: "Nowak", DateOfBirth: "1990-05-04", HeightCM: &big,
	}))
	assert.Equal(t, []string{"Must be at most 300."}, verr.FieldErrors["height_cm"])

	verr = validationError(t, ProfileUpdate(&types.UpdateProfileRequest{HeightCM: &big}))
	assert.Equal(t, []string{"Must be at most 300."}, verr.FieldErrors["height_cm"])

	high := 400
	verr = validationError(t, Struct(&types.BloodPressureRecordRequest{
		Date: &date, Systolic: &high, Diastolic: &high, Pulse: &pulse,
	}))
	assert.Equal(t, []string{"Must be at most 300."}, verr.FieldErrors["systolic"])
	assert.Equal(t, []string{"Must be at most 300."}, verr.FieldErrors["diastolic"])
	assert.NotContains(t, verr.FieldErrors, "pulse")

	kg := 1000.0
	height := 300
	assert.NoError(t, Struct(&types.WeightRecordRequest{Date: &date, WeightKG: &kg}))
	assert.NoError(t, Struct(&types.CreateProfileRequest{
		FirstName: "Anna", LastName: "Nowak", DateOfBirth: "1990-05-04", HeightCM: &height,
	}))
}

func TestPagination(t *testing.T) {
	p, err := Pagination("", "")
	require.NoError(t, err)
	assert.Equal(t, types.Pagination{Page: 1, PageSize: 30}, p)

	p, err = Pagination("3", "10")
	require.NoError(t, err)
	assert.Equal(t, 20, p.Offset())

	verr := validationError(t, func() error { _, err := Pagination("0", "abc"); return err }())
	assert.Contains(t, verr.FieldErrors, "page")
	assert.Contains(t, verr.FieldErrors, "pageSize")

	p, err = Pagination("1", "100")
	require.NoError(t, err)
	assert.Equal(t, 100, p.PageSize)

	verr = validationError(t, func() error { _, err := Pagination("1", "101"); return err }())
	assert.Equal(t, []string{"Must be at most 100."}, verr.FieldErrors["pageSize"])
}

func TestPaginationOffsetOverflow(t *testing.T) {
	verr := validationError(t, func() error { _, err := Pagination("400000000000000000", "30"); return err }())
	assert.Equal(t, []string{"Page is out of range."}, verr.FieldErrors["page"])

	// parses, but the offset does not fit in an int
	_, err := Pagination(strconv.Itoa(math.MaxInt), "1")
	require.NoError(t, err)
	_, err = Pagination(strconv.Itoa(math.MaxInt), "2")
	assert.Error(t, err)

	p, err := Pagination("1000000", "100")
	require.NoError(t, err)
	assert.Equal(t, 99999900, p.Offset())
}

func TestRecordID(t *testing.T) {
	id, err := RecordID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-1", "abc", "1.5"} {
		_, err := RecordID(raw)
		assert.Error(t, err, raw)
	}
}

func TestPeriod(t *testing.T) {
	p, err := Period("")
	require.NoError(t, err)
	assert.Equal(t, types.PeriodMonth, p)

	p, err = Period("Quarter")
	require.NoError(t, err)
	assert.Equal(t, types.PeriodQuarter, p)

	_, err = Period("decade")
	assert.Error(t, err)
}

func TestWeightNormalizes(t *testing.T) {
	date, kg := "2024-03-01", 81.2
	in, err := Weight(&types.WeightRecordRequest{Date: &date, WeightKG: &kg})
	require.NoError(t, err)
	assert.Equal(t, types.MustParseDate("2024-03-01"), in.Date)
	assert.Equal(t, 81.2, in.WeightKG)
}

func TestSymptomTrimsText(t *testing.T) {
	date, part, pain, desc := "2024-03-01", "  knee ", "sharp", " after running "
	in, err := Symptom(&types.SymptomRecordRequest{Date: &date, BodyPart: &part, PainType: &pain, Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "knee", in.BodyPart)
	assert.Equal(t, "after running", in.Description)
}

func TestProfileChangesOnlySupplied(t *testing.T) {
	dob := "1990-05-04"
	changes, err := ProfileChanges(&types.UpdateProfileRequest{DateOfBirth: &dob})
	require.NoError(t, err)
	require.NotNil(t, changes.DateOfBirth)
	assert.Equal(t, "1990-05-04", changes.DateOfBirth.String())
	assert.Nil(t, changes.FirstName)
	assert.Nil(t, changes.HeightCM)

	blank := "   "
	verr := validationError(t, func() error {
		_, err := ProfileChanges(&types.UpdateProfileRequest{FirstName: &blank})
		return err
	}())
	assert.Equal(t, []string{"First name cannot be empty."}, verr.FieldErrors["first_name"])
}
