package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pageza/healthlog/backend/internal/types"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 30
	MaxPageSize     = 100
)

// Pagination parses the page and pageSize query parameters. Absent values fall back to the
// defaults; anything present must be a positive integer, with pageSize capped at MaxPageSize.
func Pagination(page, pageSize string) (types.Pagination, error) {
	out := newError()
	p := positiveInt(out, "page", page, DefaultPage)
	ps := positiveInt(out, "pageSize", pageSize, DefaultPageSize)
	if ps > MaxPageSize {
		out.add("pageSize", fmt.Sprintf("Must be at most %d.", MaxPageSize))
	}
	// the offset (page-1)*pageSize has to fit in an int
	if p > 0 && ps > 0 && ps <= MaxPageSize && p-1 > math.MaxInt/ps {
		out.add("page", "Page is out of range.")
	}
	if !out.empty() {
		return types.Pagination{}, out
	}
	return types.Pagination{Page: p, PageSize: ps}, nil
}

func positiveInt(out *Error, field, raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		out.add(field, "Expected a positive integer.")
		return 0
	}
	return n
}

// RecordID parses a record id path parameter
func RecordID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, FieldError("id", "Expected a positive integer.")
	}
	return id, nil
}

// Period parses the chart period query parameter, defaulting to a month
func Period(raw string) (types.ChartPeriod, error) {
	switch p := types.ChartPeriod(strings.ToLower(strings.TrimSpace(raw))); p {
	case "":
		return types.PeriodMonth, nil
	case types.PeriodWeek, types.PeriodMonth, types.PeriodQuarter, types.PeriodYear:
		return p, nil
	default:
		return "", FieldError("period", "Expected one of: week, month, quarter, year.")
	}
}

// ProfileUpdate validates a profile update; at least one field has to be present
func ProfileUpdate(req *types.UpdateProfileRequest) error {
	if req.Empty() {
		return FormError("At least one field must be provided to update.")
	}
	return Struct(req)
}
