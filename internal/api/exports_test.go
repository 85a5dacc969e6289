package api

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/healthlog/backend/internal/mocks"
	"github.com/pageza/healthlog/backend/internal/service"
	"github.com/pageza/healthlog/backend/internal/types"
)

func TestCreateExport(t *testing.T) {
	userID := uuid.New()
	expires := time.Date(2024, 3, 10, 12, 15, 0, 0, time.UTC)

	svc := new(mocks.MockExportService)
	svc.On("ExportRecords", mock.Anything, userID, mock.AnythingOfType("time.Time")).
		Return(&types.ExportResponse{Key: "exports/x.json", URL: "https://bucket/x", ExpiresAt: expires}, nil)

	rr := perform(newTestRouter(NewExportHandler(svc), userID), http.MethodPost, "/api/exports", "")

	assertStatus(t, rr, http.StatusCreated)
	assert.JSONEq(t, `{"key":"exports/x.json","url":"https://bucket/x","expires_at":"2024-03-10T12:15:00Z"}`, rr.Body.String())
}

func TestCreateExportFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"disabled", service.ErrExportsDisabled, http.StatusServiceUnavailable, `{"message":"Exports are not available"}`},
		{"upload failure", errors.New("AccessDenied"), http.StatusInternalServerError, `{"message":"Internal Server Error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockExportService)
			svc.On("ExportRecords", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rr := perform(newTestRouter(NewExportHandler(svc), uuid.New()), http.MethodPost, "/api/exports", "")

			assertStatus(t, rr, tt.status)
			assert.JSONEq(t, tt.body, rr.Body.String())
		})
	}
}
