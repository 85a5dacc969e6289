package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/healthlog/backend/config"
	"github.com/pageza/healthlog/backend/internal/testhelpers"
	"github.com/pageza/healthlog/backend/internal/types"
)

func newTestServer(t *testing.T) *Server {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		ServerHost:      "localhost",
		ServerPort:      "8080",
		JWTSecret:       "test-secret",
		JWTIssuer:       "healthlog",
		TokenTTL:        time.Hour,
		CORSOrigins:     []string{"http://localhost:5173"},
		WriteRateLimit:  60,
		WriteRateWindow: time.Minute,
	}
	return New(cfg, Dependencies{DB: testhelpers.SetupSQLite(t)})
}

func (s *Server) token(t *testing.T, userID uuid.UUID) string {
	token, err := s.auth.GenerateToken(&types.TokenClaims{UserID: userID})
	require.NoError(t, err)
	return token
}

func (s *Server) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rr.Body.String())
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))

	rr = s.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/users/me", "/api/weight", "/api/blood-pressure", "/api/symptoms", "/api/charts/weight"} {
		rr := s.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)
		assert.JSONEq(t, `{"message":"Unauthorized"}`, rr.Body.String(), path)
	}
}

func TestWeightRecordScenario(t *testing.T) {
	s := newTestServer(t)
	owner := s.token(t, uuid.New())
	stranger := s.token(t, uuid.New())

	rr := s.do(t, http.MethodPost, "/api/weight", owner, map[string]interface{}{"date": "2024-01-15", "weight_kg": 70.5})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created types.WeightRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "2024-01-15", created.Date.String())
	assert.Equal(t, 70.5, created.WeightKG)

	rr = s.do(t, http.MethodGet, "/api/weight", owner, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list types.PaginatedResponse[types.WeightRecord]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, created.ID, list.Data[0].ID)
	assert.Equal(t, types.Pagination{Page: 1, PageSize: 30, Total: 1}, list.Pagination)

	path := fmt.Sprintf("/api/weight/%d", created.ID)
	rr = s.do(t, http.MethodDelete, path, stranger, nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.JSONEq(t, `{"message":"Forbidden"}`, rr.Body.String())

	rr = s.do(t, http.MethodDelete, path, owner, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = s.do(t, http.MethodDelete, path, owner, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Record not found"}`, rr.Body.String())

	rr = s.do(t, http.MethodGet, "/api/weight", owner, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[],"pagination":{"page":1,"pageSize":30,"total":0}}`, rr.Body.String())
}

func TestProfileScenario(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, uuid.New())

	rr := s.do(t, http.MethodGet, "/api/users/me", token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	profile := map[string]interface{}{
		"first_name": "Anna", "last_name": "Nowak", "date_of_birth": "1990-05-04", "height_cm": 170,
	}
	rr = s.do(t, http.MethodPost, "/api/users/me", token, profile)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = s.do(t, http.MethodPost, "/api/users/me", token, profile)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"message":"Profile already exists"}`, rr.Body.String())

	rr = s.do(t, http.MethodPut, "/api/users/me", token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Validation failed","errors":{"formErrors":["At least one field must be provided to update."],"fieldErrors":{}}}`, rr.Body.String())

	rr = s.do(t, http.MethodPut, "/api/users/me", token, map[string]interface{}{"height_cm": 172})
	require.Equal(t, http.StatusOK, rr.Code)
	var updated types.UserProfile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, 172, updated.HeightCM)
	assert.Equal(t, "Anna", updated.FirstName)
}

func TestRegisterLoginFlow(t *testing.T) {
	s := newTestServer(t)
	creds := map[string]string{"email": "anna@example.com", "password": "password123"}

	rr := s.do(t, http.MethodPost, "/api/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = s.do(t, http.MethodPost, "/api/auth/register", "", creds)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "anna@example.com", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = s.do(t, http.MethodPost, "/api/auth/login", "", creds)
	require.Equal(t, http.StatusOK, rr.Code)
	var auth types.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &auth))

	rr = s.do(t, http.MethodPost, "/api/symptoms", auth.Token, map[string]string{"date": "2024-03-01", "body_part": "knee", "pain_type": "sharp"})
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestExportWithoutBucket(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodPost, "/api/exports", s.token(t, uuid.New()), nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
