package api

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type routes interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// newTestRouter mounts h under /api with userID as the authenticated user; uuid.Nil means anonymous
func newTestRouter(h routes, userID uuid.UUID) *gin.Engine {
	router := gin.New()
	group := router.Group("/api")
	if userID != uuid.Nil {
		group.Use(func(c *gin.Context) {
			c.Set("user_id", userID)
			c.Next()
		})
	}
	h.RegisterRoutes(group)
	return router
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func assertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("status = %d, want %d, body: %s", rr.Code, want, rr.Body.String())
	}
}

