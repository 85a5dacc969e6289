package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/healthlog/backend/internal/database"
	"github.com/pageza/healthlog/backend/internal/middleware"
)

// HealthHandler reports whether the service can reach its store
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := database.HealthCheck(ctx, h.db); err != nil {
		log.Printf("[health] database check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// RateLimitHandler reports the caller's remaining write budget
type RateLimitHandler struct {
	limiter *middleware.RateLimiter
	limit   int
	window  time.Duration
}

func NewRateLimitHandler(limiter *middleware.RateLimiter, limit int, window time.Duration) *RateLimitHandler {
	return &RateLimitHandler{limiter: limiter, limit: limit, window: window}
}

func (h *RateLimitHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/rate-limits/writes", h.Writes)
}

func (h *RateLimitHandler) Writes(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	remaining, resetTime, err := h.limiter.GetRemainingRequests(c.Request.Context(), userID.String())
	if err != nil {
		internalError(c, "check rate limit", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"limit":      h.limit,
		"remaining":  remaining,
		"reset_time": resetTime.Unix(),
		"window":     h.window.String(),
	})
}
