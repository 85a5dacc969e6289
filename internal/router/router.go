package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/healthlog/backend/internal/api"
	"github.com/pageza/healthlog/backend/internal/middleware"
	"github.com/pageza/healthlog/backend/internal/observability"
)

// Handlers groups every handler the router mounts
type Handlers struct {
	Auth          *api.AuthHandler
	Profile       *api.ProfileHandler
	Weight        *api.WeightHandler
	BloodPressure *api.BloodPressureHandler
	Symptom       *api.SymptomHandler
	Chart         *api.ChartHandler
	Export        *api.ExportHandler
	Health        *api.HealthHandler
	// RateLimit is nil when rate limiting is off
	RateLimit *api.RateLimitHandler
}

// Options controls the middleware chain
type Options struct {
	CORSOrigins []string
	RequestLog  bool
	Auth        middleware.TokenValidator
	// Limiter is nil when Redis is not configured
	Limiter *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	if opts.RequestLog {
		router.Use(gin.Logger())
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(opts.CORSOrigins))

	router.GET("/health", h.Health.HealthCheck)
	router.GET("/metrics", gin.WrapH(observability.Handler()))

	apiGroup := router.Group("/api")

	// Auth routes
	h.Auth.RegisterRoutes(apiGroup)

	// Protected routes
	protected := apiGroup.Group("")
	protected.Use(middleware.AuthMiddleware(opts.Auth))
	if opts.Limiter != nil {
		protected.Use(opts.Limiter.RateLimitMiddleware())
	}
	{
		h.Profile.RegisterRoutes(protected)
		h.Weight.RegisterRoutes(protected)
		h.BloodPressure.RegisterRoutes(protected)
		h.Symptom.RegisterRoutes(protected)
		h.Chart.RegisterRoutes(protected)
		h.Export.RegisterRoutes(protected)
		if h.RateLimit != nil {
			h.RateLimit.RegisterRoutes(protected)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, middleware.ErrorResponse{Message: "Not found"})
	})

	return router
}
