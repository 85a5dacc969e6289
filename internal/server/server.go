package server

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/healthlog/backend/config"
	"github.com/pageza/healthlog/backend/internal/api"
	"github.com/pageza/healthlog/backend/internal/events"
	"github.com/pageza/healthlog/backend/internal/middleware"
	"github.com/pageza/healthlog/backend/internal/router"
	"github.com/pageza/healthlog/backend/internal/service"
)

// Dependencies are the external resources the server runs against. Redis, Publisher and Store
// are optional.
type Dependencies struct {
	DB        *gorm.DB
	Redis     *redis.Client
	Publisher events.Publisher
	Store     service.ObjectStore
}

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	auth   *service.AuthService
}

// New wires services and handlers and creates a new server instance
func New(cfg *config.Config, deps Dependencies) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	publisher := deps.Publisher
	if publisher == nil {
		publisher = events.Nop{}
	}

	auth := service.NewAuthService(deps.DB, cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	profiles := service.NewProfileService(deps.DB)
	weight := service.NewWeightService(deps.DB, publisher)
	bp := service.NewBloodPressureService(deps.DB, publisher)
	symptoms := service.NewSymptomService(deps.DB, publisher)
	charts := service.NewChartService(deps.DB)
	exports := service.NewExportService(deps.Store, profiles, weight, bp, symptoms)

	handlers := router.Handlers{
		Auth:          api.NewAuthHandler(auth),
		Profile:       api.NewProfileHandler(profiles),
		Weight:        api.NewWeightHandler(weight),
		BloodPressure: api.NewBloodPressureHandler(bp),
		Symptom:       api.NewSymptomHandler(symptoms),
		Chart:         api.NewChartHandler(charts),
		Export:        api.NewExportHandler(exports),
		Health:        api.NewHealthHandler(deps.DB),
	}
	opts := router.Options{
		CORSOrigins: cfg.CORSOrigins,
		RequestLog:  cfg.RequestLogEnable,
		Auth:        auth,
	}
	if deps.Redis != nil {
		limiter := middleware.NewWriteRateLimiter(deps.Redis, cfg.WriteRateLimit, cfg.WriteRateWindow)
		opts.Limiter = limiter
		handlers.RateLimit = api.NewRateLimitHandler(limiter, cfg.WriteRateLimit, cfg.WriteRateWindow)
	} else {
		log.Printf("Redis not configured, write rate limiting disabled")
	}

	r := router.SetupRouter(handlers, opts)

	return &Server{
		router: r,
		http: &http.Server{
			Addr:    cfg.Addr(),
			Handler: r,
		},
		auth: auth,
	}
}

// Handler returns the HTTP handler of the server
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens until Shutdown is called
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server, waiting for in-flight requests until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
