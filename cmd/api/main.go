package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pageza/healthlog/backend/config"
	"github.com/pageza/healthlog/backend/internal/database"
	"github.com/pageza/healthlog/backend/internal/events"
	"github.com/pageza/healthlog/backend/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	deps := server.Dependencies{DB: db}

	// Redis only backs the write rate limiter; without it writes are not limited
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Rate limiting disabled: %v", err)
	} else {
		deps.Redis = redisClient
	}

	publisher := events.New(cfg.KafkaBrokers, cfg.KafkaTopic)
	deps.Publisher = publisher

	if cfg.S3Bucket != "" {
		s3Cfg, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			log.Printf("Exports disabled: %v", err)
		} else {
			deps.Store = s3Cfg
		}
	}

	srv := server.New(cfg, deps)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", cfg.Addr())
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	if err := publisher.Close(); err != nil {
		log.Printf("Failed to close event publisher: %v", err)
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Failed to close redis client: %v", err)
		}
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Println("Server stopped")
}
