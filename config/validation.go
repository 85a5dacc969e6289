package config

import (
	"errors"
	"fmt"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var supportedDrivers = map[string]bool{
	"postgres": true,
	"mysql":    true,
	"sqlite":   true,
}

// minProdSecretLen is the shortest JWT signing secret accepted in production
const minProdSecretLen = 32

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()
	var errs []error

	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: "is required"})
	}

	if !supportedDrivers[cfg.DBDriver] {
		errs = append(errs, ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	if cfg.DBDriver == "sqlite" {
		if env == Production {
			errs = append(errs, ValidationError{Field: "DB_DRIVER", Message: "sqlite is not allowed in production"})
		}
		if cfg.DBPath == "" {
			errs = append(errs, ValidationError{Field: "DB_PATH", Message: "is required for sqlite"})
		}
	} else {
		if cfg.DBHost == "" {
			errs = append(errs, ValidationError{Field: "DB_HOST", Message: "is required"})
		}
		if cfg.DBName == "" {
			errs = append(errs, ValidationError{Field: "DB_NAME", Message: "is required"})
		}
		if cfg.DBUser == "" {
			errs = append(errs, ValidationError{Field: "DB_USER", Message: "is required"})
		}
		if cfg.DBPassword == "" {
			errs = append(errs, ValidationError{Field: "DB_PASSWORD", Message: "is required"})
		}
	}

	// Sensitive values come from the environment in CI and from secrets elsewhere
	if cfg.JWTSecret == "" {
		field := "jwt_secret"
		if env == CI {
			field = "JWT_SECRET"
		}
		errs = append(errs, ValidationError{Field: field, Message: "is required"})
	} else if env == Production && len(cfg.JWTSecret) < minProdSecretLen {
		errs = append(errs, ValidationError{Field: "jwt_secret", Message: fmt.Sprintf("must be at least %d characters", minProdSecretLen)})
	}

	if cfg.TokenTTL <= 0 {
		errs = append(errs, ValidationError{Field: "TOKEN_TTL", Message: "must be positive"})
	}
	if cfg.WriteRateLimit <= 0 || cfg.WriteRateWindow <= 0 {
		errs = append(errs, ValidationError{Field: "WRITE_RATE_LIMIT", Message: "limit and window must be positive"})
	}

	return errors.Join(errs...)
}
