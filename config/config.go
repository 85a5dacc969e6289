package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration

	// Kafka configuration, empty brokers disables event publishing
	KafkaBrokers []string
	KafkaTopic   string

	// S3 configuration, empty bucket disables exports
	S3Bucket  string
	AWSRegion string

	CORSOrigins      []string
	WriteRateLimit   int
	WriteRateWindow  time.Duration
	MigrationsDir    string
	ShutdownTimeout  time.Duration
	RequestLogEnable bool
}

const (
	defaultSecretsDir = "/run/secrets"
	defaultTopic      = "health.records"
)

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	switch env {
	case CI:
		if err := loadCIConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load CI configuration: %w", err)
		}
	case Development, Test:
		if err := loadDevConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load development configuration: %w", err)
		}
	case Production:
		if err := loadProdConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load production configuration: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	loadCommon(cfg)

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCIConfig loads configuration for CI using only environment variables
func loadCIConfig(cfg *Config) error {
	cfg.ServerPort = getEnv("SERVER_PORT", "8080")
	cfg.ServerHost = getEnv("SERVER_HOST", "0.0.0.0")
	cfg.DBDriver = getEnv("DB_DRIVER", "postgres")
	cfg.DBHost = os.Getenv("DB_HOST")
	cfg.DBPort = getEnv("DB_PORT", "5432")
	cfg.DBUser = os.Getenv("DB_USER")
	cfg.DBName = os.Getenv("DB_NAME")
	cfg.DBSSLMode = getEnv("DB_SSL_MODE", "disable")
	cfg.RedisHost = os.Getenv("REDIS_HOST")
	cfg.RedisPort = os.Getenv("REDIS_PORT")

	cfg.DBPassword = os.Getenv("TEST_DB_PASSWORD")
	if cfg.DBPassword == "" {
		return fmt.Errorf("TEST_DB_PASSWORD environment variable is required in CI environment")
	}
	cfg.JWTSecret = os.Getenv("TEST_JWT_SECRET")
	cfg.RedisPassword = os.Getenv("TEST_REDIS_PASSWORD")
	cfg.RedisURL = os.Getenv("TEST_REDIS_URL")

	return nil
}

// loadDevConfig loads configuration for development and tests. Environment variables win over
// secret files, and a local SQLite database is used when nothing else is configured.
func loadDevConfig(cfg *Config) error {
	cfg.ServerPort = setting("SERVER_PORT", "server_port", "8080")
	cfg.ServerHost = setting("SERVER_HOST", "server_host", "localhost")
	cfg.DBDriver = setting("DB_DRIVER", "db_driver", "sqlite")
	cfg.DBHost = setting("DB_HOST", "db_host", "localhost")
	cfg.DBPort = setting("DB_PORT", "db_port", "5432")
	cfg.DBUser = setting("DB_USER", "db_user", "postgres")
	cfg.DBPassword = setting("DB_PASSWORD", "db_password", "postgres")
	cfg.DBName = setting("DB_NAME", "db_name", "healthlog")
	cfg.DBSSLMode = setting("DB_SSL_MODE", "db_ssl_mode", "disable")
	cfg.DBPath = setting("DB_PATH", "db_path", "healthlog.db")
	cfg.RedisHost = setting("REDIS_HOST", "redis_host", "")
	cfg.RedisPort = setting("REDIS_PORT", "redis_port", "6379")
	cfg.RedisPassword = setting("REDIS_PASSWORD", "redis_password", "")
	cfg.RedisURL = setting("REDIS_URL", "redis_url", "")
	cfg.JWTSecret = setting("JWT_SECRET", "jwt_secret", "development-secret")

	return nil
}

// loadProdConfig loads configuration for production; sensitive values come only from Docker secrets
func loadProdConfig(cfg *Config) error {
	cfg.ServerPort = getEnv("SERVER_PORT", "8080")
	cfg.ServerHost = getEnv("SERVER_HOST", "0.0.0.0")
	cfg.DBDriver = getEnv("DB_DRIVER", "postgres")
	cfg.DBHost = readSecret("db_host")
	cfg.DBPort = readSecret("db_port")
	cfg.DBUser = readSecret("db_user")
	cfg.DBPassword = readSecret("db_password")
	cfg.DBName = readSecret("db_name")
	cfg.DBSSLMode = readSecret("db_ssl_mode")
	cfg.RedisHost = readSecret("redis_host")
	cfg.RedisPort = readSecret("redis_port")
	cfg.RedisPassword = readSecret("redis_password")
	cfg.RedisURL = readSecret("redis_url")
	cfg.JWTSecret = readSecret("jwt_secret")

	return nil
}

// loadCommon fills the settings that are read the same way in every environment
func loadCommon(cfg *Config) {
	cfg.RedisDB = getIntEnv("REDIS_DB", 0)
	cfg.JWTIssuer = getEnv("JWT_ISSUER", "healthlog")
	cfg.TokenTTL = getDurationEnv("TOKEN_TTL", 24*time.Hour)
	cfg.KafkaBrokers = splitList(os.Getenv("KAFKA_BROKERS"))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", defaultTopic)
	cfg.S3Bucket = os.Getenv("S3_BUCKET_NAME")
	cfg.AWSRegion = getEnv("AWS_REGION", "eu-central-1")
	cfg.CORSOrigins = splitList(getEnv("CORS_ORIGINS", "http://localhost:4321,http://localhost:5173"))
	cfg.WriteRateLimit = getIntEnv("WRITE_RATE_LIMIT", 60)
	cfg.WriteRateWindow = getDurationEnv("WRITE_RATE_WINDOW", time.Minute)
	cfg.MigrationsDir = getEnv("MIGRATIONS_DIR", "migrations")
	cfg.ShutdownTimeout = getDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second)
	cfg.RequestLogEnable = getEnv("REQUEST_LOG", "true") == "true"
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// setting resolves a value from the environment, then the secrets directory, then the default
func setting(envName, secretName, def string) string {
	if v := os.Getenv(envName); v != "" {
		return v
	}
	if v := readSecret(secretName); v != "" {
		return v
	}
	return def
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = defaultSecretsDir
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
