package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAddr          = ":8080"
	defaultDatabaseURL   = "echocast.db"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultJWTAccessTTL  = "30m"
	defaultUploadDir     = "./uploads"
	defaultMaxUploadSize = 50 << 20 // 50 MB
)

// Config holds all process-wide settings. It is built once at startup and
// handed to constructors; core packages never read the environment themselves.
type Config struct {
	AppEnv        string
	Addr          string
	DatabaseURL   string
	JWTSecret     string
	JWTAccessTTL  time.Duration
	UploadDir     string
	MaxUploadSize int64
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = strings.TrimSpace(getEnv("ADDR", defaultAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.UploadDir = strings.TrimSpace(getEnv("UPLOAD_DIR", defaultUploadDir))

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.MaxUploadSize, err = parseInt64Env("MAX_UPLOAD_SIZE", defaultMaxUploadSize)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.MaxUploadSize <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be > 0")
	}
	if cfg.UploadDir == "" {
		return fmt.Errorf("UPLOAD_DIR must not be empty")
	}
	if isProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseInt64Env(name string, fallback int64) (int64, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, raw, err)
	}
	return v, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
