package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultJWTAccessTTL   = "24h"
	defaultResetCodeTTL   = "1h"
	defaultTwoFactorTTL   = "5m"
	defaultResendCooldown = "60s"
	defaultJWTSecret      = "change-me-jwt-secret"
	defaultUploadDir      = "uploads"
	defaultListenAddr     = ":8080"
	defaultPortalBaseURL  = "http://localhost:5173"
)

type RuntimeConfig struct {
	AppEnv         string
	ListenAddr     string
	DatabaseURL    string
	JWTSecret      string
	JWTAccessTTL   time.Duration
	ResetCodeTTL   time.Duration
	TwoFactorTTL   time.Duration
	ResendCooldown time.Duration
	UploadDir      string
	PortalBaseURL  string
}

func Load() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = getEnv("LISTEN_ADDR", defaultListenAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", "bauportal.db")
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.UploadDir = getEnv("UPLOAD_DIR", defaultUploadDir)
	cfg.PortalBaseURL = strings.TrimRight(getEnv("PORTAL_BASE_URL", defaultPortalBaseURL), "/")

	var err error
	if cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL); err != nil {
		return nil, err
	}
	if cfg.ResetCodeTTL, err = parseDurationEnv("RESET_CODE_TTL", defaultResetCodeTTL); err != nil {
		return nil, err
	}
	if cfg.TwoFactorTTL, err = parseDurationEnv("TWO_FACTOR_TTL", defaultTwoFactorTTL); err != nil {
		return nil, err
	}
	if cfg.ResendCooldown, err = parseDurationEnv("RESEND_COOLDOWN", defaultResendCooldown); err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *RuntimeConfig) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.ResetCodeTTL <= 0 {
		return fmt.Errorf("RESET_CODE_TTL must be > 0")
	}
	if cfg.TwoFactorTTL <= 0 {
		return fmt.Errorf("TWO_FACTOR_TTL must be > 0")
	}
	if isProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if !strings.HasPrefix(cfg.DatabaseURL, "postgres://") && !strings.HasPrefix(cfg.DatabaseURL, "postgresql://") {
			return fmt.Errorf("in prod/release DATABASE_URL must point at PostgreSQL")
		}
	}
	return nil
}

func isProdLike(env string) bool {
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

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
