package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultJWTAccessTTL     = "24h"
	defaultVerifyCodeTTL    = "10m"
	defaultVerifyResend     = "60s"
	defaultJWTSecret        = "change-me-jwt-secret"
	defaultVerifyCodePepper = "change-me-verification-pepper"
	defaultUploadDir        = "./uploads"
	defaultPort             = "8080"
)

// Config is the runtime configuration loaded from environment
// variables (a local .env file is honored when present).
type Config struct {
	AppEnv                 string
	Port                   string
	DatabaseURL            string
	JWTSecret              string
	JWTAccessTTL           time.Duration
	VerificationCodePepper string
	VerifyCodeTTL          time.Duration
	VerifyResendCooldown   time.Duration
	UploadDir              string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.VerificationCodePepper = strings.TrimSpace(getEnv("VERIFICATION_CODE_PEPPER", defaultVerifyCodePepper))
	cfg.UploadDir = strings.TrimSpace(getEnv("UPLOAD_DIR", defaultUploadDir))

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.VerifyCodeTTL, err = parseDurationEnv("VERIFY_CODE_TTL", defaultVerifyCodeTTL)
	if err != nil {
		return nil, err
	}

	cfg.VerifyResendCooldown, err = parseDurationEnv("VERIFY_RESEND_COOLDOWN", defaultVerifyResend)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.VerifyCodeTTL <= 0 {
		return fmt.Errorf("VERIFY_CODE_TTL must be > 0")
	}
	if cfg.VerifyResendCooldown <= 0 {
		return fmt.Errorf("VERIFY_RESEND_COOLDOWN must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.VerificationCodePepper, defaultVerifyCodePepper) {
			return fmt.Errorf("in prod/release VERIFICATION_CODE_PEPPER must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
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
