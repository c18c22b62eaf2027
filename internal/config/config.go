package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process configuration, read once at startup. The availability
// lookahead window is an operational parameter: a missing or non-integer
// value is a boot failure, never a per-request error.
type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTTTL        time.Duration
	LookaheadDays int

	CORSAllowedOrigins []string
	RateLimitPerSec    float64
	RateLimitBurst     int
	CacheTTL           time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		JWTTTL:          24 * time.Hour,
		RateLimitPerSec: 20,
		RateLimitBurst:  40,
		CacheTTL:        30 * time.Second,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	raw := os.Getenv("BOOKING_LOOKAHEAD_DAYS")
	if raw == "" {
		return nil, fmt.Errorf("BOOKING_LOOKAHEAD_DAYS is empty")
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return nil, fmt.Errorf("BOOKING_LOOKAHEAD_DAYS must be a positive integer, got %q", raw)
	}
	cfg.LookaheadDays = days

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	if v := os.Getenv("RATE_LIMIT_PER_SEC"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.RateLimitPerSec = f
		}
	}
	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.CacheTTL = time.Duration(n) * time.Second
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
