package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration sourced from env vars. The signing
// secret has no fallback on purpose: startup must fail loudly when it is
// unset instead of silently minting tokens with a known key.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigins []string
	UploadDir   string
	BaseURL     string
	LogLevel    string
}

// Load reads configuration from the environment and validates the pieces
// the server cannot run without.
func Load() (Config, error) {
	cfg := Config{
		Port:        fallback(os.Getenv("PORT"), "5050"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		CORSOrigins: parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		UploadDir:   fallback(os.Getenv("UPLOAD_DIR"), "uploads"),
		LogLevel:    fallback(os.Getenv("LOG_LEVEL"), "info"),
	}
	cfg.BaseURL = fallback(os.Getenv("API_BASE_URL"), "http://localhost:"+cfg.Port)

	minutes := fallback(os.Getenv("TOKEN_TTL_MINUTES"), "60")
	if ttl, err := strconv.Atoi(minutes); err == nil && ttl > 0 {
		cfg.TokenTTL = time.Duration(ttl) * time.Minute
	} else {
		cfg.TokenTTL = time.Hour
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
