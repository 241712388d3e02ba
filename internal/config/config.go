package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	LogLevel    string
	CORSOrigins []string

	// AWS Textract (OCR fallback). All three must be set for the
	// fallback to be available; the service runs without it.
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string

	// Generation backend
	OpenRouterAPIKey string
	OpenRouterModel  string

	// Upload limits
	MaxFileSize int64

	// Worker pool size for blocking extraction work; 0 = GOMAXPROCS.
	ExtractionWorkers int
}

func Load() (*Config, error) {
	// Best-effort .env load for local development.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSOrigins:        splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSRegion:          getEnv("AWS_REGION", ""),
		OpenRouterAPIKey:   getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterModel:    getEnv("OPENROUTER_MODEL", "openai/gpt-4o-mini"),
		MaxFileSize:        5 * 1024 * 1024,
		ExtractionWorkers:  0,
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
