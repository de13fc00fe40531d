package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds everything the pipeline reads from the environment.
// CLI flags may override individual fields after Load.
type Config struct {
	Gemini GeminiConfig
	OCR    OCRConfig
	R2     R2Config
}

// GeminiConfig holds catalog-inference settings. Required only for `convert`.
type GeminiConfig struct {
	APIKey string `validate:"required"`
	Model  string `validate:"required"`
}

// OCRConfig holds text-extraction settings.
type OCRConfig struct {
	Workers int           `validate:"min=0,max=64"`
	Timeout time.Duration `validate:"required"`
}

// R2Config holds optional S3-compatible storage for finished exports.
// All fields set => uploads enabled.
type R2Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	BaseURL   string
}

func (r R2Config) Enabled() bool {
	return r.Endpoint != "" && r.AccessKey != "" && r.SecretKey != "" && r.Bucket != ""
}

// Load reads configuration from environment variables, loading .env first
// outside production.
func Load() *Config {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	return &Config{
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", os.Getenv("GOOGLE_API_KEY")),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.0-flash-exp"),
		},
		OCR: OCRConfig{
			Workers: getEnvAsInt("OCR_WORKERS", 0), // 0 = auto-size
			Timeout: getEnvAsDuration("OCR_TIMEOUT", 30*time.Second),
		},
		R2: R2Config{
			Endpoint:  getEnv("R2_ENDPOINT", ""),
			AccessKey: getEnv("R2_ACCESS_KEY", ""),
			SecretKey: getEnv("R2_SECRET_KEY", ""),
			Bucket:    getEnv("R2_BUCKET_NAME", ""),
			BaseURL:   getEnv("R2_PUBLIC_BASE_URL", ""),
		},
	}
}

var validate = validator.New()

// ValidateForConvert checks the fields the convert pipeline depends on.
// The ocr-only command does not need Gemini credentials.
func (c *Config) ValidateForConvert() error {
	if err := validate.Struct(c.Gemini); err != nil {
		return fmt.Errorf("gemini config: %w", err)
	}
	if err := validate.Struct(c.OCR); err != nil {
		return fmt.Errorf("ocr config: %w", err)
	}
	return nil
}

// ValidateForOCR checks the fields the ocr-only command depends on.
func (c *Config) ValidateForOCR() error {
	if err := validate.Struct(c.OCR); err != nil {
		return fmt.Errorf("ocr config: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
