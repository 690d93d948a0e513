package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database      DatabaseConfig
	Storage       StorageConfig
	NLP           NLPConfig
	Zoning        ZoningConfig
	Normalization NormalizationConfig
	Deletion      DeletionConfig
}

// DatabaseConfig holds decision-database configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// StorageConfig names the object-storage buckets.
type StorageConfig struct {
	RawBucket               string
	NormalizedBucket        string
	PDFSuccessBucket        string
	PDFFailedBucket         string
	DeletionPendingBucket   string
	DeletionProcessedBucket string
}

// NLPConfig holds the pdf-to-text service configuration.
type NLPConfig struct {
	// Enabled selects the external text source; when false the text embedded
	// in the raw decision is used instead.
	Enabled bool
	URL     string
	Timeout time.Duration
	// MaxAttempts is the per-PDF extraction ceiling before quarantine.
	MaxAttempts int
}

// ZoningConfig holds the best-effort zoning classifier configuration.
type ZoningConfig struct {
	URL     string
	Timeout time.Duration
}

// NormalizationConfig drives the normalization batch.
type NormalizationConfig struct {
	Interval          time.Duration
	PageSize          int
	CooldownOnError   time.Duration
	CooldownRateLimit time.Duration
	// CommissioningDate is the service go-live date; older decisions are ignored.
	CommissioningDate time.Time
	// JurisdictionWhitelist lists jurisdiction IDs authorized for treatment.
	JurisdictionWhitelist []string
	// ErroneousJurisdictions lists sources known to submit empty redaction forms.
	ErroneousJurisdictions []string
}

// DeletionConfig drives the deletion-reconciliation batch.
type DeletionConfig struct {
	Interval time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Storage: StorageConfig{
			RawBucket:               getEnv("BUCKET_RAW", "juritcom-raw"),
			NormalizedBucket:        getEnv("BUCKET_NORMALIZED", "juritcom-normalized"),
			PDFSuccessBucket:        getEnv("BUCKET_PDF_SUCCESS", "juritcom-pdf2text-success"),
			PDFFailedBucket:         getEnv("BUCKET_PDF_FAILED", "juritcom-pdf2text-failed"),
			DeletionPendingBucket:   getEnv("BUCKET_DELETION_PENDING", "juritcom-deletion-pending"),
			DeletionProcessedBucket: getEnv("BUCKET_DELETION_PROCESSED", "juritcom-deletion-processed"),
		},
		NLP: NLPConfig{
			Enabled:     getEnvAsBool("NLP_PSEUDO_ENABLED", false),
			URL:         getEnv("NLP_PDF_TO_TEXT_URL", ""),
			Timeout:     getEnvAsDuration("NLP_TIMEOUT", 120*time.Second),
			MaxAttempts: getEnvAsInt("NLP_MAX_ATTEMPTS", 3),
		},
		Zoning: ZoningConfig{
			URL:     getEnv("ZONING_URL", ""),
			Timeout: getEnvAsDuration("ZONING_TIMEOUT", 10*time.Second),
		},
		Normalization: NormalizationConfig{
			Interval:               getEnvAsDuration("NORMALIZATION_INTERVAL", 30*time.Minute),
			PageSize:               getEnvAsInt("NORMALIZATION_PAGE_SIZE", 100),
			CooldownOnError:        getEnvAsDuration("NORMALIZATION_COOLDOWN", 10*time.Second),
			CooldownRateLimit:      getEnvAsDuration("NORMALIZATION_COOLDOWN_RATE_LIMIT", 20*time.Second),
			CommissioningDate:      getEnvAsDate("COMMISSIONING_DATE", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)),
			JurisdictionWhitelist:  getEnvAsList("JURISDICTION_WHITELIST", nil),
			ErroneousJurisdictions: getEnvAsList("ERRONEOUS_JURISDICTIONS", nil),
		},
		Deletion: DeletionConfig{
			Interval: getEnvAsDuration("DELETION_INTERVAL", 1*time.Hour),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsDate(key string, defaultValue time.Time) time.Time {
	if value := os.Getenv(key); value != "" {
		if d, err := time.Parse("2006-01-02", value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.NLP.Enabled && c.NLP.URL == "" {
		return NewAppError("CONFIG_ERROR", "NLP_PDF_TO_TEXT_URL is required when NLP_PSEUDO_ENABLED", ErrInvalidInput)
	}
	if c.NLP.MaxAttempts < 1 {
		return NewAppError("CONFIG_ERROR", "NLP_MAX_ATTEMPTS must be >= 1", ErrInvalidInput)
	}
	return nil
}
