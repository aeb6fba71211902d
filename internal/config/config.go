// Package config loads the runtime configuration from the environment,
// with an optional .env file for local runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// PlaceholderAPIKey is the sample value shipped in .env templates. It
// is treated the same as an unset key.
const PlaceholderAPIKey = "YOUR_GOOGLE_AI_STUDIO_KEY_HERE"

type Config struct {
	InputPath      string `validate:"required"`
	OutputPath     string `validate:"required"`
	FailureLogPath string `validate:"required"`

	GoogleAPIKey string
	Model        string `validate:"required"`

	MinSegmentLength int           `validate:"min=0"`
	SuccessDelay     time.Duration `validate:"min=0"`
	FailureDelay     time.Duration `validate:"min=0"`
	ExtractRetries   int           `validate:"min=0"`

	LogLevel string
	Port     int `validate:"min=0,max=65535"`

	DatabaseURL string

	NatsURL   string
	NatsToken string

	SlackBotToken string
	SlackChannel  string
}

// Load reads the configuration. A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		InputPath:        envStr("SCRIBE_INPUT", "minutes.txt"),
		OutputPath:       envStr("SCRIBE_OUTPUT", "formatted_minutes.jsonl"),
		FailureLogPath:   envStr("SCRIBE_FAILURE_LOG", "errors.log"),
		GoogleAPIKey:     envStr("GOOGLE_API_KEY", ""),
		Model:            envStr("SCRIBE_MODEL", "gemini-2.0-flash"),
		MinSegmentLength: envInt("SCRIBE_MIN_SEGMENT_LEN", 50),
		SuccessDelay:     envDur("SCRIBE_SUCCESS_DELAY", 6*time.Second),
		FailureDelay:     envDur("SCRIBE_FAILURE_DELAY", 10*time.Second),
		ExtractRetries:   envInt("SCRIBE_EXTRACT_RETRIES", 2),
		LogLevel:         envStr("LOG_LEVEL", "info"),
		Port:             envInt("SCRIBE_PORT", 0),
		DatabaseURL:      envStr("DATABASE_URL", ""),
		NatsURL:          envStr("NATS_URL", ""),
		NatsToken:        envStr("NATS_TOKEN", ""),
		SlackBotToken:    envStr("SLACK_BOT_TOKEN", ""),
		SlackChannel:     envStr("SLACK_SUMMARY_CHANNEL", ""),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// HasAPIKey reports whether a usable credential is configured. A missing
// or placeholder key is surfaced as a startup warning, not a crash: the
// run will proceed and every extraction will land in the failure log.
func (c Config) HasAPIKey() bool {
	return c.GoogleAPIKey != "" && c.GoogleAPIKey != PlaceholderAPIKey
}

// MaskedAPIKey returns a loggable preview of the credential.
func (c Config) MaskedAPIKey() string {
	if len(c.GoogleAPIKey) < 12 {
		return "(unset)"
	}
	return c.GoogleAPIKey[:6] + "..." + c.GoogleAPIKey[len(c.GoogleAPIKey)-4:]
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDur(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
