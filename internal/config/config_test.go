package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SCRIBE_INPUT", "SCRIBE_OUTPUT", "SCRIBE_FAILURE_LOG", "GOOGLE_API_KEY",
		"SCRIBE_MODEL", "SCRIBE_MIN_SEGMENT_LEN", "SCRIBE_SUCCESS_DELAY",
		"SCRIBE_FAILURE_DELAY", "SCRIBE_EXTRACT_RETRIES", "LOG_LEVEL",
		"SCRIBE_PORT", "DATABASE_URL", "NATS_URL", "NATS_TOKEN",
		"SLACK_BOT_TOKEN", "SLACK_SUMMARY_CHANNEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.InputPath != "minutes.txt" {
		t.Errorf("input = %q", cfg.InputPath)
	}
	if cfg.OutputPath != "formatted_minutes.jsonl" {
		t.Errorf("output = %q", cfg.OutputPath)
	}
	if cfg.FailureLogPath != "errors.log" {
		t.Errorf("failure log = %q", cfg.FailureLogPath)
	}
	if cfg.Model != "gemini-2.0-flash" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.MinSegmentLength != 50 {
		t.Errorf("min segment length = %d", cfg.MinSegmentLength)
	}
	if cfg.SuccessDelay != 6*time.Second {
		t.Errorf("success delay = %v", cfg.SuccessDelay)
	}
	if cfg.FailureDelay != 10*time.Second {
		t.Errorf("failure delay = %v", cfg.FailureDelay)
	}
	if cfg.ExtractRetries != 2 {
		t.Errorf("extract retries = %d", cfg.ExtractRetries)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
	if cfg.Port != 0 {
		t.Errorf("port = %d", cfg.Port)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCRIBE_INPUT", "/data/archive.txt")
	t.Setenv("SCRIBE_OUTPUT", "/data/out.jsonl")
	t.Setenv("SCRIBE_MIN_SEGMENT_LEN", "80")
	t.Setenv("SCRIBE_SUCCESS_DELAY", "250ms")
	t.Setenv("SCRIBE_FAILURE_DELAY", "1s")
	t.Setenv("SCRIBE_PORT", "8760")
	t.Setenv("GOOGLE_API_KEY", "AIzaSyTest1234567890")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.InputPath != "/data/archive.txt" {
		t.Errorf("input = %q", cfg.InputPath)
	}
	if cfg.MinSegmentLength != 80 {
		t.Errorf("min segment length = %d", cfg.MinSegmentLength)
	}
	if cfg.SuccessDelay != 250*time.Millisecond {
		t.Errorf("success delay = %v", cfg.SuccessDelay)
	}
	if cfg.FailureDelay != time.Second {
		t.Errorf("failure delay = %v", cfg.FailureDelay)
	}
	if cfg.Port != 8760 {
		t.Errorf("port = %d", cfg.Port)
	}
	if !cfg.HasAPIKey() {
		t.Error("expected HasAPIKey with a real key")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCRIBE_MIN_SEGMENT_LEN", "lots")
	t.Setenv("SCRIBE_SUCCESS_DELAY", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MinSegmentLength != 50 {
		t.Errorf("expected default on unparseable int, got %d", cfg.MinSegmentLength)
	}
	if cfg.SuccessDelay != 6*time.Second {
		t.Errorf("expected default on unparseable duration, got %v", cfg.SuccessDelay)
	}
}

func TestHasAPIKey(t *testing.T) {
	cases := []struct {
		key  string
		want bool
	}{
		{"", false},
		{PlaceholderAPIKey, false},
		{"AIzaSyRealLookingKey", true},
	}
	for _, c := range cases {
		cfg := Config{GoogleAPIKey: c.key}
		if got := cfg.HasAPIKey(); got != c.want {
			t.Errorf("HasAPIKey(%q) = %v, want %v", c.key, got, c.want)
		}
	}
}

func TestMaskedAPIKey(t *testing.T) {
	cfg := Config{GoogleAPIKey: "AIzaSy1234567890abcd"}
	masked := cfg.MaskedAPIKey()
	if masked != "AIzaSy...abcd" {
		t.Errorf("masked = %q", masked)
	}

	if got := (Config{}).MaskedAPIKey(); got != "(unset)" {
		t.Errorf("masked empty = %q", got)
	}
}
