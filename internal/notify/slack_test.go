package notify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPostRunSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer xoxb-test" {
			t.Errorf("authorization = %q", got)
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload["channel"] != "C123" {
			t.Errorf("channel = %v", payload["channel"])
		}
		text, _ := payload["text"].(string)
		if !strings.Contains(text, "Converted: 41") || !strings.Contains(text, "Failed: 2") {
			t.Errorf("text = %q", text)
		}

		json.NewEncoder(w).Encode(map[string]any{"ok": true, "ts": "123.456"})
	}))
	defer server.Close()

	p := NewPoster("xoxb-test", "C123", discardLogger())
	p.SetAPIURL(server.URL)

	if err := p.PostRunSummary(context.Background(), 43, 41, 2, "out.jsonl"); err != nil {
		t.Fatalf("PostRunSummary: %v", err)
	}
}

func TestPostRunSummary_SlackError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "channel_not_found"})
	}))
	defer server.Close()

	p := NewPoster("xoxb-test", "C123", discardLogger())
	p.SetAPIURL(server.URL)

	err := p.PostRunSummary(context.Background(), 1, 1, 0, "out.jsonl")
	if err == nil || !strings.Contains(err.Error(), "channel_not_found") {
		t.Fatalf("expected slack error, got %v", err)
	}
}
