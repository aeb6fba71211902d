// Package extractor turns one raw meeting segment into a structured
// record by calling the extraction model.
package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ironbrookmc/scribe/internal/gemini"
	"github.com/ironbrookmc/scribe/internal/minutes"
)

// Service is the extraction boundary: one segment in, one record or an
// error out. The pipeline depends on this interface so tests can swap in
// canned responses for the network-bound implementation.
type Service interface {
	Extract(ctx context.Context, segment string) (*minutes.Record, error)
}

// Gemini is the production Service, backed by the Gemini structured
// output API.
type Gemini struct {
	llm    *gemini.Client
	logger *slog.Logger
}

func New(llm *gemini.Client, logger *slog.Logger) *Gemini {
	return &Gemini{llm: llm, logger: logger}
}

// Extract sends the segment to the model and parses the response into a
// Record. The record's Date and OriginalText are returned as-is; the
// pipeline overwrites both.
func (g *Gemini) Extract(ctx context.Context, segment string) (*minutes.Record, error) {
	prompt := fmt.Sprintf(extractionUserPrompt, segment)

	g.logger.Debug("extracting segment", "segment_len", len(segment))

	raw, err := g.llm.Complete(ctx, systemPrompt, prompt, minutes.ResponseSchema())
	if err != nil {
		return nil, fmt.Errorf("llm extraction: %w", err)
	}

	var rec minutes.Record
	if err := json.Unmarshal([]byte(stripFences(raw)), &rec); err != nil {
		g.logger.Error("failed to parse extraction response",
			"error", err,
			"raw", raw,
		)
		return nil, fmt.Errorf("parse extraction: %w", err)
	}
	rec.EnsureDefaults()

	g.logger.Debug("extraction complete",
		"date", rec.Date,
		"members", len(rec.AttendanceMembers),
		"motions", len(rec.Motions),
	)

	return &rec, nil
}

// stripFences removes a surrounding markdown code block, which models
// sometimes emit even in JSON mode.
func stripFences(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	} else {
		return content
	}

	if idx := strings.LastIndex(content, "```"); idx != -1 {
		content = content[:idx]
	}
	return strings.TrimSpace(content)
}
