// Package sink holds the pipeline's append-only outputs: the NDJSON
// record stream and the plain-text failure log.
package sink

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ironbrookmc/scribe/internal/minutes"
)

// Writer appends meeting records to an NDJSON file, one JSON object per
// line. The file is opened in append mode so re-runs never clobber
// earlier output, and every record is synced to disk before the next
// segment is processed — a crash loses at most the in-flight record.
type Writer struct {
	f *os.File
}

func NewWriter(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output %s: %w", path, err)
	}
	return &Writer{f: f}, nil
}

// Append writes one record as a JSON line and syncs.
func (w *Writer) Append(rec *minutes.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.f.Write(data); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	if err := w.f.Sync(); err != nil {
		return fmt.Errorf("sync output: %w", err)
	}
	return nil
}

func (w *Writer) Close() error {
	return w.f.Close()
}
