package sink

import (
	"fmt"
	"os"
)

// FailureLog records segments that could not be processed, preserving
// their verbatim text so a later run (or a human) can retry them.
type FailureLog struct {
	f *os.File
}

func NewFailureLog(path string) (*FailureLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open failure log %s: %w", path, err)
	}
	return &FailureLog{f: f}, nil
}

// Record appends one failure block: the 1-based segment index, the
// reason, a separator, and the segment text, followed by a blank line.
func (l *FailureLog) Record(index int, reason error, segment string) error {
	if _, err := fmt.Fprintf(l.f, "Entry %d failed: %v\n---\n%s\n\n", index, reason, segment); err != nil {
		return fmt.Errorf("write failure log: %w", err)
	}
	if err := l.f.Sync(); err != nil {
		return fmt.Errorf("sync failure log: %w", err)
	}
	return nil
}

func (l *FailureLog) Close() error {
	return l.f.Close()
}
