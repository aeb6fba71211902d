package pipeline

import "sync/atomic"

// Progress holds live run counters. The runner writes them from the
// processing loop and the status API reads them from its own goroutine,
// hence the atomics.
type Progress struct {
	total     atomic.Int64
	processed atomic.Int64
	persisted atomic.Int64
	failed    atomic.Int64
}

// Snapshot is a consistent-enough read of the counters for reporting.
type Snapshot struct {
	Total     int64 `json:"total"`
	Processed int64 `json:"processed"`
	Persisted int64 `json:"persisted"`
	Failed    int64 `json:"failed"`
}

func (p *Progress) Snapshot() Snapshot {
	return Snapshot{
		Total:     p.total.Load(),
		Processed: p.processed.Load(),
		Persisted: p.persisted.Load(),
		Failed:    p.failed.Load(),
	}
}
