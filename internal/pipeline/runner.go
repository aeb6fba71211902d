// Package pipeline drives the conversion run: segment the archive, call
// the extraction service per segment, normalize dates, and append the
// results to the output sinks.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/ironbrookmc/scribe/internal/dates"
	"github.com/ironbrookmc/scribe/internal/extractor"
	"github.com/ironbrookmc/scribe/internal/minutes"
	"github.com/ironbrookmc/scribe/internal/segment"
)

// Config holds the runner's scheduling and filtering knobs.
type Config struct {
	MinSegmentLength int
	SuccessDelay     time.Duration // pause after a persisted segment (rate limit)
	FailureDelay     time.Duration // longer pause after a failed segment
	ExtractRetries   uint64        // extra extraction attempts per segment
}

// RecordSink receives every successfully processed record, in order.
type RecordSink interface {
	Append(rec *minutes.Record) error
}

// FailureSink receives segments that could not be processed.
type FailureSink interface {
	Record(index int, reason error, segment string) error
}

// Archiver is an optional secondary sink (the Postgres store). Archive
// errors are logged, not fatal: the NDJSON stream is the system of
// record.
type Archiver interface {
	SaveMeeting(ctx context.Context, rec *minutes.Record) error
}

// Publisher is an optional event emitter for run observability.
type Publisher interface {
	RecordPersisted(index int, date string)
	RecordFailed(index int, reason string)
	RunCompleted(persisted, failed int)
}

// Summary is returned after a run for the final console report.
type Summary struct {
	Segments  int
	Persisted int
	Failed    int
	Elapsed   time.Duration
}

// Runner processes segments strictly sequentially, one extraction call
// in flight at a time. Per-segment failures are isolated: they go to the
// failure sink and the run continues. Only output persistence failures
// abort the run.
type Runner struct {
	cfg       Config
	extractor extractor.Service
	out       RecordSink
	failures  FailureSink
	archive   Archiver  // may be nil
	events    Publisher // may be nil
	logger    *slog.Logger
	progress  *Progress
}

func NewRunner(cfg Config, ext extractor.Service, out RecordSink, failures FailureSink, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:       cfg,
		extractor: ext,
		out:       out,
		failures:  failures,
		logger:    logger,
		progress:  &Progress{},
	}
}

// SetArchiver attaches the optional Postgres sink.
func (r *Runner) SetArchiver(a Archiver) { r.archive = a }

// SetPublisher attaches the optional event publisher.
func (r *Runner) SetPublisher(p Publisher) { r.events = p }

// Progress exposes the live counters for the status API.
func (r *Runner) Progress() *Progress { return r.progress }

// Run converts the whole archive. It returns a non-nil Summary even on
// error so the caller can report partial progress.
func (r *Runner) Run(ctx context.Context, text string) (*Summary, error) {
	started := time.Now()
	segments := segment.Split(text, r.cfg.MinSegmentLength)

	summary := &Summary{Segments: len(segments)}
	r.progress.total.Store(int64(len(segments)))

	r.logger.Info("archive segmented", "entries", len(segments))

	for i, seg := range segments {
		select {
		case <-ctx.Done():
			summary.Elapsed = time.Since(started)
			return summary, ctx.Err()
		default:
		}

		index := i + 1
		r.logger.Info("processing entry", "index", index, "total", len(segments))

		rec, err := r.extract(ctx, seg)
		if err != nil {
			r.logger.Error("entry failed", "index", index, "error", err)
			if logErr := r.failures.Record(index, err, seg); logErr != nil {
				// Losing failure records silently is as bad as losing
				// output records.
				summary.Elapsed = time.Since(started)
				return summary, fmt.Errorf("record failure for entry %d: %w", index, logErr)
			}
			summary.Failed++
			r.progress.processed.Add(1)
			r.progress.failed.Add(1)
			if r.events != nil {
				r.events.RecordFailed(index, err.Error())
			}
			r.pause(ctx, r.cfg.FailureDelay)
			continue
		}

		rec.Date = dates.Normalize(rec.Date)
		rec.OriginalText = seg

		if err := r.out.Append(rec); err != nil {
			summary.Elapsed = time.Since(started)
			return summary, fmt.Errorf("persist entry %d: %w", index, err)
		}

		if r.archive != nil {
			if err := r.archive.SaveMeeting(ctx, rec); err != nil {
				r.logger.Warn("archive store write failed", "index", index, "error", err)
			}
		}

		summary.Persisted++
		r.progress.processed.Add(1)
		r.progress.persisted.Add(1)
		if r.events != nil {
			r.events.RecordPersisted(index, rec.Date)
		}

		r.logger.Info("entry persisted", "index", index, "date", rec.Date)
		r.pause(ctx, r.cfg.SuccessDelay)
	}

	summary.Elapsed = time.Since(started)
	if r.events != nil {
		r.events.RunCompleted(summary.Persisted, summary.Failed)
	}

	r.logger.Info("run complete",
		"entries", summary.Segments,
		"persisted", summary.Persisted,
		"failed", summary.Failed,
		"elapsed", summary.Elapsed.Round(time.Millisecond),
	)
	return summary, nil
}

// extract calls the extraction service, retrying transient failures with
// exponential backoff before declaring the segment failed.
func (r *Runner) extract(ctx context.Context, seg string) (*minutes.Record, error) {
	var rec *minutes.Record

	op := func() error {
		var err error
		rec, err = r.extractor.Extract(ctx, seg)
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 30 * time.Second

	if err := backoff.Retry(op, backoff.WithMaxRetries(backoff.WithContext(bo, ctx), r.cfg.ExtractRetries)); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *Runner) pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
