// Package events publishes run progress to NATS so other archive
// tooling can follow a conversion without tailing logs.
package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const (
	SubjectRecordPersisted = "archive.scribe.record.persisted"
	SubjectRecordFailed    = "archive.scribe.record.failed"
	SubjectRunCompleted    = "archive.scribe.run.completed"
)

type recordEvent struct {
	RunID     string `json:"run_id"`
	Index     int    `json:"index"`
	Date      string `json:"date,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Timestamp string `json:"timestamp"`
}

type runCompletedEvent struct {
	RunID     string `json:"run_id"`
	Persisted int    `json:"persisted"`
	Failed    int    `json:"failed"`
	Timestamp string `json:"timestamp"`
}

// Publisher emits progress events for one run. Publishing is best
// effort: a dropped event is logged and the run carries on.
type Publisher struct {
	conn   *nats.Conn
	runID  uuid.UUID
	logger *slog.Logger
}

func Connect(url, token string, runID uuid.UUID, logger *slog.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Publisher{conn: nc, runID: runID, logger: logger}, nil
}

func (p *Publisher) RecordPersisted(index int, date string) {
	p.publish(SubjectRecordPersisted, recordEvent{
		RunID:     p.runID.String(),
		Index:     index,
		Date:      date,
		Timestamp: now(),
	})
}

func (p *Publisher) RecordFailed(index int, reason string) {
	p.publish(SubjectRecordFailed, recordEvent{
		RunID:     p.runID.String(),
		Index:     index,
		Reason:    reason,
		Timestamp: now(),
	})
}

func (p *Publisher) RunCompleted(persisted, failed int) {
	p.publish(SubjectRunCompleted, runCompletedEvent{
		RunID:     p.runID.String(),
		Persisted: persisted,
		Failed:    failed,
		Timestamp: now(),
	})
}

func (p *Publisher) Close() {
	_ = p.conn.Drain()
}

func (p *Publisher) publish(subject string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		p.logger.Warn("marshal event", "subject", subject, "error", err)
		return
	}
	if err := p.conn.Publish(subject, payload); err != nil {
		p.logger.Warn("publish event", "subject", subject, "error", err)
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
