// Package store is the optional Postgres archive sink. The NDJSON file
// remains the system of record; the table exists so downstream club
// tooling can query meetings without re-parsing JSONL.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ironbrookmc/scribe/internal/minutes"
)

type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// EnsureSchema creates the meetings table if it is missing. The tool is
// a standalone CLI, so it carries its own schema instead of relying on
// an external migration step.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS meetings (
			id            UUID PRIMARY KEY,
			meeting_date  DATE,
			location      TEXT NOT NULL DEFAULT '',
			record        JSONB NOT NULL,
			original_text TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("create meetings table: %w", err)
	}
	return nil
}

// SaveMeeting inserts one converted record. An empty canonical date is
// stored as NULL. Re-runs insert duplicates, mirroring the append-only
// output stream; deduplication is a downstream concern.
func (s *Store) SaveMeeting(ctx context.Context, rec *minutes.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	var date *string
	if rec.Date != "" {
		date = &rec.Date
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO meetings (id, meeting_date, location, record, original_text)
		VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), date, rec.Location, payload, rec.OriginalText,
	)
	if err != nil {
		return fmt.Errorf("insert meeting: %w", err)
	}
	return nil
}
