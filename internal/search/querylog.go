package search

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/summa-explorer/summa/internal/db"
)

// timeLayout sorts lexically in chronological order.
const timeLayout = "2006-01-02T15:04:05.000000Z"

// QueryRecord is one answered search.
type QueryRecord struct {
	ID        string    `json:"id"`
	Query     string    `json:"query"`
	Mode      Mode      `json:"mode"`
	Hits      int       `json:"hits"`
	CreatedAt time.Time `json:"created_at"`
}

// QueryLog stores answered searches in SQLite.
type QueryLog struct {
	db  *db.DB
	now func() time.Time
}

// NewQueryLog creates a QueryLog backed by the given database.
func NewQueryLog(database *db.DB) *QueryLog {
	return &QueryLog{db: database, now: time.Now}
}

// Record inserts a new entry with a fresh UUID.
func (l *QueryLog) Record(ctx context.Context, query string, mode Mode, hits int) (QueryRecord, error) {
	rec := QueryRecord{
		ID:        uuid.New().String(),
		Query:     query,
		Mode:      mode,
		Hits:      hits,
		CreatedAt: l.now().UTC(),
	}
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO search_queries (id, query, mode, hits, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Query, string(rec.Mode), rec.Hits, rec.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return QueryRecord{}, fmt.Errorf("inserting query record: %w", err)
	}
	return rec, nil
}

// Recent returns up to limit records, newest first.
func (l *QueryLog) Recent(ctx context.Context, limit int) ([]QueryRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, query, mode, hits, created_at
		FROM search_queries
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent searches: %w", err)
	}
	defer rows.Close()

	var records []QueryRecord
	for rows.Next() {
		var (
			rec     QueryRecord
			mode    string
			created string
		)
		if err := rows.Scan(&rec.ID, &rec.Query, &mode, &rec.Hits, &created); err != nil {
			return nil, fmt.Errorf("scanning query record: %w", err)
		}
		rec.Mode = Mode(mode)
		if t, err := time.Parse(timeLayout, created); err == nil {
			rec.CreatedAt = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
