package search

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/summa-explorer/summa/internal/db"
	"github.com/summa-explorer/summa/internal/pathtoken"
)

// Index is a searchable collection of entries.
type Index interface {
	// Add indexes entries in addition to those already present.
	Add(ctx context.Context, entries []Entry) error
	// Reset removes every entry.
	Reset(ctx context.Context) error
	// Search returns at most limit hits, best first.
	Search(ctx context.Context, query string, limit int) ([]Hit, error)
	// Count returns the number of indexed entries.
	Count() int
}

// KeywordIndex is a full-text index backed by an SQLite FTS5 table. Results
// are ranked with bm25, weighting titles above body text.
type KeywordIndex struct {
	db *db.DB
}

// NewKeywordIndex creates a KeywordIndex on the given database.
func NewKeywordIndex(database *db.DB) *KeywordIndex {
	return &KeywordIndex{db: database}
}

func (k *KeywordIndex) Add(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := k.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning index transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO search_entries (token, kind, title, content) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.ID, e.Kind.String(), e.Title, e.Content); err != nil {
			return fmt.Errorf("indexing %s: %w", e.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing index: %w", err)
	}
	return nil
}

func (k *KeywordIndex) Reset(ctx context.Context) error {
	if _, err := k.db.ExecContext(ctx, `DELETE FROM search_entries`); err != nil {
		return fmt.Errorf("clearing keyword index: %w", err)
	}
	return nil
}

func (k *KeywordIndex) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	match := MatchExpression(query)
	if match == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := k.db.QueryContext(ctx, `
		SELECT token, kind, title,
		       snippet(search_entries, -1, '**', '**', '…', 16),
		       bm25(search_entries, 0.0, 0.0, 10.0, 1.0) AS rank
		FROM search_entries
		WHERE search_entries MATCH ?
		ORDER BY rank
		LIMIT ?`, match, limit)
	if err != nil {
		return nil, fmt.Errorf("keyword search: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var (
			h    Hit
			kind string
			rank float64
		)
		if err := rows.Scan(&h.ID, &kind, &h.Title, &h.Snippet, &rank); err != nil {
			return nil, fmt.Errorf("scanning keyword hit: %w", err)
		}
		if err := h.Kind.UnmarshalText([]byte(kind)); err != nil {
			return nil, fmt.Errorf("hit %s: %w", h.ID, err)
		}
		// bm25 is lower-is-better and negative; flip it so higher is better.
		h.Score = -rank
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

func (k *KeywordIndex) Count() int {
	var n int
	if err := k.db.QueryRow(`SELECT COUNT(*) FROM search_entries`).Scan(&n); err != nil {
		return 0
	}
	return n
}

// MatchExpression turns free text into an FTS5 query: every word becomes a
// quoted prefix term and all terms must match. Punctuation and FTS operators
// in the input are dropped, so the result never fails to parse.
func MatchExpression(text string) string {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	terms := make([]string, 0, len(words))
	for _, w := range words {
		terms = append(terms, `"`+w+`"*`)
	}
	return strings.Join(terms, " ")
}

// kindOf reports the level of a hit from its token.
func kindOf(token string) pathtoken.Kind {
	k, _ := pathtoken.Leaf(token)
	return k
}
