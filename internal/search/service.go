package search

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/summa-explorer/summa/internal/progress"
	"github.com/summa-explorer/summa/internal/summa"
)

// Mode selects the index a query runs against.
type Mode string

const (
	ModeKeyword  Mode = "keyword"
	ModeSemantic Mode = "semantic"
)

// Request is a search to run. An empty Mode uses the semantic index when one
// is configured.
type Request struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
	Mode  Mode   `json:"mode,omitempty"`
}

// Result is the answer to a Request.
type Result struct {
	Query string `json:"query"`
	Mode  Mode   `json:"mode"`
	Hits  []Hit  `json:"hits"`
}

// Service answers searches from a keyword index and an optional semantic
// index, falling back to keywords when the semantic index fails or finds
// nothing. Every answered query is recorded in the log when one is set.
type Service struct {
	keyword      Index
	semantic     Index
	log          *QueryLog
	defaultLimit int
}

// NewService creates a Service. semantic and queryLog may be nil.
func NewService(keyword, semantic Index, queryLog *QueryLog, defaultLimit int) *Service {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	return &Service{
		keyword:      keyword,
		semantic:     semantic,
		log:          queryLog,
		defaultLimit: defaultLimit,
	}
}

// Semantic reports whether a semantic index is configured.
func (s *Service) Semantic() bool {
	return s.semantic != nil
}

// Log returns the query log, or nil.
func (s *Service) Log() *QueryLog {
	return s.log
}

// Search runs req. A blank query returns an empty result and is not logged.
func (s *Service) Search(ctx context.Context, req Request) (*Result, error) {
	query := strings.TrimSpace(req.Query)
	res := &Result{Query: query, Mode: ModeKeyword, Hits: []Hit{}}
	if query == "" {
		return res, nil
	}
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = s.defaultLimit
	}

	wantSemantic := req.Mode == ModeSemantic || (req.Mode == "" && s.semantic != nil)
	if wantSemantic && s.semantic != nil {
		hits, err := s.semantic.Search(ctx, query, limit)
		switch {
		case err != nil:
			log.Printf("search: semantic query %q failed, using keyword index: %v", query, err)
		case len(hits) > 0:
			res.Mode = ModeSemantic
			res.Hits = hits
		}
	}

	if res.Mode == ModeKeyword {
		hits, err := s.keyword.Search(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		if hits != nil {
			res.Hits = hits
		}
	}

	if s.log != nil {
		if _, err := s.log.Record(ctx, query, res.Mode, len(res.Hits)); err != nil {
			log.Printf("search: recording query: %v", err)
		}
	}
	return res, nil
}

// batchSize is the number of entries added to an index per call.
const batchSize = 50

// Build clears idx and indexes every entry of doc, reporting progress per batch.
func Build(ctx context.Context, idx Index, doc *summa.Document, reporter progress.Reporter) (int, error) {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	entries := EntriesFrom(doc)
	if err := idx.Reset(ctx); err != nil {
		return 0, err
	}

	reporter.Start(len(entries))
	defer reporter.Finish()
	for i := 0; i < len(entries); i += batchSize {
		end := i + batchSize
		if end > len(entries) {
			end = len(entries)
		}
		if err := idx.Add(ctx, entries[i:end]); err != nil {
			return i, fmt.Errorf("indexing entries %d-%d: %w", i, end, err)
		}
		reporter.Update(end, entries[end-1].ID)
	}
	return len(entries), nil
}
