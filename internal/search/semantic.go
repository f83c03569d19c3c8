package search

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	chromem "github.com/philippgille/chromem-go"

	"github.com/summa-explorer/summa/internal/embeddings"
	"github.com/summa-explorer/summa/internal/pathtoken"
)

const collectionName = "summa"

// SemanticIndex is a vector index over entry text using chromem-go.
type SemanticIndex struct {
	db         *chromem.DB
	collection *chromem.Collection
	embedder   embeddings.Embedder
	embedFunc  chromem.EmbeddingFunc
}

// NewSemanticIndex creates an empty in-memory SemanticIndex.
func NewSemanticIndex(embedder embeddings.Embedder) (*SemanticIndex, error) {
	db := chromem.NewDB()
	ef := embeddings.ToChromemFunc(embedder)

	col, err := db.GetOrCreateCollection(collectionName, nil, ef)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	return &SemanticIndex{
		db:         db,
		collection: col,
		embedder:   embedder,
		embedFunc:  ef,
	}, nil
}

func (s *SemanticIndex) Add(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]chromem.Document, len(entries))
	for i, e := range entries {
		docs[i] = chromem.Document{
			ID:      e.ID,
			Content: documentText(e),
			Metadata: map[string]string{
				"kind":  e.Kind.String(),
				"title": e.Title,
			},
		}
	}

	return s.collection.AddDocuments(ctx, docs, runtime.NumCPU())
}

// documentText is what gets embedded: the title followed by the content.
// chromem rejects documents without content, so the token stands in.
func documentText(e Entry) string {
	text := strings.TrimSpace(e.Title + "\n" + e.Content)
	if text == "" {
		return e.ID
	}
	return text
}

func (s *SemanticIndex) Reset(ctx context.Context) error {
	if err := s.db.DeleteCollection(collectionName); err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	col, err := s.db.GetOrCreateCollection(collectionName, nil, s.embedFunc)
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	s.collection = col
	return nil
}

func (s *SemanticIndex) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	// chromem-go requires nResults <= collection size.
	count := s.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if limit > count {
		limit = count
	}

	results, err := s.collection.Query(ctx, query, limit, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("chromem query: %w", err)
	}

	hits := make([]Hit, len(results))
	for i, r := range results {
		var kind pathtoken.Kind
		if err := kind.UnmarshalText([]byte(r.Metadata["kind"])); err != nil {
			kind = kindOf(r.ID)
		}
		content := r.Content
		if title := r.Metadata["title"]; title != "" {
			content = strings.TrimSpace(strings.TrimPrefix(content, title))
		}
		hits[i] = Hit{
			ID:      r.ID,
			Kind:    kind,
			Title:   r.Metadata["title"],
			Snippet: excerpt(content, 160),
			Score:   float64(r.Similarity),
		}
	}
	return hits, nil
}

func (s *SemanticIndex) Count() int {
	return s.collection.Count()
}

// Embedder returns the embedder queries are encoded with.
func (s *SemanticIndex) Embedder() embeddings.Embedder {
	return s.embedder
}

// Persist writes the index to dir. The file name records the embedder so an
// index built with one model is never queried with another.
func (s *SemanticIndex) Persist(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating vector directory: %w", err)
	}
	if err := s.db.ExportToFile(s.path(dir), true, ""); err != nil {
		return fmt.Errorf("export to file: %w", err)
	}
	return nil
}

// Load replaces the index contents with what Persist wrote to dir.
func (s *SemanticIndex) Load(dir string) error {
	err := s.db.ImportFromFile(s.path(dir), "")
	if err != nil {
		return fmt.Errorf("import from file: %w", err)
	}

	// Re-acquire collection reference after import.
	col := s.db.GetCollection(collectionName, s.embedFunc)
	if col == nil {
		return fmt.Errorf("collection %q not found after import", collectionName)
	}
	s.collection = col
	return nil
}

// Exists reports whether a persisted index for this embedder is in dir.
func (s *SemanticIndex) Exists(dir string) bool {
	_, err := os.Stat(s.path(dir))
	return err == nil
}

func (s *SemanticIndex) path(dir string) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ':' || r == ' ' {
			return '_'
		}
		return r
	}, s.embedder.Name())
	return filepath.Join(dir, "chromem-"+name+".gob.gz")
}
