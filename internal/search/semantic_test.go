package search

import (
	"context"
	"testing"

	"github.com/summa-explorer/summa/internal/embeddings"
	"github.com/summa-explorer/summa/internal/pathtoken"
)

func setupSemantic(t *testing.T) *SemanticIndex {
	t.Helper()
	idx, err := NewSemanticIndex(embeddings.NewHashEmbedder(256))
	if err != nil {
		t.Fatalf("NewSemanticIndex: %v", err)
	}
	if _, err := Build(context.Background(), idx, fixtureDoc(), nil); err != nil {
		t.Fatalf("Build: %v", err)
	}
	return idx
}

func TestSemanticSearchExactText(t *testing.T) {
	idx := setupSemantic(t)
	if idx.Count() != fixtureEntryCount {
		t.Fatalf("Count = %d, want %d", idx.Count(), fixtureEntryCount)
	}

	target := EntriesFrom(fixtureDoc())[5]
	hits, err := idx.Search(context.Background(), documentText(target), 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 3 {
		t.Fatalf("hits = %d, want 3", len(hits))
	}
	if hits[0].ID != target.ID {
		t.Errorf("top hit = %s, want %s", hits[0].ID, target.ID)
	}
	if hits[0].Kind != pathtoken.KindArticle || hits[0].Title != target.Title {
		t.Errorf("top hit = %+v", hits[0])
	}
	if hits[0].Score < 0.99 {
		t.Errorf("identical text similarity = %f, want ~1", hits[0].Score)
	}
	if hits[0].Snippet == "" {
		t.Error("expected a content snippet")
	}
}

func TestSemanticSearchClampsLimit(t *testing.T) {
	idx := setupSemantic(t)
	hits, err := idx.Search(context.Background(), "faith", 500)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != fixtureEntryCount {
		t.Errorf("hits = %d, want all %d", len(hits), fixtureEntryCount)
	}
}

func TestSemanticSearchEmpty(t *testing.T) {
	idx, err := NewSemanticIndex(embeddings.NewHashEmbedder(32))
	if err != nil {
		t.Fatalf("NewSemanticIndex: %v", err)
	}
	hits, err := idx.Search(context.Background(), "God", 5)
	if err != nil || hits != nil {
		t.Errorf("empty index search = %v, %v", hits, err)
	}
	if hits, err := idx.Search(context.Background(), "  ", 5); err != nil || hits != nil {
		t.Errorf("blank query = %v, %v", hits, err)
	}
}

func TestSemanticPersistAndLoad(t *testing.T) {
	dir := t.TempDir()
	idx := setupSemantic(t)
	if err := idx.Persist(dir); err != nil {
		t.Fatalf("Persist: %v", err)
	}
	if !idx.Exists(dir) {
		t.Fatal("Exists = false after Persist")
	}

	loaded, err := NewSemanticIndex(embeddings.NewHashEmbedder(256))
	if err != nil {
		t.Fatalf("NewSemanticIndex: %v", err)
	}
	if err := loaded.Load(dir); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Count() != fixtureEntryCount {
		t.Errorf("loaded Count = %d, want %d", loaded.Count(), fixtureEntryCount)
	}

	other, err := NewSemanticIndex(embeddings.NewOllamaEmbedder("nomic-embed-text", 768, ""))
	if err != nil {
		t.Fatalf("NewSemanticIndex: %v", err)
	}
	if other.Exists(dir) {
		t.Error("an index built by another embedder must not be found")
	}
}

func TestSemanticReset(t *testing.T) {
	idx := setupSemantic(t)
	if err := idx.Reset(context.Background()); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if idx.Count() != 0 {
		t.Errorf("Count after reset = %d", idx.Count())
	}
}
