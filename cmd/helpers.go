package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/summa-explorer/summa/internal/config"
	"github.com/summa-explorer/summa/internal/db"
	"github.com/summa-explorer/summa/internal/embeddings"
	"github.com/summa-explorer/summa/internal/progress"
	"github.com/summa-explorer/summa/internal/search"
	"github.com/summa-explorer/summa/internal/summa"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `summa init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadDocument reads the corpus files named by the config.
func loadDocument(cfg *config.Config) (*summa.Document, error) {
	doc, err := summa.Load(cfg.DataFiles)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	if verbose {
		s := doc.Stats()
		fmt.Fprintf(os.Stderr, "Loaded %d parts, %d treatises, %d questions, %d articles\n",
			s.Parts, s.Treatises, s.Questions, s.Articles)
	}
	return doc, nil
}

// createEmbedderFromConfig creates an embeddings.Embedder based on config.
func createEmbedderFromConfig(cfg *config.Config) (embeddings.Embedder, error) {
	provider := cfg.Search.EmbeddingProvider
	var apiKey string
	if envVar := config.APIKeyEnvVar(provider); envVar != "" {
		apiKey = os.Getenv(envVar)
	}
	return embeddings.New(embeddings.Options{
		Provider:  string(provider),
		Model:     cfg.Search.EmbeddingModel,
		OllamaURL: cfg.Search.OllamaURL,
		APIKey:    apiKey,
	})
}

// searchStack holds the opened search indexes and the service over them.
type searchStack struct {
	db       *db.DB
	keyword  *search.KeywordIndex
	semantic *search.SemanticIndex
	service  *search.Service
}

func (s *searchStack) Close() error {
	return s.db.Close()
}

// openOptions controls how openSearch treats existing indexes.
type openOptions struct {
	// Rebuild reindexes the corpus even when the indexes are populated.
	Rebuild bool
	// Reporter receives build progress. Nil is quiet.
	Reporter func(description string) progress.Reporter
}

// openSearch opens the keyword index and, when configured, the semantic
// index. Empty or missing indexes are built from doc.
func openSearch(ctx context.Context, cfg *config.Config, doc *summa.Document, opts openOptions) (*searchStack, error) {
	reporter := func(description string) progress.Reporter {
		if opts.Reporter == nil {
			return progress.Nop{}
		}
		return opts.Reporter(description)
	}

	database, err := db.Open(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	stack := &searchStack{db: database, keyword: search.NewKeywordIndex(database)}

	if opts.Rebuild || stack.keyword.Count() == 0 {
		n, err := search.Build(ctx, stack.keyword, doc, reporter("Keyword index"))
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("building keyword index: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Indexed %d entries for keyword search\n", n)
	}

	if cfg.Search.Semantic {
		if err := stack.openSemantic(ctx, cfg, doc, opts.Rebuild, reporter); err != nil {
			database.Close()
			return nil, err
		}
	}

	// A nil *SemanticIndex must not become a non-nil search.Index.
	var semantic search.Index
	if stack.semantic != nil {
		semantic = stack.semantic
	}
	stack.service = search.NewService(stack.keyword, semantic, search.NewQueryLog(database), cfg.Search.ResultLimit)
	return stack, nil
}

func (s *searchStack) openSemantic(ctx context.Context, cfg *config.Config, doc *summa.Document, rebuild bool, reporter func(string) progress.Reporter) error {
	embedder, err := createEmbedderFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("creating embedder: %w", err)
	}
	idx, err := search.NewSemanticIndex(embedder)
	if err != nil {
		return fmt.Errorf("creating semantic index: %w", err)
	}

	dir := cfg.VectorDir()
	if !rebuild && idx.Exists(dir) {
		if err := idx.Load(dir); err == nil && idx.Count() > 0 {
			s.semantic = idx
			return nil
		} else if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load semantic index from %s: %v\n", dir, err)
		}
	}

	n, err := search.Build(ctx, idx, doc, reporter("Semantic index"))
	if err != nil {
		return fmt.Errorf("building semantic index: %w", err)
	}
	if err := idx.Persist(dir); err != nil {
		return fmt.Errorf("saving semantic index: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Indexed %d entries for semantic search with %s\n", n, embedder.Name())
	s.semantic = idx
	return nil
}
