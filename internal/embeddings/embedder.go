// Package embeddings turns search entries and queries into vectors for the
// semantic index.
package embeddings

import (
	"context"
	"fmt"
	"os"
)

// Embedder defines the interface for generating text embeddings.
type Embedder interface {
	// Embed generates embeddings for one or more texts.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the number of dimensions in the embedding vectors.
	Dimensions() int

	// Name returns the name/identifier of the embedding model.
	Name() string
}

// Options selects and configures an embedder.
type Options struct {
	Provider  string
	Model     string
	OllamaURL string
	// APIKey overrides OPENAI_API_KEY.
	APIKey string
}

// New builds the embedder named by opts.Provider: "hash", "openai" or "ollama".
func New(opts Options) (Embedder, error) {
	switch opts.Provider {
	case "", "hash":
		return NewHashEmbedder(DefaultHashDimensions), nil
	case "openai":
		key := opts.APIKey
		if key == "" {
			key = os.Getenv("OPENAI_API_KEY")
		}
		if key == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for openai embeddings")
		}
		model := OpenAIModel(opts.Model)
		if model == "" {
			model = ModelTextEmbedding3Small
		}
		return NewOpenAIEmbedder(key, model), nil
	case "ollama":
		model := opts.Model
		if model == "" {
			model = "nomic-embed-text"
		}
		return NewOllamaEmbedder(model, 768, opts.OllamaURL), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", opts.Provider)
	}
}
