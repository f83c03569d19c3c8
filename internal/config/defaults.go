package config

// DefaultDataFiles are the corpus glob patterns used when none are configured.
var DefaultDataFiles = []string{"data/**/*.json", "data/**/*.yaml", "data/**/*.yml"}

// defaultEmbeddingModels maps each embedding provider to its model.
var defaultEmbeddingModels = map[EmbeddingProvider]string{
	EmbeddingHash:   "hash-256",
	EmbeddingOpenAI: "text-embedding-3-small",
	EmbeddingOllama: "nomic-embed-text",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteName:  "Summa Explorer",
		DataFiles: append([]string(nil), DefaultDataFiles...),
		DataDir:   ".summa",
		Server: ServerConfig{
			Port:                  8080,
			AllowAllOrigins:       true,
			RequestTimeoutSeconds: 60,
		},
		Search: SearchConfig{
			Semantic:          false,
			EmbeddingProvider: EmbeddingHash,
			EmbeddingModel:    defaultEmbeddingModels[EmbeddingHash],
			OllamaURL:         "http://localhost:11434",
			ResultLimit:       20,
		},
	}
}

// DefaultEmbeddingModel returns the model used for a provider when the
// configuration leaves it empty.
func DefaultEmbeddingModel(provider EmbeddingProvider) string {
	return defaultEmbeddingModels[provider]
}
