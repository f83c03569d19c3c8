package config

// EmbeddingProvider identifies the backend that produces vectors for
// semantic search.
type EmbeddingProvider string

const (
	EmbeddingHash   EmbeddingProvider = "hash"
	EmbeddingOpenAI EmbeddingProvider = "openai"
	EmbeddingOllama EmbeddingProvider = "ollama"
)

// Config is the top-level summa configuration, corresponding to .summa.yml.
type Config struct {
	SiteName  string       `yaml:"site_name" koanf:"site_name"`
	DataFiles []string     `yaml:"data_files" koanf:"data_files"`
	DataDir   string       `yaml:"data_dir" koanf:"data_dir"`
	Server    ServerConfig `yaml:"server" koanf:"server"`
	Search    SearchConfig `yaml:"search" koanf:"search"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port                  int      `yaml:"port" koanf:"port"`
	AllowAllOrigins       bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	AllowedOrigins        []string `yaml:"allowed_origins" koanf:"allowed_origins"`
	RequestTimeoutSeconds int      `yaml:"request_timeout_seconds" koanf:"request_timeout_seconds"`
}

// SearchConfig controls the keyword and semantic search indexes.
type SearchConfig struct {
	Semantic          bool              `yaml:"semantic" koanf:"semantic"`
	EmbeddingProvider EmbeddingProvider `yaml:"embedding_provider" koanf:"embedding_provider"`
	EmbeddingModel    string            `yaml:"embedding_model" koanf:"embedding_model"`
	OllamaURL         string            `yaml:"ollama_url" koanf:"ollama_url"`
	ResultLimit       int               `yaml:"result_limit" koanf:"result_limit"`
}
