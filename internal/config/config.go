package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SUMMA_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SUMMA_*). A double underscore separates
// nested keys: SUMMA_SERVER__PORT sets server.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.Search.EmbeddingModel == "" {
		cfg.Search.EmbeddingModel = DefaultEmbeddingModel(cfg.Search.EmbeddingProvider)
	}

	return cfg, nil
}

// envKey maps SUMMA_SEARCH__RESULT_LIMIT to search.result_limit.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validEmbeddingProviders is the set of recognized embedding providers.
var validEmbeddingProviders = map[EmbeddingProvider]bool{
	EmbeddingHash:   true,
	EmbeddingOpenAI: true,
	EmbeddingOllama: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if len(c.DataFiles) == 0 {
		return fmt.Errorf("data_files is required")
	}
	for _, p := range c.DataFiles {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("data_files contains an empty pattern")
		}
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range 1-65535", c.Server.Port)
	}

	if c.Server.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("server.request_timeout_seconds must be non-negative")
	}

	if c.Search.EmbeddingProvider != "" && !validEmbeddingProviders[c.Search.EmbeddingProvider] {
		return fmt.Errorf("invalid search.embedding_provider %q: must be one of hash, openai, ollama", c.Search.EmbeddingProvider)
	}

	if c.Search.ResultLimit < 1 {
		return fmt.Errorf("search.result_limit must be at least 1")
	}

	return nil
}

// RequestTimeout returns the per-request timeout, defaulting to 60 seconds.
func (c *Config) RequestTimeout() time.Duration {
	if c.Server.RequestTimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.Server.RequestTimeoutSeconds) * time.Second
}

// DBPath is the SQLite file holding the keyword index and query log.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "summa.db")
}

// VectorDir is the directory the semantic index is persisted in.
func (c *Config) VectorDir() string {
	return filepath.Join(c.DataDir, "vectors")
}

// APIKeyEnvVar returns the conventional environment variable name for
// the API key of the given embedding provider.
func APIKeyEnvVar(provider EmbeddingProvider) string {
	switch provider {
	case EmbeddingOpenAI:
		return "OPENAI_API_KEY"
	default:
		return ""
	}
}
