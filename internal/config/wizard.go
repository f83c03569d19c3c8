package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// ConfigFile is the default configuration path.
const ConfigFile = ".summa.yml"

// detectDataFiles returns the corpus patterns that already match something in
// the current directory, or the defaults.
func detectDataFiles() []string {
	for _, candidate := range []string{"data", "corpus"} {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return []string{candidate + "/**/*.json", candidate + "/**/*.yaml", candidate + "/**/*.yml"}
		}
	}
	return DefaultDataFiles
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to summa! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site name.
	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: cfg.SiteName,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	cfg.SiteName = name

	// 2. Corpus files.
	dataPrompt := promptui.Prompt{
		Label:   "Corpus files (comma-separated globs)",
		Default: strings.Join(detectDataFiles(), ","),
	}
	dataStr, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("corpus files: %w", err)
	}
	cfg.DataFiles = splitAndTrim(dataStr)

	// 3. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 4. Semantic search.
	searchPrompt := promptui.Select{
		Label: "Search mode",
		Items: []string{
			"keyword  - full-text index only",
			"hash     - semantic search with local hashed vectors",
			"openai   - semantic search with OpenAI embeddings",
			"ollama   - semantic search with a local Ollama model",
		},
	}
	searchIdx, _, err := searchPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("search mode: %w", err)
	}
	if searchIdx > 0 {
		providers := []EmbeddingProvider{EmbeddingHash, EmbeddingOpenAI, EmbeddingOllama}
		cfg.Search.Semantic = true
		cfg.Search.EmbeddingProvider = providers[searchIdx-1]
		cfg.Search.EmbeddingModel = DefaultEmbeddingModel(cfg.Search.EmbeddingProvider)
	}

	if envVar := APIKeyEnvVar(cfg.Search.EmbeddingProvider); cfg.Search.Semantic && envVar != "" {
		if os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: Set %s in your environment before running summa index.\n", envVar)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
