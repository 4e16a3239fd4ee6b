package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Glen-Lee-glitch/blog-auto-made/internal/extract"
	"github.com/Glen-Lee-glitch/blog-auto-made/internal/post"
)

// Config is the root configuration structure.
type Config struct {
	Repo    RepoConfig    `json:"repo"`
	Window  WindowConfig  `json:"window"`
	LLM     LLMConfig     `json:"llm"`
	Post    PostConfig    `json:"post"`
	Filters FilterConfig  `json:"filters"`
	Logging LoggingConfig `json:"logging"`
}

// RepoConfig holds repository access options.
type RepoConfig struct {
	Path   string `json:"path"`   // Default: "."
	Branch string `json:"branch"` // Default: "main"
}

// WindowConfig holds the extraction window options.
type WindowConfig struct {
	Days int `json:"days"` // Default: 7
}

// LLMConfig holds text generation options. API keys never live here:
// they are read from OPENAI_API_KEY / GEMINI_API_KEY at startup.
type LLMConfig struct {
	Provider string `json:"provider"` // "openai" or "gemini"; empty defers to LLM_PROVIDER
	Model    string `json:"model"`    // empty uses the provider default
}

// PostConfig holds post rendering options.
type PostConfig struct {
	OutputDir          string   `json:"outputDir"` // Default: "./output"
	Author             string   `json:"author"`
	Categories         []string `json:"categories"`
	Tags               []string `json:"tags"`
	IncludeFileChanges bool     `json:"includeFileChanges"` // Default: true
}

// FilterConfig holds file path filtering options.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// LoggingConfig holds log destination options.
type LoggingConfig struct {
	File  string `json:"file"` // Default: "blogauto.log"
	Debug bool   `json:"debug"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	meta := post.DefaultMeta()
	return &Config{
		Repo: RepoConfig{
			Path:   ".",
			Branch: extract.DefaultBranch,
		},
		Window: WindowConfig{
			Days: 7,
		},
		LLM: LLMConfig{
			Provider: "",
			Model:    "",
		},
		Post: PostConfig{
			OutputDir:          "./output",
			Author:             meta.Author,
			Categories:         meta.Categories,
			Tags:               meta.Tags,
			IncludeFileChanges: true,
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
		Logging: LoggingConfig{
			File: "blogauto.log",
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".blogauto.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".blogauto.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".blogauto.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
