// Package content turns extracted commit records into blog prose through a
// chat completion model. Providers are interchangeable behind a minimal
// completion interface. Construction fails without an API key; generation
// afterwards never fails, it degrades to deterministic fallback text.
package content

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Glen-Lee-glitch/blog-auto-made/internal/extract"
)

// Supported providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

const (
	defaultOpenAIModel = "gpt-4"
	defaultGeminiModel = "gemini-2.0-flash"
)

// completer is the one surface a chat model has to offer.
type completer interface {
	complete(ctx context.Context, req completionRequest) (string, error)
}

// completionRequest carries a single system/user prompt pair and its
// generation knobs.
type completionRequest struct {
	system      string
	user        string
	temperature float32
	maxTokens   int
}

// Config selects and tunes the completion provider. Zero values fall back
// to the defaults below; API keys are read from the environment only and
// never live in configuration files.
type Config struct {
	Provider         string
	Model            string
	TitleMaxTokens   int
	TitleTemperature float32
	BodyMaxTokens    int
	BodyTemperature  float32
}

// DefaultConfig returns the generation settings used when the configuration
// file does not override them.
func DefaultConfig() Config {
	return Config{
		Provider:         ProviderOpenAI,
		TitleMaxTokens:   100,
		TitleTemperature: 0.7,
		BodyMaxTokens:    2000,
		BodyTemperature:  0.8,
	}
}

func withDefaults(cfg Config) Config {
	def := DefaultConfig()
	if cfg.TitleMaxTokens == 0 {
		cfg.TitleMaxTokens = def.TitleMaxTokens
	}
	if cfg.TitleTemperature == 0 {
		cfg.TitleTemperature = def.TitleTemperature
	}
	if cfg.BodyMaxTokens == 0 {
		cfg.BodyMaxTokens = def.BodyMaxTokens
	}
	if cfg.BodyTemperature == 0 {
		cfg.BodyTemperature = def.BodyTemperature
	}
	return cfg
}

// Generator produces blog titles and bodies from commit records.
type Generator struct {
	completer completer
	cfg       Config
	provider  string
	model     string
}

// New builds a generator for the configured provider. Provider resolution
// order is configuration, then the LLM_PROVIDER environment variable, then
// OpenAI. The matching API key, OPENAI_API_KEY or GEMINI_API_KEY, must be
// present in the environment.
func New(ctx context.Context, cfg Config) (*Generator, error) {
	cfg = withDefaults(cfg)

	provider := cfg.Provider
	if provider == "" {
		provider = os.Getenv("LLM_PROVIDER")
	}
	if provider == "" {
		provider = ProviderOpenAI
	}

	var (
		comp  completer
		model string
		err   error
	)
	switch provider {
	case ProviderOpenAI:
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		model = cfg.Model
		if model == "" {
			model = os.Getenv("OPENAI_MODEL")
		}
		if model == "" {
			model = defaultOpenAIModel
		}
		comp = newOpenAICompleter(key, model)
	case ProviderGemini:
		key := os.Getenv("GEMINI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set")
		}
		model = cfg.Model
		if model == "" {
			model = defaultGeminiModel
		}
		comp, err = newGeminiCompleter(ctx, key, model)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown llm provider %q", provider)
	}

	log.Infof("content generator ready: provider=%s model=%s", provider, model)
	return &Generator{completer: comp, cfg: cfg, provider: provider, model: model}, nil
}

// Provider returns the resolved provider name.
func (g *Generator) Provider() string { return g.provider }

// Model returns the resolved model name.
func (g *Generator) Model() string { return g.model }

// Title asks the model for a one-line post title covering the given commits.
// Model failures fall back to a dated default; the result is never empty.
func (g *Generator) Title(ctx context.Context, commits []extract.CommitRecord) string {
	title, err := g.completer.complete(ctx, completionRequest{
		system:      titleSystemPrompt,
		user:        titleUserPrompt(commits),
		temperature: g.cfg.TitleTemperature,
		maxTokens:   g.cfg.TitleMaxTokens,
	})
	if err != nil {
		log.Warnf("title generation failed, using fallback: %v", err)
		return fallbackTitle(time.Now())
	}

	title = strings.Trim(strings.TrimSpace(title), `"'`)
	if title == "" {
		return fallbackTitle(time.Now())
	}
	return title
}

// Body asks the model for the full Markdown body. The commit digest rides
// along in the prompt; when the model call fails the same digest is wrapped
// in a fixed template so a post is always produced.
func (g *Generator) Body(ctx context.Context, commits []extract.CommitRecord, changes map[string][]extract.FileChangeRecord) string {
	digest := digest(commits, changes)

	body, err := g.completer.complete(ctx, completionRequest{
		system:      bodySystemPrompt,
		user:        bodyUserPrompt(digest),
		temperature: g.cfg.BodyTemperature,
		maxTokens:   g.cfg.BodyMaxTokens,
	})
	if err != nil {
		log.Warnf("body generation failed, using fallback: %v", err)
		return fallbackBody(commits, digest)
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return fallbackBody(commits, digest)
	}
	return body
}

func fallbackTitle(now time.Time) string {
	return "Dev Log - " + now.Format("2006-01-02")
}

// fallbackBody renders a post without any model involvement. It reuses the
// digest so the reader still gets the full change summary.
func fallbackBody(commits []extract.CommitRecord, digest string) string {
	var b strings.Builder
	b.WriteString("## ✨ Overview\n\n")
	fmt.Fprintf(&b, "This post covers %d recent commits, summarized straight from the repository history.\n\n", len(commits))
	b.WriteString("## 📝 Key Changes\n\n")
	b.WriteString(digest)
	b.WriteString("\n\n## 💡 Implementation Notes & Lessons\n\n")
	b.WriteString("The change summary above was captured directly from the commit log.\n\n")
	b.WriteString("## ✅ Wrap-up\n\n")
	b.WriteString("This post was generated automatically because the content model was unavailable.\n")
	return b.String()
}
