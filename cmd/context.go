package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Glen-Lee-glitch/blog-auto-made/config"
	"github.com/Glen-Lee-glitch/blog-auto-made/internal/extract"
	"github.com/Glen-Lee-glitch/blog-auto-made/internal/gitrepo"
)

// CommandContext holds common state for command execution: the merged
// configuration and an extractor bound to the requested repository.
type CommandContext struct {
	Config    *config.Config
	RepoPath  string
	Extractor *extract.Extractor
}

// NewCommandContext creates a context from CLI flags. Flags win over the
// configuration file, which wins over built-in defaults.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	repoPath := firstNonEmpty(c.String("repo"), cfg.Repo.Path, ".")
	branch := firstNonEmpty(c.String("branch"), cfg.Repo.Branch)

	repo, err := gitrepo.Open(repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	extractor := extract.New(repo, extract.Options{
		Branch:  branch,
		Include: cfg.Filters.Include,
		Exclude: cfg.Filters.Exclude,
	})

	return &CommandContext{
		Config:    cfg,
		RepoPath:  repoPath,
		Extractor: extractor,
	}, nil
}

// resolveDays picks the extraction window: the --days flag wins, then the
// configuration file. Non-positive windows are rejected.
func resolveDays(c *cli.Context, cfg *config.Config) (int, error) {
	days := c.Int("days")
	if !c.IsSet("days") && cfg.Window.Days > 0 {
		days = cfg.Window.Days
	}
	if days <= 0 {
		return 0, fmt.Errorf("days must be a positive number, got %d", days)
	}
	return days, nil
}
