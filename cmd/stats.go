package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/Glen-Lee-glitch/blog-auto-made/internal/report"
)

// StatsCmd returns the stats command.
func StatsCmd() *cli.Command {
	return &cli.Command{
		Name:    "stats",
		Aliases: []string{"s"},
		Usage:   "Show repository statistics",
		Flags:   append(commonFlags(), reportFlags()...),
		Action:  statsAction,
	}
}

func statsAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	stats, err := ctx.Extractor.Stats(c.Context)
	if err != nil {
		return fmt.Errorf("failed to gather statistics: %w", err)
	}

	rep := &report.StatsReport{
		RepoPath:    ctx.RepoPath,
		GeneratedAt: time.Now(),
		Stats:       stats,
	}
	return writeStats(c, rep)
}
