package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/Glen-Lee-glitch/blog-auto-made/internal/report"
)

// CommitsCmd returns the commits command.
func CommitsCmd() *cli.Command {
	flags := append(commonFlags(), reportFlags()...)
	flags = append(flags,
		&cli.IntFlag{
			Name:    "days",
			Aliases: []string{"d"},
			Usage:   "How many days of history to list",
			Value:   7,
		},
	)

	return &cli.Command{
		Name:    "commits",
		Aliases: []string{"c"},
		Usage:   "List the commits inside the recent window",
		Flags:   flags,
		Action:  commitsAction,
	}
}

func commitsAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	days, err := resolveDays(c, ctx.Config)
	if err != nil {
		return err
	}

	records, err := ctx.Extractor.RecentCommits(c.Context, days)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	rep := &report.CommitLogReport{
		RepoPath:    ctx.RepoPath,
		Branch:      ctx.Extractor.Branch(),
		Days:        days,
		GeneratedAt: time.Now(),
		Items:       records,
	}
	return writeCommitLog(c, rep)
}
