package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/Glen-Lee-glitch/blog-auto-made/internal/gitrepo"
	"github.com/Glen-Lee-glitch/blog-auto-made/internal/report"
)

// ChangesCmd returns the changes command.
func ChangesCmd() *cli.Command {
	flags := append(commonFlags(), reportFlags()...)
	flags = append(flags,
		&cli.BoolFlag{
			Name:  "show-diff",
			Usage: "Include unified diff bodies in the output",
		},
	)

	return &cli.Command{
		Name:      "changes",
		ArgsUsage: "<commit-id>",
		Usage:     "Show the per-file changes of a single commit",
		Flags:     flags,
		Action:    changesAction,
	}
}

func changesAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected a single commit id argument")
	}
	commitID := c.Args().First()

	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	records, err := ctx.Extractor.FileChanges(c.Context, commitID)
	if err != nil {
		if gitrepo.IsNotFound(err) {
			return fmt.Errorf("commit not found: %s", commitID)
		}
		return fmt.Errorf("failed to read changes: %w", err)
	}

	rep := &report.FileChangeReport{
		RepoPath:    ctx.RepoPath,
		CommitID:    commitID,
		GeneratedAt: time.Now(),
		Items:       records,
	}
	return writeFileChanges(c, rep)
}
