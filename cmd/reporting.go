package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/Glen-Lee-glitch/blog-auto-made/internal/report"
)

// OutputOptions creates report options from CLI flags.
func OutputOptions(c *cli.Context) report.Options {
	return report.Options{
		Format:     getOutputFormat(c.String("format")),
		Top:        c.Int("top"),
		OutputPath: c.String("output"),
		ShowDiff:   c.Bool("show-diff"),
	}
}

func writeCommitLog(c *cli.Context, rep *report.CommitLogReport) error {
	opts := OutputOptions(c)
	return report.NewCommitLogWriter(opts.Format).Write(rep, opts)
}

func writeFileChanges(c *cli.Context, rep *report.FileChangeReport) error {
	opts := OutputOptions(c)
	return report.NewFileChangeWriter(opts.Format).Write(rep, opts)
}

func writeStats(c *cli.Context, rep *report.StatsReport) error {
	opts := OutputOptions(c)
	return report.NewStatsWriter(opts.Format).Write(rep, opts)
}
