package report

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

// ConsoleCommitLogWriter writes commit log reports to the console.
type ConsoleCommitLogWriter struct{}

// Write outputs the commit log report to the console.
func (w *ConsoleCommitLogWriter) Write(report *CommitLogReport, options Options) error {
	items := limitTop(report.Items, options.Top)

	color.Green("Recent Commits")
	fmt.Printf("Repository: %s\n", report.RepoPath)
	fmt.Printf("Branch: %s\n", report.Branch)
	fmt.Printf("Window: last %d days\n", report.Days)
	fmt.Printf("Total commits: %d\n\n", len(report.Items))

	if len(items) == 0 {
		fmt.Println("No commits in this window.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tDate\tAuthor\tFiles\t+\t-\tMessage")
	for i, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			i+1,
			item.ID,
			item.Timestamp.Format(consoleDateLayout),
			item.Author,
			len(item.FilesChanged),
			item.Additions,
			item.Deletions,
			truncateMessage(item.Message, 48),
		)
	}
	tw.Flush()

	return nil
}

// ConsoleFileChangeWriter writes file change reports to the console.
type ConsoleFileChangeWriter struct{}

// Write outputs the file change report to the console.
func (w *ConsoleFileChangeWriter) Write(report *FileChangeReport, options Options) error {
	items := limitTop(report.Items, options.Top)

	color.Green("File Changes")
	fmt.Printf("Repository: %s\n", report.RepoPath)
	fmt.Printf("Commit: %s\n", report.CommitID)
	fmt.Printf("Total files: %d\n\n", len(report.Items))

	if len(items) == 0 {
		fmt.Println("No file changes to show.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPath\tChange\t+\t-")
	for i, item := range items {
		colorize := changeTypeColor(item.ChangeType)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n",
			i+1,
			item.FilePath,
			colorize(item.ChangeType.String()),
			item.Additions,
			item.Deletions,
		)
	}
	tw.Flush()

	if options.ShowDiff {
		for _, item := range items {
			if item.DiffBody == "" {
				continue
			}
			fmt.Println()
			color.Cyan("--- %s ---", item.FilePath)
			fmt.Println(strings.TrimRight(item.DiffBody, "\n"))
		}
	}

	return nil
}

// ConsoleStatsWriter writes repository summaries to the console.
type ConsoleStatsWriter struct{}

// Write outputs the repository summary to the console.
func (w *ConsoleStatsWriter) Write(report *StatsReport, options Options) error {
	s := report.Stats

	color.Green("Repository Statistics")
	fmt.Printf("Repository: %s\n\n", report.RepoPath)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total commits:\t%s\n", humanize.Comma(int64(s.TotalCommits)))
	fmt.Fprintf(tw, "Branches:\t%s\n", strings.Join(s.Branches, ", "))
	fmt.Fprintf(tw, "Current branch:\t%s\n", s.CurrentBranch)
	fmt.Fprintf(tw, "Last commit:\t%s %s\n", s.LastCommit.ID, truncateMessage(s.LastCommit.Message, 48))
	fmt.Fprintf(tw, "Last activity:\t%s (%s)\n",
		s.LastCommit.Timestamp.Format(consoleDateLayout),
		humanize.Time(s.LastCommit.Timestamp),
	)
	tw.Flush()

	return nil
}
