package report

import (
	"fmt"
	"strings"

	"github.com/Glen-Lee-glitch/blog-auto-made/internal/extract"
)

// MarkdownCommitLogWriter writes commit log reports as Markdown.
type MarkdownCommitLogWriter struct{}

// Write outputs the commit log report as Markdown.
func (w *MarkdownCommitLogWriter) Write(report *CommitLogReport, options Options) error {
	items := limitTop(report.Items, options.Top)

	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# Recent Commits")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Branch:** %s\n\n", report.Branch)
	fmt.Fprintf(out, "**Window:** last %d days\n\n", report.Days)
	fmt.Fprintf(out, "**Total Commits:** %d\n\n", len(report.Items))

	if len(items) == 0 {
		fmt.Fprintln(out, "No commits in this window.")
		return nil
	}

	fmt.Fprintln(out, "| # | ID | Date | Author | Files | + | - | Message |")
	fmt.Fprintln(out, "|---|----|------|--------|-------|---|---|---------|")
	for i, item := range items {
		fmt.Fprintf(out, "| %d | `%s` | %s | %s | %d | %d | %d | %s |\n",
			i+1,
			item.ID,
			item.Timestamp.Format(consoleDateLayout),
			escapeMarkdown(item.Author),
			len(item.FilesChanged),
			item.Additions,
			item.Deletions,
			escapeMarkdown(truncateMessage(item.Message, 48)),
		)
	}

	return nil
}

// MarkdownFileChangeWriter writes file change reports as Markdown.
type MarkdownFileChangeWriter struct{}

// Write outputs the file change report as Markdown.
func (w *MarkdownFileChangeWriter) Write(report *FileChangeReport, options Options) error {
	items := limitTop(report.Items, options.Top)

	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# File Changes")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Commit:** `%s`\n\n", report.CommitID)
	fmt.Fprintf(out, "**Total Files:** %d\n\n", len(report.Items))

	if len(items) == 0 {
		fmt.Fprintln(out, "No file changes to show.")
		return nil
	}

	fmt.Fprintln(out, "| # | Path | Change | + | - |")
	fmt.Fprintln(out, "|---|------|--------|---|---|")
	for i, item := range items {
		fmt.Fprintf(out, "| %d | `%s` | %s %s | %d | %d |\n",
			i+1,
			item.FilePath,
			changeTypeEmoji(item.ChangeType),
			item.ChangeType,
			item.Additions,
			item.Deletions,
		)
	}

	if options.ShowDiff {
		for _, item := range items {
			if item.DiffBody == "" {
				continue
			}
			fmt.Fprintf(out, "\n## `%s`\n\n", item.FilePath)
			fmt.Fprintf(out, "```diff\n%s\n```\n", strings.TrimRight(item.DiffBody, "\n"))
		}
	}

	return nil
}

// MarkdownStatsWriter writes repository summaries as Markdown.
type MarkdownStatsWriter struct{}

// Write outputs the repository summary as Markdown.
func (w *MarkdownStatsWriter) Write(report *StatsReport, options Options) error {
	s := report.Stats

	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# Repository Statistics")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintln(out, "| Metric | Value |")
	fmt.Fprintln(out, "|--------|-------|")
	fmt.Fprintf(out, "| Total commits | %d |\n", s.TotalCommits)
	fmt.Fprintf(out, "| Branches | %s |\n", strings.Join(s.Branches, ", "))
	fmt.Fprintf(out, "| Current branch | %s |\n", s.CurrentBranch)
	fmt.Fprintf(out, "| Last commit | `%s` %s |\n", s.LastCommit.ID, escapeMarkdown(truncateMessage(s.LastCommit.Message, 48)))
	fmt.Fprintf(out, "| Last activity | %s |\n", s.LastCommit.Timestamp.Format(consoleDateLayout))

	return nil
}

func changeTypeEmoji(t extract.ChangeType) string {
	switch t {
	case extract.ChangeAdded:
		return "🟢"
	case extract.ChangeDeleted:
		return "🔴"
	default:
		return "🟡"
	}
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
