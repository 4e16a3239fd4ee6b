package post

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SummaryFilename is the index file written next to the generated posts.
const SummaryFilename = "posts_summary.md"

// GeneratedPost records one written post for the run summary.
type GeneratedPost struct {
	Path        string
	Title       string
	GeneratedAt time.Time
}

// WriteSummary writes a Markdown index of every post generated in this run
// under outputDir and returns its path. An empty post list still produces
// the file, with an explanatory line instead of the table.
func WriteSummary(posts []GeneratedPost, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	var b strings.Builder
	b.WriteString("# Generated Posts\n\n")
	if len(posts) == 0 {
		b.WriteString("No posts were generated in this run.\n")
	} else {
		b.WriteString("| # | Title | File | Generated At |\n")
		b.WriteString("|---|-------|------|--------------|\n")
		for i, p := range posts {
			fmt.Fprintf(&b, "| %d | %s | `%s` | %s |\n",
				i+1, p.Title, filepath.Base(p.Path), p.GeneratedAt.Format("2006-01-02 15:04:05"))
		}
	}

	path := filepath.Join(outputDir, SummaryFilename)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write summary: %w", err)
	}
	return path, nil
}
