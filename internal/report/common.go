package report

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/Glen-Lee-glitch/blog-auto-made/internal/extract"
)

const consoleDateLayout = "2006-01-02 15:04"

func limitTop[T any](items []T, top int) []T {
	if top <= 0 || top >= len(items) {
		return items
	}
	return items[:top]
}

// createWriter returns the destination writer: stdout when no path is set,
// otherwise a freshly created file the caller must close.
func createWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

func truncateMessage(msg string, maxLen int) string {
	msg = firstLine(msg)
	if len(msg) <= maxLen {
		return msg
	}
	return msg[:maxLen-3] + "..."
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func changeTypeColor(t extract.ChangeType) func(string, ...interface{}) string {
	switch t {
	case extract.ChangeAdded:
		return color.GreenString
	case extract.ChangeDeleted:
		return color.RedString
	default:
		return color.YellowString
	}
}
