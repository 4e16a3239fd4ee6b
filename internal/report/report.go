// Package report renders extraction results for people and machines:
// colored console tables, JSON documents and Markdown summaries, selected
// through a writer factory per report kind.
package report

import (
	"time"

	"github.com/Glen-Lee-glitch/blog-auto-made/internal/extract"
)

// Compile-time interface conformance checks.
var (
	// CommitLogWriter implementations
	_ CommitLogWriter = (*ConsoleCommitLogWriter)(nil)
	_ CommitLogWriter = (*JSONCommitLogWriter)(nil)
	_ CommitLogWriter = (*MarkdownCommitLogWriter)(nil)

	// FileChangeWriter implementations
	_ FileChangeWriter = (*ConsoleFileChangeWriter)(nil)
	_ FileChangeWriter = (*JSONFileChangeWriter)(nil)
	_ FileChangeWriter = (*MarkdownFileChangeWriter)(nil)

	// StatsWriter implementations
	_ StatsWriter = (*ConsoleStatsWriter)(nil)
	_ StatsWriter = (*JSONStatsWriter)(nil)
	_ StatsWriter = (*MarkdownStatsWriter)(nil)
)

// Format represents the output format type.
type Format string

const (
	FormatConsole  Format = "console"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Options controls report rendering.
type Options struct {
	Format     Format
	Top        int
	OutputPath string
	ShowDiff   bool
}

// CommitLogReport holds the commits extracted from a time window.
type CommitLogReport struct {
	RepoPath    string
	Branch      string
	Days        int
	GeneratedAt time.Time
	Items       []extract.CommitRecord
}

// FileChangeReport holds the per-file detail of a single commit.
type FileChangeReport struct {
	RepoPath    string
	CommitID    string
	GeneratedAt time.Time
	Items       []extract.FileChangeRecord
}

// StatsReport holds the repository summary.
type StatsReport struct {
	RepoPath    string
	GeneratedAt time.Time
	Stats       extract.RepositoryStats
}

// CommitLogWriter writes commit log reports.
type CommitLogWriter interface {
	Write(report *CommitLogReport, options Options) error
}

// FileChangeWriter writes file change reports.
type FileChangeWriter interface {
	Write(report *FileChangeReport, options Options) error
}

// StatsWriter writes repository summary reports.
type StatsWriter interface {
	Write(report *StatsReport, options Options) error
}

// NewCommitLogWriter creates a commit log writer for the specified format.
func NewCommitLogWriter(format Format) CommitLogWriter {
	switch format {
	case FormatJSON:
		return &JSONCommitLogWriter{}
	case FormatMarkdown:
		return &MarkdownCommitLogWriter{}
	default:
		return &ConsoleCommitLogWriter{}
	}
}

// NewFileChangeWriter creates a file change writer for the specified format.
func NewFileChangeWriter(format Format) FileChangeWriter {
	switch format {
	case FormatJSON:
		return &JSONFileChangeWriter{}
	case FormatMarkdown:
		return &MarkdownFileChangeWriter{}
	default:
		return &ConsoleFileChangeWriter{}
	}
}

// NewStatsWriter creates a stats writer for the specified format.
func NewStatsWriter(format Format) StatsWriter {
	switch format {
	case FormatJSON:
		return &JSONStatsWriter{}
	case FormatMarkdown:
		return &MarkdownStatsWriter{}
	default:
		return &ConsoleStatsWriter{}
	}
}
