package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONCommitLogWriter writes commit log reports as JSON.
type JSONCommitLogWriter struct{}

// JSONCommitLogReport is the JSON output structure for the commit log.
type JSONCommitLogReport struct {
	RepoPath     string           `json:"repo"`
	Branch       string           `json:"branch"`
	Days         int              `json:"days"`
	GeneratedAt  string           `json:"generatedAt"`
	TotalCommits int              `json:"totalCommits"`
	Items        []JSONCommitItem `json:"items"`
}

// JSONCommitItem is the JSON output structure for a single commit.
type JSONCommitItem struct {
	ID           string   `json:"id"`
	Author       string   `json:"author"`
	Timestamp    string   `json:"timestamp"`
	Message      string   `json:"message"`
	FilesChanged []string `json:"filesChanged"`
	Additions    int      `json:"additions"`
	Deletions    int      `json:"deletions"`
}

// Write outputs the commit log report as JSON.
func (w *JSONCommitLogWriter) Write(report *CommitLogReport, options Options) error {
	items := limitTop(report.Items, options.Top)

	jsonItems := make([]JSONCommitItem, len(items))
	for i, item := range items {
		jsonItems[i] = JSONCommitItem{
			ID:           item.ID,
			Author:       item.Author,
			Timestamp:    item.Timestamp.Format(time.RFC3339),
			Message:      item.Message,
			FilesChanged: item.FilesChanged,
			Additions:    item.Additions,
			Deletions:    item.Deletions,
		}
	}

	return writeJSON(JSONCommitLogReport{
		RepoPath:     report.RepoPath,
		Branch:       report.Branch,
		Days:         report.Days,
		GeneratedAt:  report.GeneratedAt.Format(time.RFC3339),
		TotalCommits: len(report.Items),
		Items:        jsonItems,
	}, options.OutputPath)
}

// JSONFileChangeWriter writes file change reports as JSON.
type JSONFileChangeWriter struct{}

// JSONFileChangeReport is the JSON output structure for file changes.
type JSONFileChangeReport struct {
	RepoPath    string               `json:"repo"`
	CommitID    string               `json:"commitId"`
	GeneratedAt string               `json:"generatedAt"`
	TotalFiles  int                  `json:"totalFiles"`
	Items       []JSONFileChangeItem `json:"items"`
}

// JSONFileChangeItem is the JSON output structure for a single file change.
type JSONFileChangeItem struct {
	FilePath   string `json:"filePath"`
	ChangeType string `json:"changeType"`
	Additions  int    `json:"additions"`
	Deletions  int    `json:"deletions"`
	Diff       string `json:"diff,omitempty"`
}

// Write outputs the file change report as JSON.
func (w *JSONFileChangeWriter) Write(report *FileChangeReport, options Options) error {
	items := limitTop(report.Items, options.Top)

	jsonItems := make([]JSONFileChangeItem, len(items))
	for i, item := range items {
		jsonItems[i] = JSONFileChangeItem{
			FilePath:   item.FilePath,
			ChangeType: item.ChangeType.String(),
			Additions:  item.Additions,
			Deletions:  item.Deletions,
		}
		if options.ShowDiff {
			jsonItems[i].Diff = item.DiffBody
		}
	}

	return writeJSON(JSONFileChangeReport{
		RepoPath:    report.RepoPath,
		CommitID:    report.CommitID,
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		TotalFiles:  len(report.Items),
		Items:       jsonItems,
	}, options.OutputPath)
}

// JSONStatsWriter writes repository summaries as JSON.
type JSONStatsWriter struct{}

// JSONStatsReport is the JSON output structure for the repository summary.
type JSONStatsReport struct {
	RepoPath      string         `json:"repo"`
	GeneratedAt   string         `json:"generatedAt"`
	TotalCommits  int            `json:"totalCommits"`
	Branches      []string       `json:"branches"`
	CurrentBranch string         `json:"currentBranch"`
	LastCommit    JSONLastCommit `json:"lastCommit"`
}

// JSONLastCommit is the JSON output structure for the newest commit.
type JSONLastCommit struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Write outputs the repository summary as JSON.
func (w *JSONStatsWriter) Write(report *StatsReport, options Options) error {
	s := report.Stats
	return writeJSON(JSONStatsReport{
		RepoPath:      report.RepoPath,
		GeneratedAt:   report.GeneratedAt.Format(time.RFC3339),
		TotalCommits:  s.TotalCommits,
		Branches:      s.Branches,
		CurrentBranch: s.CurrentBranch,
		LastCommit: JSONLastCommit{
			ID:        s.LastCommit.ID,
			Message:   s.LastCommit.Message,
			Timestamp: s.LastCommit.Timestamp.Format(time.RFC3339),
		},
	}, options.OutputPath)
}

func writeJSON(data interface{}, outputPath string) error {
	encoder := json.NewEncoder(os.Stdout)
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		encoder = json.NewEncoder(file)
	}

	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
