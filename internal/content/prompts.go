package content

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Glen-Lee-glitch/blog-auto-made/internal/extract"
)

const (
	maxTitleMessages = 5
	maxDigestPaths   = 5
	maxDiffBodyChars = 500
)

const titleSystemPrompt = "You are a technical writer who crafts concise, engaging titles for development blog posts."

const bodySystemPrompt = "You are a developer writing a friendly, insightful blog post about recent work " +
	"on a project. You write in Markdown and keep a practical, experience-sharing tone."

func titleUserPrompt(commits []extract.CommitRecord) string {
	var lines []string
	for i, c := range commits {
		if i == maxTitleMessages {
			break
		}
		lines = append(lines, "- "+firstLine(c.Message))
	}
	return fmt.Sprintf(`Suggest one title for a development blog post covering the following commits.

%s

Answer with the title only, no quotes, at most 60 characters.`, strings.Join(lines, "\n"))
}

func bodyUserPrompt(digest string) string {
	return fmt.Sprintf(`Write a development blog post in Markdown about the changes below.

Structure the post with exactly these sections:

## ✨ Overview
## 📝 Key Changes
## 💡 Implementation Notes & Lessons
## ✅ Wrap-up

Mention commit identifiers where they help the narrative. Do not invent
changes that are not in the summary.

Changes:

%s`, digest)
}

// digest renders the commit window into the plain-text summary shared by the
// body prompt and the fallback body. File change details, when present, are
// keyed by commit identifier and embedded under their commit.
func digest(commits []extract.CommitRecord, changes map[string][]extract.FileChangeRecord) string {
	var b strings.Builder
	for _, c := range commits {
		fmt.Fprintf(&b, "### %s %s\n", c.ID, firstLine(c.Message))
		fmt.Fprintf(&b, "- author: %s\n", c.Author)
		fmt.Fprintf(&b, "- date: %s\n", c.Timestamp.Format("2006-01-02 15:04"))
		fmt.Fprintf(&b, "- lines: +%d -%d\n", c.Additions, c.Deletions)
		if len(c.FilesChanged) > 0 {
			fmt.Fprintf(&b, "- files: %s\n", pathList(c.FilesChanged))
		}
		for _, fc := range changes[c.ID] {
			fmt.Fprintf(&b, "\n%s (%s, +%d -%d)\n", fc.FilePath, fc.ChangeType, fc.Additions, fc.Deletions)
			if fc.DiffBody != "" {
				fmt.Fprintf(&b, "```diff\n%s\n```\n", truncate(fc.DiffBody, maxDiffBodyChars))
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func pathList(paths []string) string {
	if len(paths) <= maxDigestPaths {
		return strings.Join(paths, ", ")
	}
	return fmt.Sprintf("%s, and %d more", strings.Join(paths[:maxDigestPaths], ", "), len(paths)-maxDigestPaths)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

// truncate cuts s to at most max bytes without splitting a UTF-8 sequence.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "\n... (truncated)"
}
