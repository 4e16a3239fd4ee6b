// Package post turns generated prose into publishable Markdown files:
// Jekyll-style front matter, mechanical Markdown cleanups, dated file names
// and a per-run summary index.
package post

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Meta is the authorship block stamped into every post's front matter.
type Meta struct {
	Author     string
	Categories []string
	Tags       []string
}

// DefaultMeta returns the authorship block used when the configuration file
// does not override it.
func DefaultMeta() Meta {
	return Meta{
		Author:     "Auto Devlog",
		Categories: []string{"devlog", "tech-blog"},
		Tags:       []string{"git", "development", "ai", "automation"},
	}
}

// Formatter assembles final Markdown documents.
type Formatter struct {
	meta Meta
}

// NewFormatter creates a formatter. Empty Meta fields fall back to the
// defaults.
func NewFormatter(meta Meta) *Formatter {
	def := DefaultMeta()
	if meta.Author == "" {
		meta.Author = def.Author
	}
	if len(meta.Categories) == 0 {
		meta.Categories = def.Categories
	}
	if len(meta.Tags) == 0 {
		meta.Tags = def.Tags
	}
	return &Formatter{meta: meta}
}

type frontMatter struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Author      string   `yaml:"author"`
	Categories  []string `yaml:"categories"`
	Tags        []string `yaml:"tags"`
	GeneratedAt string   `yaml:"generated_at"`
}

// attribution is quoted under the front matter of every generated post.
const attribution = "> This post was generated automatically from the repository's commit history."

// Format assembles the final Markdown document: YAML front matter, the
// attribution quote, then the polished body.
func (f *Formatter) Format(title, body string) string {
	now := time.Now()
	head, err := yaml.Marshal(&frontMatter{
		Title:       title,
		Date:        now.Format("2006-01-02 15:04:05"),
		Author:      f.meta.Author,
		Categories:  f.meta.Categories,
		Tags:        f.meta.Tags,
		GeneratedAt: now.Format(time.RFC3339),
	})
	if err != nil {
		log.Warnf("front matter marshalling failed: %v", err)
		head = []byte("title: " + title + "\n")
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(head)
	b.WriteString("---\n\n")
	b.WriteString(attribution)
	b.WriteString("\n\n")
	b.WriteString(polish(body))
	doc := b.String()
	if !strings.HasSuffix(doc, "\n") {
		doc += "\n"
	}
	return doc
}

var (
	commitRef = regexp.MustCompile(`\(([a-f0-9]{8})\)`)
	githubURL = regexp.MustCompile(`(^|[^(\[])(https://github\.com/[^\s)]+)`)
	listBreak = regexp.MustCompile(`(?m)^(- .*)\n([^\s-])`)
)

// polish applies the small cleanups model output tends to need: a leading H1
// duplicating the title is dropped, bare commit ids become code spans, bare
// GitHub URLs become links and list blocks get a blank line before following
// paragraphs.
func polish(body string) string {
	body = strings.TrimSpace(body)
	if strings.HasPrefix(body, "# ") {
		if i := strings.IndexByte(body, '\n'); i >= 0 {
			body = strings.TrimLeft(body[i+1:], "\n")
		} else {
			body = ""
		}
	}
	body = commitRef.ReplaceAllString(body, "(`$1`)")
	body = githubURL.ReplaceAllString(body, "$1[$2]($2)")
	body = listBreak.ReplaceAllString(body, "$1\n\n$2")
	return body
}

var (
	slugStrip  = regexp.MustCompile(`[^\w\s-]`)
	slugSpaces = regexp.MustCompile(`[\s-]+`)
)

// FilenameFromTitle derives a filesystem-safe file name from a post title,
// prefixed with the current date, e.g. 20240302_parsing_faster.md.
func (f *Formatter) FilenameFromTitle(title string) string {
	slug := slugStrip.ReplaceAllString(title, "")
	slug = slugSpaces.ReplaceAllString(strings.TrimSpace(slug), "_")
	slug = strings.Trim(strings.ToLower(slug), "_")
	if slug == "" {
		slug = "post"
	}
	return time.Now().Format("20060102") + "_" + slug + ".md"
}

// Save writes a finished post under outputDir, creating the directory when
// needed, and returns the full path.
func (f *Formatter) Save(content, outputDir, filename string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(outputDir, filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write post: %w", err)
	}
	log.Infof("post saved to %s", path)
	return path, nil
}
