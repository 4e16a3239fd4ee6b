// Package blog wires history extraction, content generation and post
// formatting into the end-to-end pipeline behind the CLI.
package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Glen-Lee-glitch/blog-auto-made/internal/extract"
	"github.com/Glen-Lee-glitch/blog-auto-made/internal/post"
)

// ErrNoCommits reports a window with nothing to write about.
var ErrNoCommits = errors.New("no commits in the requested window")

// ContentGenerator is the prose source the pipeline drives. Implemented by
// *content.Generator.
type ContentGenerator interface {
	Title(ctx context.Context, commits []extract.CommitRecord) string
	Body(ctx context.Context, commits []extract.CommitRecord, changes map[string][]extract.FileChangeRecord) string
}

// Options configures a pipeline run.
type Options struct {
	// OutputDir is where posts and the run summary land.
	OutputDir string
	// WithFileChanges attaches per-commit diff detail to the content prompt.
	WithFileChanges bool
}

// Generator runs the extract, generate, format, save pipeline.
type Generator struct {
	extractor *extract.Extractor
	content   ContentGenerator
	formatter *post.Formatter
	opts      Options
}

// New assembles a pipeline from its three stages.
func New(extractor *extract.Extractor, contentGen ContentGenerator, formatter *post.Formatter, opts Options) *Generator {
	if opts.OutputDir == "" {
		opts.OutputDir = "./output"
	}
	return &Generator{extractor: extractor, content: contentGen, formatter: formatter, opts: opts}
}

// GeneratePost runs the pipeline once over the last `days` days and returns
// the written post. A window without commits yields ErrNoCommits.
func (g *Generator) GeneratePost(ctx context.Context, days int) (*post.GeneratedPost, error) {
	return g.generate(ctx, days, map[string]bool{})
}

// GenerateMany runs the pipeline once per window and writes the run summary
// index. A failing window is logged and skipped so the remaining windows
// still get their posts.
func (g *Generator) GenerateMany(ctx context.Context, windows []int) ([]post.GeneratedPost, error) {
	used := map[string]bool{}
	var posts []post.GeneratedPost
	for _, days := range windows {
		if err := ctx.Err(); err != nil {
			return posts, err
		}
		p, err := g.generate(ctx, days, used)
		if err != nil {
			if errors.Is(err, ErrNoCommits) {
				log.Infof("window of %d days has no commits, skipping", days)
			} else {
				log.Errorf("window of %d days failed: %v", days, err)
			}
			continue
		}
		posts = append(posts, *p)
	}

	if len(posts) > 0 {
		if _, err := post.WriteSummary(posts, g.opts.OutputDir); err != nil {
			return posts, err
		}
	}
	return posts, nil
}

func (g *Generator) generate(ctx context.Context, days int, used map[string]bool) (*post.GeneratedPost, error) {
	commits, err := g.extractor.RecentCommits(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("extracting commits: %w", err)
	}
	if len(commits) == 0 {
		return nil, ErrNoCommits
	}
	log.Infof("generating post for %d commits (%d day window)", len(commits), days)

	var changes map[string][]extract.FileChangeRecord
	if g.opts.WithFileChanges {
		changes = g.collectChanges(ctx, commits)
	}

	title := g.content.Title(ctx, commits)
	body := g.content.Body(ctx, commits, changes)

	filename := g.formatter.FilenameFromTitle(title)
	if used[filename] {
		filename = fmt.Sprintf("%s_%dd.md", strings.TrimSuffix(filename, ".md"), days)
	}
	used[filename] = true

	path, err := g.formatter.Save(g.formatter.Format(title, body), g.opts.OutputDir, filename)
	if err != nil {
		return nil, err
	}
	return &post.GeneratedPost{Path: path, Title: title, GeneratedAt: time.Now()}, nil
}

// collectChanges gathers per-commit diff detail. A commit whose detail
// cannot be derived is simply left out of the map; the post still covers it
// through the commit record.
func (g *Generator) collectChanges(ctx context.Context, commits []extract.CommitRecord) map[string][]extract.FileChangeRecord {
	changes := make(map[string][]extract.FileChangeRecord, len(commits))
	for _, c := range commits {
		records, err := g.extractor.FileChanges(ctx, c.ID)
		if err != nil {
			log.Warnf("file changes for %s unavailable: %v", c.ID, err)
			continue
		}
		if len(records) > 0 {
			changes[c.ID] = records
		}
	}
	return changes
}
