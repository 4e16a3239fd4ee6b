// Package extract derives structured commit and file-change records from a
// repository's history. It is the data source of the blog pipeline:
// everything downstream consumes its records and never touches the
// repository itself.
package extract

import (
	"context"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	log "github.com/sirupsen/logrus"

	"github.com/Glen-Lee-glitch/blog-auto-made/internal/gitrepo"
)

// DefaultBranch is the history line traversed when none is configured.
const DefaultBranch = "main"

const shortIDLen = 8

// Options configures an Extractor.
type Options struct {
	// Branch is the primary branch to traverse. Empty means DefaultBranch.
	Branch string
	// Include and Exclude are doublestar patterns matched against diff
	// entry paths. Both empty, the default, considers every entry.
	Include []string
	Exclude []string
}

// Extractor walks repository history and emits commit and file-change
// records. Calls share no mutable state, but the underlying repository is
// not guaranteed safe for concurrent readers; open one Extractor per
// goroutine.
type Extractor struct {
	repo *gitrepo.Repository
	opts Options
}

// New creates an extractor over an opened repository.
func New(repo *gitrepo.Repository, opts Options) *Extractor {
	if opts.Branch == "" {
		opts.Branch = DefaultBranch
	}
	return &Extractor{repo: repo, opts: opts}
}

// Branch returns the branch the extractor traverses.
func (e *Extractor) Branch() string { return e.opts.Branch }

// RecentCommits returns a record for every commit on the primary branch
// whose commit time falls within the last `days` days, newest first.
// Traversal stops at the first commit older than the cutoff; a branch with
// non-chronological history may therefore under-include, which is accepted
// rather than corrected. A commit exactly on the cutoff is included.
//
// When the branch cannot be walked the result is a nil slice and a
// *ExtractionError. Per-commit derivation problems never fail the batch:
// they degrade that record to zero stats.
func (e *Extractor) RecentCommits(ctx context.Context, days int) ([]CommitRecord, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	iter, err := e.repo.Commits(e.opts.Branch)
	if err != nil {
		return nil, &ExtractionError{Op: "iterate branch " + e.opts.Branch, Cause: err}
	}
	defer iter.Close()

	var records []CommitRecord
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.Committer.When.Before(cutoff) {
			return storer.ErrStop
		}
		records = append(records, e.commitRecord(ctx, c))
		return nil
	})
	if err != nil {
		return nil, &ExtractionError{Op: "walk branch " + e.opts.Branch, Cause: err}
	}

	log.Infof("found %d commits in the last %d days", len(records), days)
	return records, nil
}

// FileChanges returns per-file records for one commit, classified as added,
// modified or deleted. The identifier may be abbreviated or full. Root
// commits yield an empty result: the detail view only covers parent-relative
// diffs. Unknown identifiers yield a *gitrepo.NotFoundError, never an empty
// success.
func (e *Extractor) FileChanges(ctx context.Context, commitID string) ([]FileChangeRecord, error) {
	c, err := e.repo.ResolveCommit(commitID)
	if err != nil {
		return nil, err
	}
	if c.NumParents() == 0 {
		log.Debugf("commit %s is a root commit, no file changes to report", commitID)
		return nil, nil
	}

	diffs, err := e.repo.DiffAgainstFirstParent(ctx, c)
	if err != nil {
		return nil, &ExtractionError{Op: "diff commit " + commitID, Cause: err}
	}

	records := make([]FileChangeRecord, 0, len(diffs))
	for _, d := range diffs {
		path := d.Path()
		if path == "" || !e.matchesFilters(path) {
			continue
		}
		stats := statsOrZero(d)
		records = append(records, FileChangeRecord{
			FilePath:   path,
			ChangeType: classify(d),
			Additions:  stats.Insertions,
			Deletions:  stats.Deletions,
			DiffBody:   d.Body,
		})
	}
	return records, nil
}

// Stats summarizes the repository: full-history commit count, branch list,
// the branch currently checked out and the newest commit. The history is
// walked on every call; this is a diagnostic view, not a hot path.
func (e *Extractor) Stats(ctx context.Context) (RepositoryStats, error) {
	total, err := e.repo.CountCommits(ctx)
	if err != nil {
		return RepositoryStats{}, &ExtractionError{Op: "count commits", Cause: err}
	}
	branches, err := e.repo.Branches()
	if err != nil {
		return RepositoryStats{}, &ExtractionError{Op: "list branches", Cause: err}
	}
	head, current, err := e.repo.Head()
	if err != nil {
		return RepositoryStats{}, &ExtractionError{Op: "read HEAD", Cause: err}
	}

	return RepositoryStats{
		TotalCommits:  total,
		Branches:      branches,
		CurrentBranch: current,
		LastCommit: LastCommit{
			ID:        shortID(head),
			Message:   strings.TrimSpace(head.Message),
			Timestamp: head.Committer.When,
		},
	}, nil
}

// commitRecord derives one record. Every derivation step is independently
// fault tolerant: a diff that cannot be computed, or an entry without line
// statistics, contributes zeroes instead of aborting the batch.
func (e *Extractor) commitRecord(ctx context.Context, c *object.Commit) CommitRecord {
	rec := CommitRecord{
		ID:        shortID(c),
		Author:    c.Author.Name,
		Timestamp: c.Committer.When,
		Message:   strings.TrimSpace(c.Message),
	}

	diffs, err := e.diffForCommit(ctx, c)
	if err != nil {
		log.Warnf("commit %s: diff failed, keeping zero stats: %v", rec.ID, err)
		return rec
	}

	for _, d := range diffs {
		path := d.Path()
		if path == "" || !e.matchesFilters(path) {
			continue
		}
		rec.FilesChanged = append(rec.FilesChanged, path)
		stats := statsOrZero(d)
		rec.Additions += stats.Insertions
		rec.Deletions += stats.Deletions
	}
	return rec
}

// diffForCommit picks the only diff a commit admits: against the first
// parent, or against the empty tree for root commits. Merge commits are
// diffed against the first parent alone.
func (e *Extractor) diffForCommit(ctx context.Context, c *object.Commit) ([]gitrepo.FileDiff, error) {
	if c.NumParents() == 0 {
		return e.repo.DiffAgainstEmptyTree(ctx, c)
	}
	return e.repo.DiffAgainstFirstParent(ctx, c)
}

// classify maps the presence of the pre- and post-change paths to a change
// type. A rename keeps both paths and therefore counts as a modification.
func classify(d gitrepo.FileDiff) ChangeType {
	switch {
	case d.FromPath == "":
		return ChangeAdded
	case d.ToPath == "":
		return ChangeDeleted
	default:
		return ChangeModified
	}
}

// statsOrZero is the single point where the accessor's optional statistics
// are normalized: an entry without line stats counts as zero lines.
func statsOrZero(d gitrepo.FileDiff) gitrepo.LineStats {
	if d.Stats == nil {
		return gitrepo.LineStats{}
	}
	return *d.Stats
}

// matchesFilters applies the optional include and exclude patterns to a
// path. Exclusion wins; an empty include list accepts everything.
func (e *Extractor) matchesFilters(path string) bool {
	path = strings.ReplaceAll(path, "\\", "/")
	for _, pattern := range e.opts.Exclude {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return false
		}
	}
	if len(e.opts.Include) == 0 {
		return true
	}
	for _, pattern := range e.opts.Include {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return true
		}
	}
	return false
}

func shortID(c *object.Commit) string {
	return c.Hash.String()[:shortIDLen]
}
