// Package gitrepo wraps go-git behind the read-only access contract the
// history extractor needs: ordered commit traversal, pairwise diffing and
// commit lookup. It exposes go-git commit objects directly but keeps every
// other go-git type out of the callers' sight.
package gitrepo

import (
	"context"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	log "github.com/sirupsen/logrus"
)

// Repository is a read-only view of a local Git repository.
type Repository struct {
	path string
	repo *git.Repository
}

// Open opens the repository at path. A path that does not hold a Git
// repository yields a *RepositoryError.
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, &RepositoryError{Path: path, Cause: err}
	}
	log.Debugf("opened repository at %s", path)
	return &Repository{path: path, repo: repo}, nil
}

// Path returns the filesystem path the repository was opened from.
func (r *Repository) Path() string { return r.path }

// Commits returns a newest-first (committer time) iterator over the commits
// reachable from the given branch. An empty branch name, or "HEAD", starts
// from the current HEAD. A fresh iterator is created on every call, so
// traversals are restartable.
func (r *Repository) Commits(branch string) (object.CommitIter, error) {
	tip, err := r.branchTip(branch)
	if err != nil {
		return nil, err
	}
	return r.repo.Log(&git.LogOptions{From: tip, Order: git.LogOrderCommitterTime})
}

func (r *Repository) branchTip(branch string) (plumbing.Hash, error) {
	if branch == "" || strings.EqualFold(branch, "HEAD") {
		ref, err := r.repo.Head()
		if err != nil {
			return plumbing.ZeroHash, err
		}
		return ref.Hash(), nil
	}
	ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return ref.Hash(), nil
}

// ResolveCommit resolves a commit identifier, abbreviated or full, to a
// commit object. Any revision expression go-git understands is accepted.
// Unknown identifiers yield a *NotFoundError.
func (r *Repository) ResolveCommit(id string) (*object.Commit, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(id))
	if err != nil {
		return nil, &NotFoundError{ID: id, Cause: err}
	}
	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, &NotFoundError{ID: id, Cause: err}
	}
	return commit, nil
}

// Branches lists the short names of all local branches.
func (r *Repository) Branches() ([]string, error) {
	iter, err := r.repo.Branches()
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Head returns the commit currently checked out together with the short name
// of the reference HEAD points at. On a detached HEAD the name is "HEAD".
func (r *Repository) Head() (*object.Commit, string, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return nil, "", err
	}
	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, "", err
	}
	return commit, ref.Name().Short(), nil
}

// CountCommits walks the history reachable from HEAD and returns the number
// of commits. The walk is repeated on every call; nothing is cached.
func (r *Repository) CountCommits(ctx context.Context) (int, error) {
	iter, err := r.Commits("")
	if err != nil {
		return 0, err
	}
	defer iter.Close()

	count := 0
	err = iter.ForEach(func(*object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
