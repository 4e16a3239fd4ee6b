package gitrepo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// createTestRepo creates a temporary git repository whose default branch is
// main, matching the branch the extractor assumes by default.
func createTestRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()

	tmpDir := t.TempDir()
	repo, err := git.PlainInitWithOptions(tmpDir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.Main},
	})
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}
	return tmpDir, repo
}

// addCommit writes the given files (path -> content), stages them and
// commits with the given message and time. The time is used for both author
// and committer.
func addCommit(t *testing.T, repo *git.Repository, message string, files map[string]string, when time.Time) plumbing.Hash {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	root := w.Filesystem.Root()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write file %s: %v", name, err)
		}
		if _, err := w.Add(name); err != nil {
			t.Fatalf("Failed to add file %s: %v", name, err)
		}
	}

	hash, err := w.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
			When:  when,
		},
	})
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
	return hash
}

// removeAndCommit stages the removal of the given files and commits.
func removeAndCommit(t *testing.T, repo *git.Repository, message string, names []string, when time.Time) plumbing.Hash {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}
	for _, name := range names {
		if _, err := w.Remove(name); err != nil {
			t.Fatalf("Failed to remove file %s: %v", name, err)
		}
	}

	hash, err := w.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
			When:  when,
		},
	})
	if err != nil {
		t.Fatalf("Failed to commit removal: %v", err)
	}
	return hash
}

// checkoutNewBranch creates and checks out a new branch at the current HEAD.
func checkoutNewBranch(t *testing.T, repo *git.Repository, name string) {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}
	err = w.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: true,
	})
	if err != nil {
		t.Fatalf("Failed to checkout branch %s: %v", name, err)
	}
}
