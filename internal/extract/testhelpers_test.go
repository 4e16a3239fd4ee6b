package extract

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/Glen-Lee-glitch/blog-auto-made/internal/gitrepo"
)

// createTestRepo creates a temporary git repository whose default branch is
// main and returns it together with an opened accessor.
func createTestRepo(t *testing.T) (*git.Repository, *gitrepo.Repository) {
	t.Helper()

	tmpDir := t.TempDir()
	repo, err := git.PlainInitWithOptions(tmpDir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.Main},
	})
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}

	r, err := gitrepo.Open(tmpDir)
	if err != nil {
		t.Fatalf("Failed to open repo: %v", err)
	}
	return repo, r
}

// commitChanges writes the given files (path -> content), stages the given
// removals, and commits everything with the given message and time.
func commitChanges(t *testing.T, repo *git.Repository, message string, writes map[string]string, removes []string, when time.Time) plumbing.Hash {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	root := w.Filesystem.Root()
	for name, content := range writes {
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
	for _, name := range removes {
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
		t.Fatalf("Failed to commit: %v", err)
	}
	return hash
}

// checkoutBranch checks out the named branch, creating it when asked.
func checkoutBranch(t *testing.T, repo *git.Repository, name string, create bool) {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}
	err = w.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: create,
	})
	if err != nil {
		t.Fatalf("Failed to checkout branch %s: %v", name, err)
	}
}

// mergeCommit writes the given files, stages them and commits with the two
// given parents, first parent first.
func mergeCommit(t *testing.T, repo *git.Repository, message string, writes map[string]string, parents []plumbing.Hash, when time.Time) plumbing.Hash {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}
	root := w.Filesystem.Root()
	for name, content := range writes {
		path := filepath.Join(root, name)
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
		Parents: parents,
	})
	if err != nil {
		t.Fatalf("Failed to create merge commit: %v", err)
	}
	return hash
}
