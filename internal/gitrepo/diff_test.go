package gitrepo

import (
	"context"
	"strings"
	"testing"
	"time"
)

// findDiff returns the entry whose effective path matches, failing the test
// when it is absent.
func findDiff(t *testing.T, diffs []FileDiff, path string) FileDiff {
	t.Helper()
	for _, d := range diffs {
		if d.Path() == path {
			return d
		}
	}
	t.Fatalf("no diff entry for %q in %+v", path, diffs)
	return FileDiff{}
}

func TestDiffAgainstFirstParent(t *testing.T) {
	dir, repo := createTestRepo(t)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	addCommit(t, repo, "first", map[string]string{"a.txt": "one\ntwo\n"}, base)
	hash := addCommit(t, repo, "second", map[string]string{
		"a.txt": "one\nTWO\nthree\n",
		"b.txt": "b1\nb2\nb3\n",
	}, base.Add(1*time.Hour))

	r, err := Open(dir)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	commit, err := r.ResolveCommit(hash.String())
	if err != nil {
		t.Fatalf("ResolveCommit returned error: %v", err)
	}

	diffs, err := r.DiffAgainstFirstParent(context.Background(), commit)
	if err != nil {
		t.Fatalf("DiffAgainstFirstParent returned error: %v", err)
	}
	if len(diffs) != 2 {
		t.Fatalf("got %d diff entries, want 2", len(diffs))
	}

	modified := findDiff(t, diffs, "a.txt")
	if modified.FromPath != "a.txt" || modified.ToPath != "a.txt" {
		t.Errorf("a.txt paths = (%q, %q), want (a.txt, a.txt)", modified.FromPath, modified.ToPath)
	}
	if modified.Stats == nil {
		t.Fatal("a.txt has no line stats")
	}
	if modified.Stats.Insertions != 2 || modified.Stats.Deletions != 1 {
		t.Errorf("a.txt stats = +%d -%d, want +2 -1", modified.Stats.Insertions, modified.Stats.Deletions)
	}
	if !strings.Contains(modified.Body, "@@") || !strings.Contains(modified.Body, "+TWO") {
		t.Errorf("a.txt body missing hunk content:\n%s", modified.Body)
	}

	added := findDiff(t, diffs, "b.txt")
	if added.FromPath != "" || added.ToPath != "b.txt" {
		t.Errorf("b.txt paths = (%q, %q), want (\"\", b.txt)", added.FromPath, added.ToPath)
	}
	if added.Stats == nil {
		t.Fatal("b.txt has no line stats")
	}
	if added.Stats.Insertions != 3 || added.Stats.Deletions != 0 {
		t.Errorf("b.txt stats = +%d -%d, want +3 -0", added.Stats.Insertions, added.Stats.Deletions)
	}
}

func TestDiffDeletion(t *testing.T) {
	dir, repo := createTestRepo(t)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	addCommit(t, repo, "first", map[string]string{
		"keep.txt":   "kept\n",
		"victim.txt": "gone\n",
	}, base)
	hash := removeAndCommit(t, repo, "drop victim", []string{"victim.txt"}, base.Add(1*time.Hour))

	r, err := Open(dir)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	commit, err := r.ResolveCommit(hash.String())
	if err != nil {
		t.Fatalf("ResolveCommit returned error: %v", err)
	}

	diffs, err := r.DiffAgainstFirstParent(context.Background(), commit)
	if err != nil {
		t.Fatalf("DiffAgainstFirstParent returned error: %v", err)
	}
	if len(diffs) != 1 {
		t.Fatalf("got %d diff entries, want 1", len(diffs))
	}

	deleted := diffs[0]
	if deleted.FromPath != "victim.txt" || deleted.ToPath != "" {
		t.Errorf("paths = (%q, %q), want (victim.txt, \"\")", deleted.FromPath, deleted.ToPath)
	}
	if deleted.Path() != "victim.txt" {
		t.Errorf("Path() = %q, want victim.txt", deleted.Path())
	}
	if deleted.Stats == nil {
		t.Fatal("deletion has no line stats")
	}
	if deleted.Stats.Insertions != 0 || deleted.Stats.Deletions != 1 {
		t.Errorf("stats = +%d -%d, want +0 -1", deleted.Stats.Insertions, deleted.Stats.Deletions)
	}
}

func TestDiffRenameKeepsBothPaths(t *testing.T) {
	dir, repo := createTestRepo(t)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	content := "line1\nline2\nline3\nline4\nline5\n"
	addCommit(t, repo, "first", map[string]string{"old.txt": content}, base)

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}
	if _, err := w.Remove("old.txt"); err != nil {
		t.Fatalf("Failed to remove old.txt: %v", err)
	}
	hash := addCommit(t, repo, "rename", map[string]string{"new.txt": content}, base.Add(1*time.Hour))

	r, err := Open(dir)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	commit, err := r.ResolveCommit(hash.String())
	if err != nil {
		t.Fatalf("ResolveCommit returned error: %v", err)
	}

	diffs, err := r.DiffAgainstFirstParent(context.Background(), commit)
	if err != nil {
		t.Fatalf("DiffAgainstFirstParent returned error: %v", err)
	}
	if len(diffs) != 1 {
		t.Fatalf("got %d diff entries, want 1 (rename not folded): %+v", len(diffs), diffs)
	}

	renamed := diffs[0]
	if renamed.FromPath != "old.txt" || renamed.ToPath != "new.txt" {
		t.Errorf("paths = (%q, %q), want (old.txt, new.txt)", renamed.FromPath, renamed.ToPath)
	}
	if renamed.Path() != "new.txt" {
		t.Errorf("Path() = %q, want new.txt", renamed.Path())
	}
}

func TestDiffAgainstEmptyTree(t *testing.T) {
	dir, repo := createTestRepo(t)
	hash := addCommit(t, repo, "root", map[string]string{
		"a.txt":     "alpha\nbeta\n",
		"sub/c.txt": "gamma\n",
		"last.txt":  "no trailing newline",
	}, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))

	r, err := Open(dir)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	commit, err := r.ResolveCommit(hash.String())
	if err != nil {
		t.Fatalf("ResolveCommit returned error: %v", err)
	}

	diffs, err := r.DiffAgainstEmptyTree(context.Background(), commit)
	if err != nil {
		t.Fatalf("DiffAgainstEmptyTree returned error: %v", err)
	}
	if len(diffs) != 3 {
		t.Fatalf("got %d diff entries, want 3", len(diffs))
	}

	wantInsertions := map[string]int{
		"a.txt":     2,
		"sub/c.txt": 1,
		"last.txt":  1,
	}
	for path, insertions := range wantInsertions {
		d := findDiff(t, diffs, path)
		if d.FromPath != "" {
			t.Errorf("%s FromPath = %q, want empty", path, d.FromPath)
		}
		if d.Stats == nil {
			t.Fatalf("%s has no line stats", path)
		}
		if d.Stats.Insertions != insertions || d.Stats.Deletions != 0 {
			t.Errorf("%s stats = +%d -%d, want +%d -0", path, d.Stats.Insertions, d.Stats.Deletions, insertions)
		}
	}
}

func TestDiffBinaryFileHasNoStats(t *testing.T) {
	dir, repo := createTestRepo(t)
	hash := addCommit(t, repo, "binary", map[string]string{
		"blob.bin": "\x00\x01\x02\x03binary payload",
	}, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))

	r, err := Open(dir)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	commit, err := r.ResolveCommit(hash.String())
	if err != nil {
		t.Fatalf("ResolveCommit returned error: %v", err)
	}

	diffs, err := r.DiffAgainstEmptyTree(context.Background(), commit)
	if err != nil {
		t.Fatalf("DiffAgainstEmptyTree returned error: %v", err)
	}
	if len(diffs) != 1 {
		t.Fatalf("got %d diff entries, want 1", len(diffs))
	}
	if diffs[0].Stats != nil {
		t.Errorf("binary entry has stats %+v, want nil", diffs[0].Stats)
	}
	if diffs[0].Path() != "blob.bin" {
		t.Errorf("Path() = %q, want blob.bin", diffs[0].Path())
	}
}
