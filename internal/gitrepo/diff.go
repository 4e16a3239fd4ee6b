package gitrepo

import (
	"bytes"
	"context"
	"strings"

	fdiff "github.com/go-git/go-git/v5/plumbing/format/diff"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// LineStats holds the line counts of one file's textual patch.
type LineStats struct {
	Insertions int
	Deletions  int
}

// FileDiff describes one file's change between two trees. FromPath is empty
// for files that did not exist before the change and ToPath is empty for
// files that no longer exist after it. Stats is nil when the patch carries
// no line statistics, which is the case for binary content.
type FileDiff struct {
	FromPath string
	ToPath   string
	Stats    *LineStats
	Body     string
}

// Path returns the post-change path when present, falling back to the
// pre-change path. Both sides empty yields "".
func (d FileDiff) Path() string {
	if d.ToPath != "" {
		return d.ToPath
	}
	return d.FromPath
}

// DiffAgainstFirstParent diffs a commit against its first parent. Additional
// parents of merge commits are ignored: a merge is attributed only the
// changes it introduces relative to the branch it landed on. Renames the
// library detects keep both paths in a single entry.
func (r *Repository) DiffAgainstFirstParent(ctx context.Context, c *object.Commit) ([]FileDiff, error) {
	parent, err := c.Parent(0)
	if err != nil {
		return nil, err
	}
	parentTree, err := parent.Tree()
	if err != nil {
		return nil, err
	}
	tree, err := c.Tree()
	if err != nil {
		return nil, err
	}
	return diffTrees(ctx, parentTree, tree)
}

// DiffAgainstEmptyTree diffs a commit against the empty tree, the only
// comparison a root commit admits. Every entry comes out as an addition, in
// snapshot enumeration order.
func (r *Repository) DiffAgainstEmptyTree(ctx context.Context, c *object.Commit) ([]FileDiff, error) {
	tree, err := c.Tree()
	if err != nil {
		return nil, err
	}
	return diffTrees(ctx, &object.Tree{}, tree)
}

func diffTrees(ctx context.Context, from, to *object.Tree) ([]FileDiff, error) {
	changes, err := object.DiffTreeWithOptions(ctx, from, to, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, err
	}
	patch, err := changes.PatchContext(ctx)
	if err != nil {
		return nil, err
	}
	return fileDiffs(patch.FilePatches()), nil
}

func fileDiffs(patches []fdiff.FilePatch) []FileDiff {
	diffs := make([]FileDiff, 0, len(patches))
	for _, fp := range patches {
		var d FileDiff
		from, to := fp.Files()
		if from != nil {
			d.FromPath = from.Path()
		}
		if to != nil {
			d.ToPath = to.Path()
		}
		if !fp.IsBinary() {
			stats := countLines(fp.Chunks())
			d.Stats = &stats
		}
		d.Body = encodeFilePatch(fp)
		diffs = append(diffs, d)
	}
	return diffs
}

// countLines tallies added and deleted lines across a patch's chunks. A
// chunk that does not end in a newline still counts its trailing line.
func countLines(chunks []fdiff.Chunk) LineStats {
	var stats LineStats
	for _, chunk := range chunks {
		content := chunk.Content()
		if len(content) == 0 {
			continue
		}
		lines := strings.Count(content, "\n")
		if content[len(content)-1] != '\n' {
			lines++
		}
		switch chunk.Type() {
		case fdiff.Add:
			stats.Insertions += lines
		case fdiff.Delete:
			stats.Deletions += lines
		}
	}
	return stats
}

// singlePatch adapts one file patch to the diff.Patch interface so the
// unified encoder can render it in isolation.
type singlePatch struct {
	fp fdiff.FilePatch
}

func (p singlePatch) FilePatches() []fdiff.FilePatch { return []fdiff.FilePatch{p.fp} }
func (p singlePatch) Message() string                { return "" }

// encodeFilePatch renders one file's unified diff hunks. Byte sequences that
// are not valid UTF-8 are replaced with U+FFFD instead of failing the entry.
func encodeFilePatch(fp fdiff.FilePatch) string {
	var buf bytes.Buffer
	if err := fdiff.NewUnifiedEncoder(&buf, fdiff.DefaultContextLines).Encode(singlePatch{fp}); err != nil {
		return ""
	}
	return strings.ToValidUTF8(buf.String(), "�")
}
