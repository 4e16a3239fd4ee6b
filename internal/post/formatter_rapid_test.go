package post

import (
	"regexp"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// --- Property Tests ---

var filenameShape = regexp.MustCompile(`^\d{8}_[a-z0-9_]+\.md$`)

func TestRapidFilename_AlwaysSafe(t *testing.T) {
	f := NewFormatter(Meta{})

	rapid.Check(t, func(t *rapid.T) {
		title := rapid.String().Draw(t, "title")

		name := f.FilenameFromTitle(title)

		if !filenameShape.MatchString(name) {
			t.Fatalf("FilenameFromTitle(%q) = %q, not a safe dated name", title, name)
		}
		if strings.ContainsAny(name, "/\\ ") {
			t.Fatalf("FilenameFromTitle(%q) = %q contains separators", title, name)
		}
	})
}

func TestRapidFormat_AlwaysWellFormed(t *testing.T) {
	f := NewFormatter(Meta{})

	rapid.Check(t, func(t *rapid.T) {
		title := rapid.StringMatching(`[A-Za-z][A-Za-z0-9 ]{0,40}`).Draw(t, "title")
		body := rapid.String().Draw(t, "body")

		doc := f.Format(title, body)

		if !strings.HasPrefix(doc, "---\n") {
			t.Fatalf("document missing front matter opener:\n%s", doc)
		}
		if strings.Count(doc, "---\n") < 2 {
			t.Fatalf("document missing front matter closer:\n%s", doc)
		}
		if !strings.HasSuffix(doc, "\n") {
			t.Fatalf("document does not end with a newline")
		}
	})
}
