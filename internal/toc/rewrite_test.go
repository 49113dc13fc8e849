package toc

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestRewriteUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "no marker on first line",
			content: "# A page\n\n## Section\n",
		},
		{
			name:    "marker on later line only",
			content: "intro\n<!--TOC-->\n## Section\n",
		},
		{
			name:    "no closing marker",
			content: "<!--TOC-->\n* [old](#old)\n## Section\n",
		},
		{
			name:    "no headings in body",
			content: "<!--TOC-->\n* [stale](#stale)\n<!--TOC-->\nplain text\n",
		},
		{
			name:    "all headings above max level",
			content: "<!--TOC-->\n<!--TOC-->\n###### Six deep\n",
		},
		{
			name:    "headings only inside fences",
			content: "<!--TOC-->\n<!--TOC-->\n```\n## Not a section\n```\n",
		},
		{
			name:    "unterminated fence swallows the rest",
			content: "<!--TOC-->\n<!--TOC-->\n```\n## Not a section\n",
		},
		{
			name:    "empty file",
			content: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)
			res, err := Rewrite(path, Options{MaxLevel: DefaultMaxLevel})
			if err != nil {
				t.Fatalf("Rewrite() error = %v", err)
			}
			if res.Outcome != Unchanged {
				t.Errorf("Outcome = %v, want Unchanged", res.Outcome)
			}
			if got := readFile(t, path); got != tt.content {
				t.Errorf("file modified:\ngot  %q\nwant %q", got, tt.content)
			}
		})
	}
}

func TestRewrite(t *testing.T) {
	content := "<!--TOC-->\nstale\n<!--TOC-->\nintro\n## Section One\ntext\n### Sub\n"
	path := writeFile(t, content)

	res, err := Rewrite(path, Options{MaxLevel: DefaultMaxLevel})
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	if res.Outcome != Rewritten {
		t.Fatalf("Outcome = %v, want Rewritten", res.Outcome)
	}
	if res.Entries != 2 {
		t.Errorf("Entries = %d, want 2", res.Entries)
	}

	want := "<!--TOC-->\n\n# Table of Contents\n" +
		"* [Section One](#section-one)\n" +
		"  * [Sub](#sub)\n" +
		"\n<!--TOC-->\n" +
		"intro\n## Section One\ntext\n### Sub\n"
	if got := readFile(t, path); got != want {
		t.Errorf("rewritten file:\ngot  %q\nwant %q", got, want)
	}
}

func TestRewriteFences(t *testing.T) {
	content := "<!--TOC-->\n<!--TOC-->\n## Real\n```sh\n## commented out\n```\n## Also real\n"
	path := writeFile(t, content)

	res, err := Rewrite(path, Options{MaxLevel: DefaultMaxLevel})
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	if res.Entries != 2 {
		t.Errorf("Entries = %d, want 2", res.Entries)
	}
}

func TestRewriteMaxLevel(t *testing.T) {
	content := "<!--TOC-->\n<!--TOC-->\n## Two\n### Three\n#### Four\n"
	path := writeFile(t, content)

	res, err := Rewrite(path, Options{MaxLevel: 3})
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	if res.Entries != 2 {
		t.Errorf("Entries = %d, want 2 (level four excluded)", res.Entries)
	}
}

func TestRewriteH1Error(t *testing.T) {
	// A level-one heading while h1 support is off becomes an inline error
	// line in the TOC; the run itself still succeeds.
	content := "<!--TOC-->\n<!--TOC-->\n# Top\n## Section\n"
	path := writeFile(t, content)

	res, err := Rewrite(path, Options{MaxLevel: DefaultMaxLevel})
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	if res.Outcome != Rewritten {
		t.Fatalf("Outcome = %v, want Rewritten", res.Outcome)
	}
	got := readFile(t, path)
	if !bytes.Contains([]byte(got), []byte("\nERROR: h1 sections are not allowed\n")) {
		t.Errorf("missing inline h1 error in:\n%s", got)
	}
}

func TestRewriteIdempotent(t *testing.T) {
	content := "<!--TOC-->\nold\n<!--TOC-->\n## Section One\n### Sub\ntext\n"
	path := writeFile(t, content)
	opts := Options{MaxLevel: DefaultMaxLevel}

	if _, err := Rewrite(path, opts); err != nil {
		t.Fatal(err)
	}
	first := readFile(t, path)

	res, err := Rewrite(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != Rewritten {
		t.Fatalf("Outcome = %v, want Rewritten", res.Outcome)
	}
	if second := readFile(t, path); second != first {
		t.Errorf("second run differs:\nfirst  %q\nsecond %q", first, second)
	}
}

var entryNamePattern = regexp.MustCompile(`\* \[(.*)\]\(#`)

// TestRewriteMatchesGoldmark cross-checks the line scanner against a real
// Markdown parser: every entry name in the generated block must be a heading
// goldmark finds in the body.
func TestRewriteMatchesGoldmark(t *testing.T) {
	body := "intro text\n## Section One\nsome prose\n### Sub Section\n```\n## fenced\n```\n## Wrap Up\n"
	path := writeFile(t, "<!--TOC-->\n<!--TOC-->\n"+body)

	if _, err := Rewrite(path, Options{MaxLevel: DefaultMaxLevel}); err != nil {
		t.Fatal(err)
	}

	headings := make(map[string]bool)
	src := []byte(body)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			var buf bytes.Buffer
			for c := h.FirstChild(); c != nil; c = c.NextSibling() {
				if tn, ok := c.(*ast.Text); ok {
					buf.Write(tn.Segment.Value(src))
				}
			}
			headings[buf.String()] = true
		}
		return ast.WalkContinue, nil
	})

	for _, m := range entryNamePattern.FindAllStringSubmatch(readFile(t, path), -1) {
		if !headings[m[1]] {
			t.Errorf("TOC entry %q has no matching heading in goldmark parse", m[1])
		}
	}
}
