package toc

import "testing"

func TestAnchorWiki(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "parenthesised counter",
			line: "## Example (1)\n",
			want: "#example-1",
		},
		{
			name: "slash removed",
			line: "## A/B\n",
			want: "#ab",
		},
		{
			name: "inline code stripped",
			line: "## The `main` function\n",
			want: "#the-main-function",
		},
		{
			name: "punctuation stripped",
			line: "### C++ <T>: a=b?\n",
			want: "#c-t-ab",
		},
		{
			name: "apostrophe percent-encoded",
			line: "## Alice's law\n",
			want: "#alice%27s-law",
		},
		{
			name: "non-ascii percent-encoded",
			line: "## Café\n",
			want: "#caf%C3%A9",
		},
		{
			name: "interior whitespace collapsed",
			line: "##  Spaced   out \n",
			want: "#spaced-out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Anchor(tt.line, false); got != tt.want {
				t.Errorf("Anchor(%q, false) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestAnchorCodebase(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "case preserved",
			line: "## Example (1)\n",
			want: "#Example-1",
		},
		{
			name: "slash becomes hyphen",
			line: "## A/B\n",
			want: "#A-B",
		},
		{
			name: "apostrophe escape quirk",
			line: "## Alice's law\n",
			want: "#Alice-and-39-s-law",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Anchor(tt.line, true); got != tt.want {
				t.Errorf("Anchor(%q, true) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestAnchorDeterministic(t *testing.T) {
	// Identical headings collide by design: the anchor depends only on the
	// text and the flavour, never on document position.
	line := "## Overview\n"
	if a, b := Anchor(line, false), Anchor(line, false); a != b {
		t.Errorf("Anchor not deterministic: %q vs %q", a, b)
	}
}
