// Package toc regenerates the delimited table-of-contents block at the top
// of a Markdown wiki page.
package toc

import (
	"regexp"
	"strings"
)

var (
	// levelPattern matches the leading '#' run of a heading line
	levelPattern = regexp.MustCompile(`^(#+)\s`)

	// namePattern extracts the section name, trailing whitespace excluded
	namePattern = regexp.MustCompile(`^#+\s+(.*?)\s*$`)
)

// fenceMarker opens and closes verbatim regions. Only the first three
// characters of a line are significant, matching how fenced code blocks are
// written in practice.
const fenceMarker = "```"

// Level returns the nesting level of a heading line: the length of its
// leading '#' run. Lines that do not start with a '#' run followed by
// whitespace have level 0.
func Level(line string) int {
	m := levelPattern.FindStringSubmatch(line)
	if m == nil {
		return 0
	}
	return len(m[1])
}

// Name returns the section name of a heading line. ok is false when the line
// has a '#' prefix but no extractable name.
func Name(line string) (name string, ok bool) {
	m := namePattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func isFence(line string) bool {
	return strings.HasPrefix(line, fenceMarker)
}
