package toc

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	// punctStripper removes the characters both wiki flavours drop from
	// anchors. '/' is handled separately because the flavours disagree.
	punctStripper = strings.NewReplacer(
		"`", "", "(", "", ")", "", ".", "",
		"#", "", ":", "", ",", "", ";", "",
		"<", "", ">", "", "+", "", "=", "",
		"?", "", "@", "",
	)

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Anchor derives the URL fragment identifier for a heading line. The mapping
// is a pure function of the line and the flavour: duplicate headings yield
// duplicate anchors, and no uniqueness is enforced.
//
// GitHub wiki anchors drop '/' and are lower-cased. Codebase anchors turn
// '/' into '-', keep case, and escape apostrophes as "-and-39-" (a Codebase
// platform quirk, preserved verbatim for link compatibility).
func Anchor(line string, codebase bool) string {
	s := punctStripper.Replace(line)
	if codebase {
		s = strings.ReplaceAll(s, "/", "-")
	} else {
		s = strings.ReplaceAll(s, "/", "")
	}
	s = strings.TrimLeft(s, " ")
	s = strings.TrimRight(s, "\n")
	s = strings.TrimRight(s, " ")
	s = whitespaceRun.ReplaceAllString(s, "-")
	if codebase {
		s = strings.ReplaceAll(s, "'", "-and-39-")
	} else {
		s = strings.ToLower(s)
	}
	return "#" + url.QueryEscape(s)
}
