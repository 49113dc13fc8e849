package toc

import "strings"

// DefaultMaxLevel is the deepest section level included in a TOC unless
// configured otherwise.
const DefaultMaxLevel = 5

// Inline error markers emitted in place of a normal entry. Anomalies are
// absorbed into the generated text rather than aborting the run.
const (
	errNameExtraction = "ERROR: Section name extraction"
	errH1NotAllowed   = "ERROR: h1 sections are not allowed"
)

// Options select the anchor flavour and the range of section levels that
// appear in the TOC.
type Options struct {
	// Codebase selects Codebase-flavoured anchors instead of GitHub wiki ones.
	Codebase bool

	// AllowH1 makes level-one sections the top nesting tier. When false a
	// level-one heading produces an inline error entry.
	AllowH1 bool

	// MaxLevel is the deepest section level included in the TOC.
	MaxLevel int
}

// Entry renders the TOC list item for one heading line, indented two spaces
// per nesting tier. A heading whose name cannot be extracted, or a level-one
// heading while AllowH1 is off, yields an inline error marker instead.
func Entry(line string, opts Options) string {
	name, ok := Name(line)
	if !ok {
		name = errNameExtraction
	}

	depth := Level(line) - 2
	if opts.AllowH1 {
		depth = Level(line) - 1
	}
	if depth < 0 {
		return errH1NotAllowed
	}

	return strings.Repeat("  ", depth) + "* [" + name + "](" + Anchor(line, opts.Codebase) + ")"
}
