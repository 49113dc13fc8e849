package toc

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Marker delimits the TOC block. The first line of the file must contain it
// for the file to be processed at all, and it must recur on a later line to
// close the old block.
const Marker = "<!--TOC-->"

// Outcome reports what Rewrite did with a file.
type Outcome int

const (
	// Unchanged means the file was left byte-for-byte intact: no opening
	// marker, no closing marker, or no eligible heading in the body.
	Unchanged Outcome = iota

	// Rewritten means the file was overwritten with a fresh TOC block.
	Rewritten
)

func (o Outcome) String() string {
	if o == Rewritten {
		return "rewritten"
	}
	return "unchanged"
}

// Result describes one Rewrite run.
type Result struct {
	Outcome Outcome
	Entries int
}

// Rewrite regenerates the TOC block of the file at path.
//
// The file is read in full, the region between the two marker lines is
// discarded, and the remainder is scanned for headings. Lines inside fenced
// code blocks are ignored; an unterminated fence suppresses heading
// detection for the rest of the file. Headings deeper than opts.MaxLevel are
// left out entirely.
//
// When at least one entry was collected the file is overwritten with the new
// block followed by the untouched body. With zero entries the file is left
// alone even if the old block held stale entries; a TOC cannot be emptied
// this way.
//
// Only an unreadable or unwritable file is an error. A missing marker is a
// silent no-op reported as Unchanged.
func Rewrite(path string, opts Options) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}

	r := bufio.NewReader(bytes.NewReader(data))

	line, _ := r.ReadString('\n')
	if !strings.Contains(line, Marker) {
		return Result{}, nil
	}

	// Skip the old TOC up to the closing marker.
	closed := false
	for {
		var err error
		line, err = r.ReadString('\n')
		if line != "" && strings.Contains(line, Marker) {
			closed = true
			break
		}
		if err != nil {
			break
		}
	}
	if !closed {
		return Result{}, nil
	}

	// Scan the body, holding it verbatim for the rewrite while collecting
	// TOC entries from heading lines outside fenced code blocks.
	var (
		body     strings.Builder
		entries  strings.Builder
		count    int
		verbatim bool
	)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			body.WriteString(line)
			switch {
			case verbatim:
				if isFence(line) {
					verbatim = false
				}
			case isFence(line):
				verbatim = true
			case strings.HasPrefix(line, "#") && Level(line) <= opts.MaxLevel:
				entries.WriteString(Entry(line, opts))
				entries.WriteByte('\n')
				count++
			}
		}
		if err != nil {
			break
		}
	}

	if count == 0 {
		return Result{}, nil
	}

	var out strings.Builder
	out.WriteString(Marker + "\n\n# Table of Contents\n")
	out.WriteString(entries.String())
	out.WriteString("\n" + Marker + "\n")
	out.WriteString(body.String())

	if err := os.WriteFile(path, []byte(out.String()), 0o644); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", path, err)
	}
	return Result{Outcome: Rewritten, Entries: count}, nil
}
