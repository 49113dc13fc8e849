// Package report splits an aggregated CI configure log into per-component
// report files and records skipped components in a global report.
package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// configPattern matches the "Configuring <component>" boundary lines of
	// the aggregated log. The trailing word is the component name.
	configPattern = regexp.MustCompile(`^(.*Configuring (examples|demo|test)*( in )*(test/|examples/|demo/)*)(\w+)`)

	demoPattern     = regexp.MustCompile(`^.*in demo/`)
	examplesPattern = regexp.MustCompile(`^.*in examples/`)
)

const (
	separatorLine      = "------------------------------------------------------------------"
	cmakeResultsHeader = " --- CMake Results: ---\n"
)

// DefaultBranchFile is where the CI layout keeps the scm branch stamp,
// relative to the working directory the splitter runs in.
const DefaultBranchFile = "../../../../../.scm-branch"

// Splitter distributes the sections of one aggregated configure log into
// per-component report directories under the working directory.
type Splitter struct {
	// ReportName is the file name of each per-component report.
	ReportName string

	// GlobalPath is the global report that receives a "<name> r" marker for
	// every component whose configuration was skipped.
	GlobalPath string

	// BranchFile is the scm branch stamp copied into newly created reports.
	BranchFile string
}

// Summary describes one Process run.
type Summary struct {
	// Created lists components whose report directory was created and seeded.
	Created []string

	// Updated lists components whose report received CMake results.
	Updated []string

	// Skipped lists components marked 'r' in the global report.
	Skipped []string
}

// Process reads the aggregated log at inputPath and distributes its
// sections. Each "Configuring <name>" boundary closes the previous section:
// the buffered lines are inserted into the existing report of the previous
// component, under a CMake results header placed before the third separator
// line. A component seen for the first time gets its directory created and
// its report seeded with the branch stamp. Lines after the last boundary are
// discarded with the section left open; if that last component was newly
// created, it is marked skipped in the global report.
func (s *Splitter) Process(inputPath string) (Summary, error) {
	var sum Summary

	in, err := os.Open(inputPath)
	if err != nil {
		return sum, fmt.Errorf("open report: %w", err)
	}
	defer in.Close()

	global, err := os.OpenFile(s.GlobalPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return sum, fmt.Errorf("open global report: %w", err)
	}
	defer global.Close()

	var (
		name    string
		writing bool
		ignored bool
		pending []string
	)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		m := configPattern.FindStringSubmatch(line)
		if m != nil && strings.HasPrefix(m[5], "done") {
			// "Configuring done" progress lines are not boundaries.
			m = nil
		}

		if writing {
			if m != nil {
				writing = false
				if len(pending) > 0 {
					if err := s.flush(name, pending); err != nil {
						return sum, err
					}
					sum.Updated = append(sum.Updated, name)
					pending = nil
				}
				ignored = false
			} else if strings.TrimSpace(line) != "" {
				pending = append(pending, line+"\n")
			}
		}

		if !writing && m != nil {
			name = componentName(m[5], line)
			if name == "incomplete" {
				ignored = false
				continue
			}
			if fi, err := os.Stat(name); err != nil || !fi.IsDir() {
				ignored = true
				if err := s.seed(name); err != nil {
					return sum, err
				}
				sum.Created = append(sum.Created, name)
			} else {
				ignored = false
			}
			writing = true
		}
	}
	if err := scanner.Err(); err != nil {
		return sum, fmt.Errorf("read report: %w", err)
	}

	if writing && ignored {
		fmt.Fprintf(global, "%s r\n", name)
		sum.Skipped = append(sum.Skipped, name)
	}
	return sum, nil
}

// componentName derives the report directory name from the matched word and
// the boundary line it came from.
func componentName(name, line string) string {
	switch {
	case demoPattern.MatchString(line):
		name += "_Demo"
	case examplesPattern.MatchString(line):
		name += "_Examples"
	case name == "libCGAL":
		name = "libCGAL_shared"
	case name == "libCGAL_Core":
		name = "libCGALCore_shared"
	case name == "libCGAL_ImageIO":
		name = "libCGALimageIO_shared"
	case name == "libCGAL_Qt6":
		name = "libCGALQt6_shared"
	}
	return name
}

// seed creates the component directory and stamps its report with the scm
// branch file.
func (s *Splitter) seed(name string) error {
	if err := os.Mkdir(name, 0o755); err != nil {
		return fmt.Errorf("create component dir: %w", err)
	}
	stamp, err := os.ReadFile(s.BranchFile)
	if err != nil {
		return fmt.Errorf("read branch stamp: %w", err)
	}
	if err := os.WriteFile(filepath.Join(name, s.ReportName), stamp, 0o644); err != nil {
		return fmt.Errorf("seed component report: %w", err)
	}
	return nil
}

// flush inserts the buffered section into the component's existing report,
// under a CMake results header placed just before the third separator line.
func (s *Splitter) flush(name string, pending []string) error {
	path := filepath.Join(name, s.ReportName)

	var contents []string
	if b, err := os.ReadFile(path); err == nil {
		contents = splitLines(string(b))
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read component report: %w", err)
	}

	position := findThirdSeparator(contents) - 2
	if !containsLine(contents, "--- CMake Results: ---") {
		contents = insertAt(contents, position-1, []string{cmakeResultsHeader})
	}
	contents = insertAt(contents, position, pending)

	if err := os.WriteFile(path, []byte(strings.Join(contents, "")), 0o644); err != nil {
		return fmt.Errorf("write component report: %w", err)
	}
	return nil
}

// findThirdSeparator returns the insertion base for CMake results: two lines
// above the third separator, or the end of the report when there are fewer
// than three separators.
func findThirdSeparator(contents []string) int {
	count := 0
	for i, line := range contents {
		if strings.TrimSpace(line) == separatorLine {
			count++
			if count == 3 {
				return i - 2
			}
		}
	}
	return len(contents)
}

// insertAt splices lines into contents at idx, counting negative indices
// from the end and clamping to the slice bounds.
func insertAt(contents []string, idx int, lines []string) []string {
	if idx < 0 {
		idx += len(contents)
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(contents) {
		idx = len(contents)
	}
	out := make([]string, 0, len(contents)+len(lines))
	out = append(out, contents[:idx]...)
	out = append(out, lines...)
	out = append(out, contents[idx:]...)
	return out
}

// splitLines splits s into lines that keep their terminators, so the report
// can be written back byte-for-byte around the insertion.
func splitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

func containsLine(contents []string, line string) bool {
	for _, l := range contents {
		if l == line {
			return true
		}
	}
	return false
}
