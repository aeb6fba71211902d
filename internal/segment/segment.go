// Package segment partitions the raw minutes archive into candidate
// meeting records.
package segment

import "strings"

// DefaultMinLength is the noise threshold: pieces whose trimmed length
// is at or below it are dropped (stray delimiter fragments, page headers).
const DefaultMinLength = 50

// IsBoundary reports whether a line is a record separator: a run of three
// or more '*' or '-', or the literal token "Meeting:", alone on the line.
func IsBoundary(line string) bool {
	line = strings.TrimSpace(line)
	if line == "Meeting:" {
		return true
	}
	if len(line) < 3 {
		return false
	}
	mark := line[0]
	if mark != '*' && mark != '-' {
		return false
	}
	for i := 1; i < len(line); i++ {
		if line[i] != mark {
			return false
		}
	}
	return true
}

// Split partitions text into trimmed meeting-record candidates, in
// document order. Boundary lines are consumed; pieces with trimmed
// length <= minLength are dropped. minLength <= 0 uses DefaultMinLength.
//
// Input with no boundaries yields the whole trimmed text as a single
// piece (if long enough); consecutive boundaries yield nothing between
// them. Malformed or absent separators are never an error.
func Split(text string, minLength int) []string {
	if minLength <= 0 {
		minLength = DefaultMinLength
	}

	var pieces []string
	var current strings.Builder

	flush := func() {
		p := strings.TrimSpace(current.String())
		current.Reset()
		if len(p) > minLength {
			pieces = append(pieces, p)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if IsBoundary(line) {
			flush()
			continue
		}
		current.WriteString(line)
		current.WriteByte('\n')
	}
	flush()

	return pieces
}
