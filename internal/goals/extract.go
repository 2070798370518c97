// Package goals turns flattened goal text into candidate goal lines and picks one.
package goals

import (
	"strings"
	"unicode/utf8"
)

// listMarkers are stripped from the start of a line, first match only.
var listMarkers = []string{"- ", "1. ", "☐ "}

// Extract returns the candidate goal lines of text, in order.
// Headings, short lines and bare list markers are dropped; at most one
// list marker is stripped per line. Lengths are counted in characters.
func Extract(text string) []string {
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || skipLine(line) {
			continue
		}

		for _, m := range listMarkers {
			if strings.HasPrefix(line, m) {
				line = line[len(m):]
				break
			}
		}

		if utf8.RuneCountInString(line) > 5 {
			out = append(out, line)
		}
	}
	return out
}

func skipLine(line string) bool {
	switch {
	case strings.HasPrefix(line, "#"):
		return true
	case utf8.RuneCountInString(line) < 5:
		return true
	case line == "-", line == "*":
		return true
	}
	return false
}
