// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"goaltask/internal/config"
	"goaltask/internal/service"
)

// FormatGoal formats one candidate goal.
// Format: "{N:>4}  {GOAL}\n" (4-wide right-aligned number, two spaces, goal)
func FormatGoal(w io.Writer, num int, goal string) {
	fmt.Fprintf(w, "%4d  %s\n", num, normalizeText(goal))
}

// FormatDraft formats a drafted task on two labelled lines.
func FormatDraft(w io.Writer, d service.Draft) {
	fmt.Fprintf(w, "title:       %s\n", normalizeText(d.Title))
	fmt.Fprintf(w, "description: %s\n", normalizeText(d.Description))
}

// FormatCreated formats the summary line of a successful run.
func FormatCreated(w io.Writer, id string, d service.Draft) {
	fmt.Fprintf(w, "created task %s: %s\n", id, normalizeText(d.Title))
}

// FormatSchemaField formats one destination field as
// "{NAME} ({TYPE})" followed by ": opt1, opt2" for choice fields.
func FormatSchemaField(w io.Writer, f service.SchemaField) {
	line := fmt.Sprintf("%s (%s)", normalizeText(f.Name), f.RawType)
	if len(f.Options) > 0 {
		line += ": " + strings.Join(f.Options, ", ")
	}
	fmt.Fprintln(w, line)
}

// FormatSetting formats one setting's status for the check command.
func FormatSetting(w io.Writer, s config.Setting) {
	status := "ok"
	if !s.OK {
		status = "not configured"
	}
	fmt.Fprintf(w, "%-18s %s\n", s.Name, status)
}

// normalizeText makes a value printable on one line.
// - Newlines are replaced with spaces
// - Empty or whitespace-only values become "(untitled)"
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	if strings.TrimSpace(s) == "" {
		return "(untitled)"
	}
	return s
}
