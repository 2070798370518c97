package chatgpt

import (
	"strings"

	"github.com/tidwall/gjson"

	"goaltask/internal/service"
)

// Stage reports which parser produced a draft.
type Stage string

const (
	StageJSON     Stage = "json"
	StageLines    Stage = "lines"
	StageDefaults Stage = "defaults"
)

// ParseReply turns a completion reply into a draft. The reply is unwrapped
// from a code fence, then parsed as a JSON object; if that fails, lines
// mentioning "title" or "description" are scanned instead. Missing fields
// keep their defaults. ParseReply never fails.
func ParseReply(reply string) (service.Draft, Stage) {
	text := stripFence(reply)
	if d, ok := parseJSON(text); ok {
		return d, StageJSON
	}
	if d, ok := parseLines(text); ok {
		return d, StageLines
	}
	return service.DefaultDraft(), StageDefaults
}

// stripFence returns the text between the first pair of ``` fences,
// dropping an optional json tag. Unfenced text is only trimmed.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	inner := strings.TrimPrefix(s[3:], "json")
	if end := strings.Index(inner, "```"); end >= 0 {
		inner = inner[:end]
	}
	return strings.TrimSpace(inner)
}

// parseJSON reports false only when s is not valid JSON. Valid JSON that is
// not an object yields the default draft.
func parseJSON(s string) (service.Draft, bool) {
	if !gjson.Valid(s) {
		return service.Draft{}, false
	}
	d := service.DefaultDraft()
	doc := gjson.Parse(s)
	if !doc.IsObject() {
		return d, true
	}
	if v := doc.Get("title"); v.Exists() && v.Type != gjson.Null {
		d.Title = v.String()
	}
	if v := doc.Get("description"); v.Exists() && v.Type != gjson.Null {
		d.Description = v.String()
	}
	return d, true
}

// parseLines takes the text after the last colon of the last line mentioning
// each key. A line mentioning both keys counts as a title line.
func parseLines(s string) (service.Draft, bool) {
	d := service.DefaultDraft()
	found := false
	for _, line := range strings.Split(s, "\n") {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "title"):
			if v := afterLastColon(line); v != "" {
				d.Title = v
				found = true
			}
		case strings.Contains(lower, "description"):
			if v := afterLastColon(line); v != "" {
				d.Description = v
				found = true
			}
		}
	}
	return d, found
}

func afterLastColon(line string) string {
	i := strings.LastIndex(line, ":")
	if i < 0 {
		return ""
	}
	v := strings.TrimSpace(line[i+1:])
	v = strings.TrimSuffix(v, ",")
	return strings.TrimSpace(strings.Trim(v, `"`))
}
