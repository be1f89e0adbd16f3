// Package checklist reads markdown checkboxes ("- [ ] item") out of task
// descriptions so multi-step tasks can report progress.
package checklist

import (
	"regexp"
	"strings"
)

var (
	// groups: indent, state, text
	itemPattern   = regexp.MustCompile(`(?m)^([ \t]*)[-*] \[([ xX])\] (.+)$`)
	fencedPattern = regexp.MustCompile("(?s)```.*?```")
	inlinePattern = regexp.MustCompile("`[^`]+`")
)

// Item is one checkbox line.
type Item struct {
	Text    string
	Checked bool
	Depth   int // leading whitespace width
}

// Stats summarises a checklist. Progress is a percentage in [0, 100].
type Stats struct {
	Total     int
	Completed int
	Progress  int
}

// Parse returns the checkboxes of content in order. Checkboxes inside code
// spans or fenced blocks are ignored.
func Parse(content string) []Item {
	content = fencedPattern.ReplaceAllString(content, "")
	content = inlinePattern.ReplaceAllString(content, "")

	matches := itemPattern.FindAllStringSubmatch(content, -1)
	items := make([]Item, 0, len(matches))
	for _, m := range matches {
		items = append(items, Item{
			Text:    strings.TrimSpace(m[3]),
			Checked: m[2] != " ",
			Depth:   len(m[1]),
		})
	}
	return items
}

// Progress computes Stats for content. A description without checkboxes has Total 0.
func Progress(content string) Stats {
	items := Parse(content)
	s := Stats{Total: len(items)}
	if s.Total == 0 {
		return s
	}
	for _, it := range items {
		if it.Checked {
			s.Completed++
		}
	}
	s.Progress = s.Completed * 100 / s.Total
	return s
}

// Done reports whether content has at least one checkbox and all are checked.
func Done(content string) bool {
	s := Progress(content)
	return s.Total > 0 && s.Completed == s.Total
}
