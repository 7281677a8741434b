package view

import (
	"regexp"
	"strings"

	"proctrace/internal/buffer"
	"proctrace/internal/session"
)

// Matcher matches a user-typed pattern against line text. The pattern is
// compiled as a regular expression; if compilation fails (the user is
// often mid-keystroke inside an unbalanced group) it degrades to a literal
// substring match instead of surfacing an error.
type Matcher struct {
	literal string
	re      *regexp.Regexp
}

// NewMatcher compiles a pattern. An empty pattern matches every line.
func NewMatcher(pattern string) Matcher {
	if pattern == "" {
		return Matcher{}
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Matcher{literal: pattern}
	}
	return Matcher{re: re}
}

// Empty reports whether the matcher applies no filtering at all.
func (m Matcher) Empty() bool {
	return m.re == nil && m.literal == ""
}

// Match reports whether text satisfies the pattern.
func (m Matcher) Match(text string) bool {
	switch {
	case m.Empty():
		return true
	case m.re != nil:
		return m.re.MatchString(text)
	default:
		return strings.Contains(text, m.literal)
	}
}

// Spans returns the matched byte ranges within text, ordered and
// non-overlapping, for highlight rendering.
func (m Matcher) Spans(text string) [][2]int {
	switch {
	case m.Empty():
		return nil
	case m.re != nil:
		locs := m.re.FindAllStringIndex(text, -1)
		spans := make([][2]int, 0, len(locs))
		for _, loc := range locs {
			if len(loc) == 2 && loc[1] > loc[0] {
				spans = append(spans, [2]int{loc[0], loc[1]})
			}
		}
		return spans
	default:
		var spans [][2]int
		for from := 0; ; {
			idx := strings.Index(text[from:], m.literal)
			if idx < 0 {
				return spans
			}
			start := from + idx
			spans = append(spans, [2]int{start, start + len(m.literal)})
			from = start + len(m.literal)
		}
	}
}

// Apply derives the displayed line subset from a buffer snapshot. Filter
// and search modes keep only lines matching their pattern, preserving
// buffer order; interactive mode passes the snapshot through unchanged.
func Apply(snapshot []buffer.OutputLine, mode session.Mode, filterPattern, searchPattern string) []buffer.OutputLine {
	var pattern string
	switch mode {
	case session.ModeFilter:
		pattern = filterPattern
	case session.ModeSearch:
		pattern = searchPattern
	default:
		return snapshot
	}

	matcher := NewMatcher(pattern)
	if matcher.Empty() {
		return snapshot
	}

	out := make([]buffer.OutputLine, 0, len(snapshot))
	for _, line := range snapshot {
		if matcher.Match(line.Text) {
			out = append(out, line)
		}
	}
	return out
}
