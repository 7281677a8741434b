package view

// Fragment is a run of line text with a match flag, used by the renderer
// to emphasize the parts of a line the active pattern matched.
type Fragment struct {
	Text  string
	Match bool
}

// SplitFragments cuts line into fragments along the given spans. Spans are
// expected ordered and non-overlapping (as produced by Matcher.Spans);
// out-of-range values are clamped. Adjacent fragments with the same flag
// are merged so styling does not restart mid-run.
func SplitFragments(line string, spans [][2]int) []Fragment {
	if len(spans) == 0 {
		return []Fragment{{Text: line}}
	}

	fragments := make([]Fragment, 0, len(spans)*2+1)
	cursor := 0
	for _, span := range spans {
		start := clamp(span[0], cursor, len(line))
		end := clamp(span[1], start, len(line))
		if start > cursor {
			fragments = appendFragment(fragments, Fragment{Text: line[cursor:start]})
		}
		if end > start {
			fragments = appendFragment(fragments, Fragment{Text: line[start:end], Match: true})
		}
		cursor = end
	}
	if cursor < len(line) {
		fragments = appendFragment(fragments, Fragment{Text: line[cursor:]})
	}
	return fragments
}

func appendFragment(list []Fragment, frag Fragment) []Fragment {
	if frag.Text == "" {
		return list
	}
	if len(list) > 0 {
		last := &list[len(list)-1]
		if last.Match == frag.Match {
			last.Text += frag.Text
			return list
		}
	}
	return append(list, frag)
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
