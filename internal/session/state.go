package session

// Mode is the active input interpretation for keystrokes.
type Mode int

const (
	// ModeFilter live-filters the view as the pattern is typed.
	ModeFilter Mode = iota
	// ModeSearch matches the pattern against the full buffer.
	ModeSearch
	// ModeInteractive forwards keystrokes to the child's stdin.
	ModeInteractive
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeInteractive:
		return "interactive"
	default:
		return "filter"
	}
}

// State holds everything owned by the foreground loop: the current mode,
// the mutable pattern text for filter and search, the scroll position and
// the quit flag. It is never touched by the background readers, so it
// needs no locking.
type State struct {
	Mode          Mode
	FilterPattern string
	SearchPattern string
	ScrollOffset  int
	QuitRequested bool
}

// NewState starts a session in filter mode with empty patterns.
func NewState() *State {
	return &State{Mode: ModeFilter}
}

// EnterFilter switches to filter mode. The search pattern is cleared so
// only one pattern is ever live.
func (s *State) EnterFilter() {
	s.Mode = ModeFilter
	s.SearchPattern = ""
}

// EnterSearch switches to search mode and clears the filter pattern.
func (s *State) EnterSearch() {
	s.Mode = ModeSearch
	s.FilterPattern = ""
}

// EnterInteractive switches to interactive passthrough and clears both
// patterns.
func (s *State) EnterInteractive() {
	s.Mode = ModeInteractive
	s.FilterPattern = ""
	s.SearchPattern = ""
}

// RequestQuit marks the session for cooperative shutdown. It is terminal
// and independent of the current mode.
func (s *State) RequestQuit() {
	s.QuitRequested = true
}

// ActivePattern returns the pattern belonging to the current mode.
// Interactive mode has none.
func (s *State) ActivePattern() string {
	switch s.Mode {
	case ModeFilter:
		return s.FilterPattern
	case ModeSearch:
		return s.SearchPattern
	default:
		return ""
	}
}

// ClearPattern empties the active pattern without changing mode (Esc).
func (s *State) ClearPattern() {
	switch s.Mode {
	case ModeFilter:
		s.FilterPattern = ""
	case ModeSearch:
		s.SearchPattern = ""
	}
}

// Backspace removes the last rune of the active pattern.
func (s *State) Backspace() {
	switch s.Mode {
	case ModeFilter:
		s.FilterPattern = trimLastRune(s.FilterPattern)
	case ModeSearch:
		s.SearchPattern = trimLastRune(s.SearchPattern)
	}
}

// Append adds typed text to the end of the active pattern.
func (s *State) Append(text string) {
	switch s.Mode {
	case ModeFilter:
		s.FilterPattern += text
	case ModeSearch:
		s.SearchPattern += text
	}
}

// ScrollBy moves the scroll offset and clamps it against the current view.
func (s *State) ScrollBy(delta, viewLen, windowHeight int) {
	s.ScrollOffset += delta
	s.ClampScroll(viewLen, windowHeight)
}

// ClampScroll keeps the offset within [0, max(0, viewLen-windowHeight)].
// Called every frame because the view can shrink under the offset, e.g.
// when a narrow filter replaces interactive mode.
func (s *State) ClampScroll(viewLen, windowHeight int) {
	max := viewLen - windowHeight
	if max < 0 {
		max = 0
	}
	if s.ScrollOffset > max {
		s.ScrollOffset = max
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

func trimLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}
