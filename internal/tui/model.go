package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"proctrace/internal/buffer"
	"proctrace/internal/config"
	"proctrace/internal/session"
	"proctrace/internal/view"
)

// Child is the traced target whose output fills the buffer: a supervised
// process, or a tailed file when attached with -f.
type Child interface {
	HasExited() bool
	Write(text string) error
	Terminate()
}

// ModelConfig wires the line buffer and the traced target into the UI.
type ModelConfig struct {
	Buffer  *buffer.LineBuffer
	Child   Child
	Profile config.Profile
}

// Model is the foreground loop: every tick it re-derives the view from a
// buffer snapshot and redraws; key messages mutate the session state or
// are forwarded to the child. SessionState and the derived view are owned
// here exclusively; the buffer mutex is the only shared boundary with the
// background readers.
type Model struct {
	cfg      ModelConfig
	state    *session.State
	theme    Theme
	viewport viewport.Model
	interval time.Duration
	view     []buffer.OutputLine
	notice   string
	width    int
	height   int
	ready    bool
}

type tickMsg time.Time

const gutterFormat = "15:04:05"

// NewModel returns a configured tracer model in filter mode.
func NewModel(cfg ModelConfig) Model {
	return Model{
		cfg:      cfg,
		state:    session.NewState(),
		theme:    themeByName(cfg.Profile.Theme),
		viewport: viewport.New(80, 22),
		interval: cfg.Profile.RefreshInterval(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// tick bounds redraw latency: new output appears within one interval even
// when no key is pressed.
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width, 1)
		// Row 0 is the status bar, the final row the help bar.
		m.viewport.Height = max(msg.Height-2, 1)
		m.ready = true
		m.refresh()
		return m, nil

	case tickMsg:
		if m.state.QuitRequested {
			return m, tea.Quit
		}
		if m.cfg.Child != nil && m.cfg.Child.HasExited() {
			return m, tea.Quit
		}
		m.refresh()
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.state.RequestQuit()
		return m, tea.Quit
	case "ctrl+f":
		m.state.EnterFilter()
	case "ctrl+s":
		m.state.EnterSearch()
	case "tab", "ctrl+i": // terminals report Ctrl+I as Tab
		m.state.EnterInteractive()
	case "esc":
		m.state.ClearPattern()
	case "backspace":
		if m.state.Mode == session.ModeInteractive {
			m.forward("\b")
		} else {
			m.state.Backspace()
		}
	case "up":
		m.state.ScrollBy(-1, len(m.view), m.viewport.Height)
	case "down":
		m.state.ScrollBy(1, len(m.view), m.viewport.Height)
	default:
		if m.state.Mode == session.ModeInteractive {
			m.forwardKey(msg)
		} else if text := typedText(msg); text != "" {
			m.state.Append(text)
		}
	}
	m.refresh()
	return m, nil
}

// typedText extracts the printable text of a keypress, empty for keys that
// carry none.
func typedText(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyRunes:
		return string(msg.Runes)
	case tea.KeySpace:
		return " "
	default:
		return ""
	}
}

// forwardKey sends a keystroke to the child's stdin. Enter becomes a
// newline and unrecognized Ctrl chords their control byte; keys the
// terminal reports without a character are dropped.
func (m *Model) forwardKey(msg tea.KeyMsg) {
	var text string
	switch msg.Type {
	case tea.KeyRunes:
		text = string(msg.Runes)
	case tea.KeySpace:
		text = " "
	case tea.KeyEnter:
		text = "\n"
	default:
		s := msg.String()
		if len(s) == 6 && strings.HasPrefix(s, "ctrl+") {
			if c := s[5]; c >= 'a' && c <= 'z' {
				text = string(rune(c - 'a' + 1))
			}
		}
	}
	if text != "" {
		m.forward(text)
	}
}

func (m *Model) forward(text string) {
	if m.cfg.Child == nil {
		return
	}
	if err := m.cfg.Child.Write(text); err != nil {
		m.notice = err.Error()
	}
}

// refresh re-derives the view from a fresh buffer snapshot, clamps the
// scroll offset against the (possibly shrunken) view, and repaints the
// viewport content.
func (m *Model) refresh() {
	snapshot := m.cfg.Buffer.Snapshot()
	m.view = view.Apply(snapshot, m.state.Mode, m.state.FilterPattern, m.state.SearchPattern)
	m.state.ClampScroll(len(m.view), m.viewport.Height)
	m.viewport.SetContent(m.renderLines())
	m.viewport.SetYOffset(m.state.ScrollOffset)
}

func (m Model) renderLines() string {
	if len(m.view) == 0 {
		if m.state.ActivePattern() != "" {
			return m.theme.HelpBar.Render("no lines match the pattern")
		}
		return m.theme.HelpBar.Render("awaiting output…")
	}
	matcher := view.Matcher{}
	if m.state.Mode != session.ModeInteractive {
		matcher = view.NewMatcher(m.state.ActivePattern())
	}
	rows := make([]string, 0, len(m.view))
	for _, line := range m.view {
		rows = append(rows, m.renderLine(line, matcher))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderLine(line buffer.OutputLine, matcher view.Matcher) string {
	gutter := line.Timestamp.Format(gutterFormat) + " "
	avail := m.viewport.Width - len(gutter)
	if avail < 1 {
		avail = 1
	}
	// Truncation counts display cells, not runes: wide characters must not
	// overflow the row.
	text := runewidth.Truncate(line.Text, avail, "")

	base := m.theme.Stdout
	if line.Stream == buffer.StreamStderr {
		base = m.theme.Stderr
	}

	var body string
	if matcher.Empty() {
		body = base.Render(text)
	} else {
		var b strings.Builder
		for _, frag := range view.SplitFragments(text, matcher.Spans(text)) {
			if frag.Match {
				b.WriteString(m.theme.Match.Render(frag.Text))
			} else {
				b.WriteString(base.Render(frag.Text))
			}
		}
		body = b.String()
	}

	row := m.theme.Timestamp.Render(gutter) + body
	if pad := m.viewport.Width - len(gutter) - lipgloss.Width(body); pad > 0 {
		row += strings.Repeat(" ", pad)
	}
	return row
}

func (m Model) View() string {
	if !m.ready {
		return "starting…"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderStatus(),
		m.viewport.View(),
		m.renderHelp(),
	)
}

func (m Model) renderStatus() string {
	// The caret marks where typing lands, standing in for the terminal
	// cursor across full-screen repaints.
	const caret = "▎"
	filter := m.state.FilterPattern
	search := m.state.SearchPattern
	switch m.state.Mode {
	case session.ModeFilter:
		filter += caret
	case session.ModeSearch:
		search += caret
	}

	parts := []string{
		strings.ToUpper(m.state.Mode.String()),
		"filter:" + filter,
		"search:" + search,
		fmt.Sprintf("%s lines", humanize.Comma(int64(m.cfg.Buffer.Len()))),
	}
	content := strings.Join(parts, "  ·  ")
	if m.notice != "" {
		content += "  ·  " + m.notice
	}
	// Keep the bar to one row: a long pattern or notice would otherwise
	// wrap and push the help bar off-screen.
	width := max(m.width, 1)
	if avail := width - m.theme.StatusBar.GetHorizontalFrameSize(); avail > 0 {
		content = runewidth.Truncate(content, avail, "…")
	}
	return m.theme.StatusBar.Width(width).Render(content)
}

func (m Model) renderHelp() string {
	help := "ctrl+f filter · ctrl+s search · ctrl+i interactive · esc clear · ↑/↓ scroll · ctrl+c quit"
	return m.theme.HelpBar.Render(help)
}

