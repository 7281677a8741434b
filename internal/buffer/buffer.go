package buffer

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Stream identifies which descriptor a line arrived on.
type Stream string

const (
	StreamStdout Stream = "stdout"
	StreamStderr Stream = "stderr"
	StreamFile   Stream = "file"
)

// OutputLine is a single captured line. Lines are immutable once appended;
// ordering is receipt order, which for interleaved stdout/stderr is not
// guaranteed to match the child's internal write order.
type OutputLine struct {
	Timestamp time.Time
	Stream    Stream
	Text      string
}

// LineBuffer is an append-only store of captured lines shared between the
// background stream readers and the foreground redraw loop. The mutex is
// the only shared-state boundary in the program: writers hold it for one
// append, readers for one snapshot copy.
type LineBuffer struct {
	mu    sync.Mutex
	lines []OutputLine
}

// New returns an empty buffer.
func New() *LineBuffer {
	return &LineBuffer{}
}

// Append stores a line at the end of the buffer.
func (b *LineBuffer) Append(line OutputLine) {
	b.mu.Lock()
	b.lines = append(b.lines, line)
	b.mu.Unlock()
}

// AppendText stamps text with the current wall-clock time and appends it.
func (b *LineBuffer) AppendText(stream Stream, text string) {
	b.Append(OutputLine{Timestamp: time.Now(), Stream: stream, Text: text})
}

// Snapshot returns a copy of the buffered lines in append order. The copy
// never observes a half-appended line and is safe to retain.
func (b *LineBuffer) Snapshot() []OutputLine {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]OutputLine, len(b.lines))
	copy(out, b.lines)
	return out
}

// Len returns the number of buffered lines.
func (b *LineBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}

// Flush writes every buffered line to w in original order, each prefixed
// with its capture timestamp. This is the session's final artifact.
func (b *LineBuffer) Flush(w io.Writer, timestampFormat string) error {
	for _, line := range b.Snapshot() {
		if _, err := fmt.Fprintf(w, "%s %s\n", line.Timestamp.Format(timestampFormat), line.Text); err != nil {
			return fmt.Errorf("flush buffer: %w", err)
		}
	}
	return nil
}
