package watch

import (
	"errors"
	"fmt"
	"sync"

	"github.com/nxadm/tail"

	"proctrace/internal/buffer"
)

// ErrNoStdin is returned for interactive-mode keystrokes when the traced
// target is a file rather than a process.
var ErrNoStdin = errors.New("no stdin: tracing a file, not a process")

// Tailer streams lines appended to a file into the line buffer. It stands
// in for the process supervisor when the session attaches to a growing
// file instead of spawning a command.
type Tailer struct {
	tail     *tail.Tail
	done     chan struct{}
	stopOnce sync.Once
}

// Attach starts following path. Polling is used so the tailer behaves the
// same on filesystems without inotify support.
func Attach(path string, buf *buffer.LineBuffer) (*Tailer, error) {
	cfg := tail.Config{
		Follow:    true,
		ReOpen:    true,
		Poll:      true,
		MustExist: true,
		Logger:    tail.DiscardingLogger,
	}
	t, err := tail.TailFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("tail %s: %w", path, err)
	}

	tl := &Tailer{tail: t, done: make(chan struct{})}
	go func() {
		defer close(tl.done)
		for line := range t.Lines {
			if line.Err != nil {
				buf.AppendText(buffer.StreamFile, fmt.Sprintf("tail error: %v", line.Err))
				continue
			}
			buf.AppendText(buffer.StreamFile, line.Text)
		}
	}()
	return tl, nil
}

// HasExited reports whether the tail stream has been stopped.
func (t *Tailer) HasExited() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Write rejects input: a file has no stdin to forward to.
func (t *Tailer) Write(string) error {
	return ErrNoStdin
}

// Terminate stops following the file. Idempotent.
func (t *Tailer) Terminate() {
	t.stopOnce.Do(func() {
		_ = t.tail.Stop()
		t.tail.Cleanup()
	})
}
