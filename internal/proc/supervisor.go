package proc

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"proctrace/internal/buffer"
)

// Supervisor owns a traced child process: it launches the command with all
// three standard streams piped (no shared console with the parent), feeds
// stdout and stderr into the line buffer from background readers, and
// guarantees termination is safe to request at any time.
type Supervisor struct {
	cmd      *exec.Cmd
	stdin    io.WriteCloser
	done     chan struct{}
	exitErr  error
	killOnce sync.Once
}

// Start launches command and begins streaming its output into buf. One
// goroutine per output pipe appends timestamped lines under the buffer
// lock; a third waits for both readers to drain before reaping the child.
func Start(command string, args []string, buf *buffer.LineBuffer) (*Supervisor, error) {
	cmd := exec.Command(command, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("spawn %s: %w", command, err)
	}

	s := &Supervisor{
		cmd:   cmd,
		stdin: stdin,
		done:  make(chan struct{}),
	}

	var readers sync.WaitGroup
	readers.Add(2)
	go readLines(stdout, buffer.StreamStdout, buf, &readers)
	go readLines(stderr, buffer.StreamStderr, buf, &readers)

	go func() {
		readers.Wait()
		s.exitErr = cmd.Wait()
		close(s.done)
	}()

	return s, nil
}

// readLines must never stop consuming the pipe before EOF: an abandoned
// pipe blocks the child mid-write and it can never exit. Lines of any
// length are read whole, and read errors are surfaced into the buffer the
// same way tail errors are.
func readLines(r io.Reader, stream buffer.Stream, buf *buffer.LineBuffer, wg *sync.WaitGroup) {
	defer wg.Done()
	br := bufio.NewReaderSize(r, 64*1024)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			buf.AppendText(stream, strings.TrimRight(line, "\r\n"))
		}
		if err != nil {
			if err != io.EOF {
				buf.AppendText(stream, fmt.Sprintf("read %s: %v", stream, err))
			}
			return
		}
	}
}

// HasExited reports whether the child has been reaped. Once true, no more
// lines will be appended to the buffer.
func (s *Supervisor) HasExited() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the child exits and returns its exit error, if any.
func (s *Supervisor) Wait() error {
	<-s.done
	return s.exitErr
}

// Write forwards text to the child's standard input.
func (s *Supervisor) Write(text string) error {
	if _, err := io.WriteString(s.stdin, text); err != nil {
		return fmt.Errorf("write stdin: %w", err)
	}
	return nil
}

// Terminate force-kills the child. It is idempotent and safe to call after
// the process has already exited; every session exit path calls it.
func (s *Supervisor) Terminate() {
	s.killOnce.Do(func() {
		_ = s.stdin.Close()
		if s.cmd.Process != nil {
			// Kill on an already-exited process returns an error we
			// deliberately ignore.
			_ = s.cmd.Process.Kill()
		}
	})
}
