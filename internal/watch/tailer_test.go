package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"proctrace/internal/buffer"
)

func TestAttachStreamsAppendedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	if err := os.WriteFile(path, []byte("first\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	buf := buffer.New()
	tailer, err := Attach(path, buf)
	if err != nil {
		t.Fatalf("Attach() error: %v", err)
	}
	defer tailer.Terminate()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("second\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	deadline := time.Now().Add(10 * time.Second)
	for buf.Len() < 2 && time.Now().Before(deadline) {
		time.Sleep(25 * time.Millisecond)
	}

	snap := buf.Snapshot()
	if len(snap) < 2 {
		t.Fatalf("buffered %d lines, want at least 2", len(snap))
	}
	if snap[0].Text != "first" || snap[1].Text != "second" {
		t.Fatalf("lines = %q, %q; want first, second", snap[0].Text, snap[1].Text)
	}
	if snap[0].Stream != buffer.StreamFile {
		t.Fatalf("stream = %q, want %q", snap[0].Stream, buffer.StreamFile)
	}
}

func TestAttachMissingFile(t *testing.T) {
	buf := buffer.New()
	if _, err := Attach(filepath.Join(t.TempDir(), "absent.log"), buf); err == nil {
		t.Fatal("Attach() on missing file returned nil error")
	}
}

func TestTailerRejectsStdinWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	buf := buffer.New()
	tailer, err := Attach(path, buf)
	if err != nil {
		t.Fatalf("Attach() error: %v", err)
	}

	if err := tailer.Write("x"); err != ErrNoStdin {
		t.Fatalf("Write() error = %v, want ErrNoStdin", err)
	}

	tailer.Terminate()
	tailer.Terminate() // idempotent
	deadline := time.Now().Add(5 * time.Second)
	for !tailer.HasExited() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if !tailer.HasExited() {
		t.Fatal("HasExited() = false after Terminate()")
	}
}
