package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	content := "theme: midnight\nrefresh_ms: 100\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if p.Theme != "midnight" {
		t.Errorf("Theme = %q, want midnight", p.Theme)
	}
	if p.RefreshMS != 100 {
		t.Errorf("RefreshMS = %d, want 100", p.RefreshMS)
	}
	// Unset field keeps its default.
	if p.TimestampFormat != Default().TimestampFormat {
		t.Errorf("TimestampFormat = %q, want default", p.TimestampFormat)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing file should error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("theme: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("malformed yaml should error")
	}
}

func TestRefreshIntervalClamped(t *testing.T) {
	cases := []struct {
		ms   int
		want time.Duration
	}{
		{0, 16 * time.Millisecond},
		{5, 16 * time.Millisecond},
		{50, 50 * time.Millisecond},
		{5000, time.Second},
	}
	for _, tc := range cases {
		p := Profile{RefreshMS: tc.ms}
		if got := p.RefreshInterval(); got != tc.want {
			t.Errorf("RefreshInterval(%d) = %v, want %v", tc.ms, got, tc.want)
		}
	}
}
