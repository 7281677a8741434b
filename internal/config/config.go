package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile holds the session's tunable settings. It is constructed once at
// startup and passed explicitly to whichever component needs it; there is
// no process-wide configuration state.
type Profile struct {
	Theme           string `yaml:"theme"`
	RefreshMS       int    `yaml:"refresh_ms"`
	TimestampFormat string `yaml:"timestamp_format"`
}

// Default returns the profile used when no config file is supplied.
func Default() Profile {
	return Profile{
		Theme:           "vapor",
		RefreshMS:       50,
		TimestampFormat: "15:04:05.000",
	}
}

// LoadFromFile reads a YAML profile. Fields absent from the file keep
// their defaults.
func LoadFromFile(path string) (Profile, error) {
	p := Default()
	content, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(content, &p); err != nil {
		return p, fmt.Errorf("parse profile: %w", err)
	}
	return p, nil
}

// RefreshInterval returns the redraw tick, clamped to a sane range so a
// typo cannot spin the CPU or freeze the view.
func (p Profile) RefreshInterval() time.Duration {
	ms := p.RefreshMS
	if ms < 16 {
		ms = 16
	}
	if ms > 1000 {
		ms = 1000
	}
	return time.Duration(ms) * time.Millisecond
}
