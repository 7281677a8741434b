package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme describes the colors and styles for the tracer UI.
type Theme struct {
	Name      string
	StatusBar lipgloss.Style
	HelpBar   lipgloss.Style
	Timestamp lipgloss.Style
	Stdout    lipgloss.Style
	Stderr    lipgloss.Style
	Match     lipgloss.Style
}

func themeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "midnight":
		return midnightTheme()
	case "dusk":
		return duskTheme()
	default:
		return vaporTheme()
	}
}

func vaporTheme() Theme {
	return Theme{
		Name:      "vapor",
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("#1B1C30")).Background(lipgloss.Color("#FF61D8")).Padding(0, 1),
		HelpBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("#A4A9FF")),
		Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("#7AF7FF")).Faint(true),
		Stdout:    lipgloss.NewStyle().Foreground(lipgloss.Color("#E7E7FF")),
		Stderr:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8B5D")),
		Match:     lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("#FFE066")).Bold(true),
	}
}

func midnightTheme() Theme {
	return Theme{
		Name:      "midnight",
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("#02070D")).Background(lipgloss.Color("#00E6D2")).Padding(0, 1),
		HelpBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7A89")),
		Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("#00C9A7")).Faint(true),
		Stdout:    lipgloss.NewStyle().Foreground(lipgloss.Color("#E3FDFD")),
		Stderr:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		Match:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F4F269")),
	}
}

func duskTheme() Theme {
	return Theme{
		Name:      "dusk",
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("#211830")).Background(lipgloss.Color("#FFB4A2")).Padding(0, 1),
		HelpBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("#C7CEEA")),
		Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD6BA")).Faint(true),
		Stdout:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F1F2F8")),
		Stderr:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5E5B")),
		Match:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE066")).Underline(true),
	}
}
