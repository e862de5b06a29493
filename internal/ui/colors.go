// Package ui holds the shared lipgloss color tokens and glyphs used by
// command output and the progress view.
package ui

import "github.com/charmbracelet/lipgloss"

// Color tokens. Adaptive so output stays readable on light terminals.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	ColorText    = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#DDDDDD"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#107C41", Dark: "#3FB950"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#D29922"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#F85149"}
)

// Glyphs used in list and summary output.
const (
	IconDiamond = "◆"
	IconCheck   = "✓"
	IconCross   = "✗"
	IconSkip    = "·"
)

// Common styles.
var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
)
