package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for the run summary
var (
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success, checkmarks
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors, X marks
	WarningColor = lipgloss.Color("#FFA500") // Orange - dry run, skipped devices
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

var (
	// TitleStyle is for the summary title
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// DeviceNameStyle is for device names
	DeviceNameStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// DeviceMetaStyle is for serial numbers and counts
	DeviceMetaStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// ChangeStyle is for the individual writes made to a device
	ChangeStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			PaddingLeft(5)

	// SuccessMarkerStyle colours the success marker
	SuccessMarkerStyle = lipgloss.NewStyle().
				Foreground(SuccessColor)

	// SkippedMarkerStyle colours the marker of devices left alone
	SkippedMarkerStyle = lipgloss.NewStyle().
				Foreground(WarningColor)

	// ErrorMarkerStyle colours the failure marker
	ErrorMarkerStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// ErrorMessageStyle is for error message text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				PaddingLeft(5)

	// TroubleshootingTitleStyle is for "Troubleshooting:" headers
	TroubleshootingTitleStyle = lipgloss.NewStyle().
					Foreground(MutedColor).
					Bold(true)

	// TroubleshootingItemStyle is for troubleshooting lines
	TroubleshootingItemStyle = lipgloss.NewStyle().
					Foreground(MutedColor)
)

// Status markers
const (
	SuccessMarker = "✓"
	SkippedMarker = "·"
	FailureMarker = "✗"
)

// IsTerminal reports whether stdout is a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// boxStyle returns the outer border for a summary of the given outcome
func boxStyle(width int, color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(color).
		Width(width - 2).
		Padding(0, 2)
}
