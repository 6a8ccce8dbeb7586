package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DeviceResult is what happened to one device during a run.
type DeviceResult struct {
	Name    string
	Serial  string
	Skipped string   // Reason the device was left alone, if it was
	Changes []string // Writes made, in order
	Err     error
}

// Summary is the box printed at the end of a run.
type Summary struct {
	Devices       []DeviceResult
	DryRun        bool
	ProfileSource string   // Empty for the built-in profile
	Hint          []string // Troubleshooting lines for a failed run
	Err           error    // Error that stopped the run before any device
	Width         int
}

// NewSummary creates a summary sized to the terminal
func NewSummary(devices []DeviceResult, dryRun bool) *Summary {
	return &Summary{
		Devices: devices,
		DryRun:  dryRun,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (s *Summary) SetWidth(width int) *Summary {
	s.Width = width
	return s
}

// Failed reports whether the run or any device failed
func (s *Summary) Failed() bool {
	if s.Err != nil {
		return true
	}
	for _, d := range s.Devices {
		if d.Err != nil {
			return true
		}
	}
	return false
}

func (s *Summary) title() string {
	configured, changes := 0, 0
	for _, d := range s.Devices {
		if d.Skipped == "" && d.Err == nil {
			configured++
			changes += len(d.Changes)
		}
	}

	switch {
	case s.Failed():
		return fmt.Sprintf("%s  FAILED  ─  configuration aborted", FailureMarker)
	case s.DryRun:
		return fmt.Sprintf("%s  DRY RUN  ─  %d device(s) listed, nothing written", SkippedMarker, len(s.Devices))
	default:
		return fmt.Sprintf("%s  DONE  ─  %d device(s) configured, %d setting(s) written", SuccessMarker, configured, changes)
	}
}

func (s *Summary) color() lipgloss.Color {
	switch {
	case s.Failed():
		return ErrorColor
	case s.DryRun:
		return WarningColor
	default:
		return SuccessColor
	}
}

// Render returns the styled summary box as a string
func (s *Summary) Render() string {
	width := s.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	lines := []string{"", TitleStyle.Render(s.title())}

	source := s.ProfileSource
	if source == "" {
		source = "built-in"
	}
	lines = append(lines, DeviceMetaStyle.Render("Profile: "+source), "")

	if s.Err != nil && len(s.Devices) == 0 {
		lines = append(lines, ErrorMessageStyle.Render("Error: "+s.Err.Error()), "")
	} else if len(s.Devices) == 0 {
		lines = append(lines, DeviceMetaStyle.Render("No devices found."), "")
	}

	for _, d := range s.Devices {
		lines = append(lines, s.renderDevice(d)...)
	}

	if len(s.Hint) > 0 {
		lines = append(lines, renderTroubleshootingBox(width, s.Hint), "")
	}

	return boxStyle(width, s.color()).Render(strings.Join(lines, "\n"))
}

func (s *Summary) renderDevice(d DeviceResult) []string {
	var marker, detail string
	switch {
	case d.Err != nil:
		marker = ErrorMarkerStyle.Render(FailureMarker)
		detail = "failed"
	case d.Skipped != "":
		marker = SkippedMarkerStyle.Render(SkippedMarker)
		detail = d.Skipped
	case len(d.Changes) == 0:
		marker = SuccessMarkerStyle.Render(SuccessMarker)
		detail = "already up to date"
	default:
		marker = SuccessMarkerStyle.Render(SuccessMarker)
		detail = fmt.Sprintf("%d setting(s) written", len(d.Changes))
	}

	lines := []string{
		fmt.Sprintf(" %s  %s %s", marker, DeviceNameStyle.Render(d.Name),
			DeviceMetaStyle.Render(fmt.Sprintf("[%s] %s", d.Serial, detail))),
	}
	for _, c := range d.Changes {
		lines = append(lines, ChangeStyle.Render(c))
	}
	if d.Err != nil {
		lines = append(lines, ErrorMessageStyle.Render("Error: "+d.Err.Error()))
	}
	return append(lines, "")
}

// renderTroubleshootingBox renders the inner troubleshooting box
func renderTroubleshootingBox(width int, hint []string) string {
	lines := make([]string, 0, len(hint))
	for i, line := range hint {
		if i == 0 {
			lines = append(lines, TroubleshootingTitleStyle.Render(line))
			continue
		}
		lines = append(lines, TroubleshootingItemStyle.Render(line))
	}

	innerWidth := width - 12
	if innerWidth < 40 {
		innerWidth = 40
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(innerWidth).
		Padding(0, 1).
		MarginLeft(1).
		Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (s *Summary) String() string {
	return s.Render()
}
