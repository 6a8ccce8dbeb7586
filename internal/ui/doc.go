// Package ui renders the end-of-run summary of openrazer-configure.
//
// The log lines are the program's primary output. When stdout is a
// terminal, the command additionally prints a lipgloss box listing every
// device, what was written to it, and, for a failed run, troubleshooting
// advice:
//
//	summary := ui.NewSummary(results, dryRun)
//	summary.ProfileSource = source
//	fmt.Println(summary.Render())
//
// Rendering is pure; callers decide whether to print.
package ui
