// Package style provides shared colors and icons for terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
)

// ColorFor returns the palette color used for a status icon.
func ColorFor(icon string) lipgloss.Color {
	switch icon {
	case Check:
		return Green
	case Cross:
		return Red
	case Warning, Tilde:
		return Yellow
	case Dot:
		return Iris
	default:
		return Slate
	}
}
