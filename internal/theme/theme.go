// Package theme maps console color names onto Lip Gloss colors and exposes
// the shared style set.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConsoleColor is one of the sixteen classic console colors.
type ConsoleColor int

const (
	Black ConsoleColor = iota
	DarkBlue
	DarkGreen
	DarkCyan
	DarkRed
	DarkMagenta
	DarkYellow
	Gray
	DarkGray
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White
)

var colorNames = [...]string{
	Black:       "Black",
	DarkBlue:    "DarkBlue",
	DarkGreen:   "DarkGreen",
	DarkCyan:    "DarkCyan",
	DarkRed:     "DarkRed",
	DarkMagenta: "DarkMagenta",
	DarkYellow:  "DarkYellow",
	Gray:        "Gray",
	DarkGray:    "DarkGray",
	Blue:        "Blue",
	Green:       "Green",
	Cyan:        "Cyan",
	Red:         "Red",
	Magenta:     "Magenta",
	Yellow:      "Yellow",
	White:       "White",
}

// ansiCodes maps console colors to the 16-color ANSI palette.
var ansiCodes = [...]string{
	Black:       "0",
	DarkBlue:    "4",
	DarkGreen:   "2",
	DarkCyan:    "6",
	DarkRed:     "1",
	DarkMagenta: "5",
	DarkYellow:  "3",
	Gray:        "7",
	DarkGray:    "8",
	Blue:        "12",
	Green:       "10",
	Cyan:        "14",
	Red:         "9",
	Magenta:     "13",
	Yellow:      "11",
	White:       "15",
}

func (c ConsoleColor) String() string {
	if c < Black || c > White {
		return "Unknown"
	}
	return colorNames[c]
}

// Lipgloss returns the terminal color for c.
func (c ConsoleColor) Lipgloss() lipgloss.Color {
	if c < Black || c > White {
		return lipgloss.Color("")
	}
	return lipgloss.Color(ansiCodes[c])
}

// ParseColor resolves a case-insensitive console color name.
func ParseColor(name string) (ConsoleColor, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false
	}
	for i, n := range colorNames {
		if strings.EqualFold(n, name) {
			return ConsoleColor(i), true
		}
	}
	return 0, false
}

// ColorOr resolves name, falling back to def for unknown or empty names.
func ColorOr(name string, def ConsoleColor) ConsoleColor {
	if c, ok := ParseColor(name); ok {
		return c
	}
	return def
}

// Panel and highlight defaults.
const (
	PanelBackground     = Gray
	PanelForeground     = Black
	HighlightBackground = DarkGreen
	HighlightForeground = White
	SelectBackground    = Red
	SelectForeground    = White
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Prompt      *lipgloss.Style
	Input       *lipgloss.Style
	Placeholder *lipgloss.Style
	Hint        *lipgloss.Style
}

var defaultStyles = Styles{
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(DarkGreen.Lipgloss()).Bold(true),
	),
	Input: ptr(
		lipgloss.NewStyle().Foreground(Black.Lipgloss()),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(DarkGray.Lipgloss()),
	),
	Hint: ptr(
		lipgloss.NewStyle().Foreground(DarkGray.Lipgloss()).Italic(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Pen returns a style painting fg text on bg.
func Pen(bg, fg ConsoleColor) lipgloss.Style {
	return lipgloss.NewStyle().Background(bg.Lipgloss()).Foreground(fg.Lipgloss())
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
