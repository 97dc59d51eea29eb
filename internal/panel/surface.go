package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Cursor is the position reached after drawing a part.
type Cursor struct {
	Row int
	Col int
}

// Surface is an in-memory terminal: parts append styled text to it and it
// tracks where the next character lands. Text written between Open and
// Close is collected into a span and painted with the open pen.
type Surface struct {
	width int
	out   strings.Builder
	row   int
	col   int

	pen      *lipgloss.Style
	span     strings.Builder
	spanCols int
}

// NewSurface returns an empty surface for a terminal width columns wide.
func NewSurface(width int) *Surface {
	if width < 1 {
		width = 1
	}
	return &Surface{width: width}
}

// Width reports the terminal width the surface lays out against.
func (s *Surface) Width() int { return s.width }

// Cursor returns the current write position.
func (s *Surface) Cursor() Cursor { return Cursor{Row: s.row, Col: s.col} }

// Write appends text at the cursor, inside the open span if there is one.
func (s *Surface) Write(text string) {
	if text == "" {
		return
	}
	w := lipgloss.Width(text)
	if s.pen != nil {
		s.span.WriteString(text)
		s.spanCols += w
	} else {
		s.out.WriteString(text)
	}
	s.col += w
}

// WriteStyled appends text painted with style. It closes any open span first.
func (s *Surface) WriteStyled(style lipgloss.Style, text string) {
	s.Close()
	if text == "" {
		return
	}
	s.out.WriteString(style.Render(text))
	s.col += lipgloss.Width(text)
}

// Open starts a span painted with pen. An already open span is closed.
func (s *Surface) Open(pen lipgloss.Style) {
	s.Close()
	s.pen = &pen
}

// Close paints the open span, if any, and resets the pen.
func (s *Surface) Close() {
	if s.pen == nil {
		return
	}
	if s.span.Len() > 0 {
		s.out.WriteString(s.pen.Render(s.span.String()))
	}
	s.pen = nil
	s.span.Reset()
	s.spanCols = 0
}

// Newline closes the open span and moves to the start of the next row.
func (s *Surface) Newline() {
	s.Close()
	s.out.WriteByte('\n')
	s.row++
	s.col = 0
}

// Blank writes n empty lines.
func (s *Surface) Blank(n int) {
	for i := 0; i < n; i++ {
		s.Newline()
	}
}

// String returns everything drawn so far.
func (s *Surface) String() string {
	if s.pen == nil {
		return s.out.String()
	}
	return s.out.String() + s.pen.Render(s.span.String())
}
