// Package panel draws the parts of bordered, colored boxes onto a Surface.
// Larger parts are composed from smaller ones: a row is a left edge, the
// content and a right edge, a heading is a top, rows and a bottom.
package panel

import (
	"strings"

	"github.com/atomicstack/trackmoney/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Auto asks for a horizontal margin that centers the box.
const Auto = -1

const ellipsis = "…"

// Align positions content inside the content width.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// ParseAlign accepts left, right and center, or their first letters, in any
// case. Anything else aligns left.
func ParseAlign(name string) Align {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "right", "r":
		return AlignRight
	case "center", "c":
		return AlignCenter
	default:
		return AlignLeft
	}
}

// Style configures how a part is drawn. Width is the content width and
// zero fills the terminal. Colors are console color names; empty or
// unknown names use the theme defaults.
type Style struct {
	Width    int
	HMargin  int
	TMargin  int
	BMargin  int
	HPadding int
	VPadding int
	Border   bool
	Align    Align

	Color     string
	FontColor string

	Highlight          bool
	HighlightColor     string
	HighlightFontColor string

	Subheading string
}

// DefaultStyle is a centered, full-width, bordered box with two columns of
// horizontal padding.
func DefaultStyle() Style {
	return Style{HMargin: Auto, HPadding: 2, Border: true}
}

// Highlighted reports whether the content is painted with highlight colors.
func (st Style) Highlighted() bool {
	return st.Highlight || st.HighlightColor != "" || st.HighlightFontColor != ""
}

// box is a Style resolved against a surface.
type box struct {
	width  int
	margin int
	hpad   int
	vpad   int
	border bool
	align  Align
	frame  lipgloss.Style
	pen    lipgloss.Style
	plain  lipgloss.Style
}

func resolve(s *Surface, st Style) box {
	hpad := max(st.HPadding, 0)
	borderCols := 0
	if st.Border {
		borderCols = 2
	}
	width := st.Width
	if width <= 0 {
		width = s.Width() - 2*max(st.HMargin, 0) - 2*hpad - borderCols
	}
	width = max(width, 1)
	margin := st.HMargin
	if margin < 0 {
		margin = max((s.Width()-(width+2*hpad+borderCols))/2, 0)
	}

	bg := theme.ColorOr(st.Color, theme.PanelBackground)
	fg := theme.ColorOr(st.FontColor, theme.PanelForeground)
	plain := theme.Pen(bg, fg)
	pen := plain
	if st.Highlighted() {
		pen = theme.Pen(
			theme.ColorOr(st.HighlightColor, theme.HighlightBackground),
			theme.ColorOr(st.HighlightFontColor, theme.HighlightForeground),
		)
	}
	return box{
		width:  width,
		margin: margin,
		hpad:   hpad,
		vpad:   max(st.VPadding, 0),
		border: st.Border,
		align:  st.Align,
		frame:  lipgloss.NewStyle().Foreground(bg.Lipgloss()),
		pen:    pen,
		plain:  plain,
	}
}

// ContentWidth returns the resolved content width of st on s.
func ContentWidth(s *Surface, st Style) int {
	return resolve(s, st).width
}

// draw wraps a part with the style's outer margins.
func draw(s *Surface, st Style, part func(b box)) Cursor {
	s.Blank(max(st.TMargin, 0))
	part(resolve(s, st))
	s.Blank(max(st.BMargin, 0))
	return s.Cursor()
}

// Top draws the top border followed by VPadding blank rows.
func Top(s *Surface, st Style) Cursor {
	return draw(s, st, func(b box) { b.top(s) })
}

// Bottom draws VPadding blank rows followed by the bottom border.
func Bottom(s *Surface, st Style) Cursor {
	return draw(s, st, func(b box) { b.bottom(s) })
}

// Left draws the margin, the left border and the leading padding, leaving
// the content pen open.
func Left(s *Surface, st Style) Cursor {
	s.Blank(max(st.TMargin, 0))
	resolve(s, st).left(s)
	return s.Cursor()
}

// Right pads the open content to the content width, closes it, and draws
// the right border and a line break.
func Right(s *Surface, st Style) Cursor {
	return draw(s, Style{
		Width: st.Width, HMargin: st.HMargin, BMargin: st.BMargin,
		HPadding: st.HPadding, Border: st.Border, Color: st.Color, FontColor: st.FontColor,
	}, func(b box) { b.right(s) })
}

// Row draws content between a left and right edge, surrounded by
// VPadding blank rows.
func Row(s *Surface, st Style, content string) Cursor {
	return draw(s, st, func(b box) { b.row(s, content) })
}

// HR draws a horizontal rule across the content width.
func HR(s *Surface, st Style) Cursor {
	return draw(s, st, func(b box) { b.hr(s) })
}

// BR draws one blank interior row.
func BR(s *Surface, st Style) Cursor {
	return draw(s, st, func(b box) { b.br(s) })
}

// Heading draws a box with title centered and st.Subheading below it when
// set.
func Heading(s *Surface, st Style, title string) Cursor {
	return draw(s, st, func(b box) {
		b.align = AlignCenter
		b.vpad = 1
		b.top(s)
		b.vpad = 0
		b.row(s, title)
		if st.Subheading != "" {
			b.br(s)
			b.row(s, st.Subheading)
		}
		b.vpad = 1
		b.bottom(s)
	})
}

func (b box) inner() int { return b.width + 2*b.hpad }

func (b box) top(s *Surface) {
	s.Write(strings.Repeat(" ", b.margin))
	if b.border {
		s.WriteStyled(b.frame, "┌"+strings.Repeat("─", b.inner())+"┐")
	}
	s.Newline()
	for i := 0; i < b.vpad; i++ {
		b.br(s)
	}
}

func (b box) bottom(s *Surface) {
	for i := 0; i < b.vpad; i++ {
		b.br(s)
	}
	s.Write(strings.Repeat(" ", b.margin))
	if b.border {
		s.WriteStyled(b.frame, "└"+strings.Repeat("─", b.inner())+"┘")
	}
	s.Newline()
}

func (b box) left(s *Surface) {
	s.Close()
	s.Write(strings.Repeat(" ", b.margin))
	if b.border {
		s.WriteStyled(b.frame, "│")
	}
	s.Open(b.pen)
	s.Write(strings.Repeat(" ", b.hpad))
}

func (b box) right(s *Surface) {
	if s.pen == nil {
		s.Open(b.plain)
	}
	if pad := b.hpad + b.width - s.spanCols; pad > 0 {
		s.Write(strings.Repeat(" ", pad))
	}
	s.Write(strings.Repeat(" ", b.hpad))
	s.Close()
	if b.border {
		s.WriteStyled(b.frame, "│")
	}
	s.Newline()
}

func (b box) row(s *Surface, content string) {
	for i := 0; i < b.vpad; i++ {
		b.br(s)
	}
	b.left(s)
	s.Write(b.fit(content))
	b.right(s)
	for i := 0; i < b.vpad; i++ {
		b.br(s)
	}
}

// unlit returns b with the highlight pen replaced by the plain one. Rules
// and blank rows are never highlighted.
func (b box) unlit() box {
	b.pen = b.plain
	return b
}

func (b box) hr(s *Surface) {
	p := b.unlit()
	p.left(s)
	s.Write(strings.Repeat("─", b.width))
	p.right(s)
}

func (b box) br(s *Surface) {
	p := b.unlit()
	p.left(s)
	s.Write(" ")
	p.right(s)
}

// fit truncates content to the content width and applies the alignment.
func (b box) fit(content string) string {
	if lipgloss.Width(content) > b.width {
		content = truncate.StringWithTail(content, uint(b.width), ellipsis)
	}
	gap := b.width - lipgloss.Width(content)
	switch b.align {
	case AlignRight:
		return strings.Repeat(" ", max(gap, 0)) + content
	case AlignCenter:
		return strings.Repeat(" ", max(gap/2, 0)) + content
	default:
		return content
	}
}
