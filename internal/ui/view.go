package ui

import (
	"github.com/atomicstack/trackmoney/internal/listview"
	"github.com/atomicstack/trackmoney/internal/menu"
	"github.com/atomicstack/trackmoney/internal/panel"
	"github.com/atomicstack/trackmoney/internal/theme"
)

const (
	headerWidth = 45
	formWidth   = menu.Width
)

// View draws the whole frame from the current ViewState.
func (m *Model) View() string {
	s := panel.NewSurface(m.width)
	switch {
	case m.err != nil:
		m.drawHeader(s, "Something went wrong")
		m.drawError(s)
	case m.mode == ModeFarewell:
		m.drawFarewell(s)
	default:
		subheading := m.state.Subheading
		if m.mode == ModeEntry && m.form != nil {
			subheading = m.form.Title()
		}
		m.drawHeader(s, subheading)
		m.drawScene(s)
		if m.mode == ModeEntry && m.form != nil {
			m.drawForm(s)
		} else {
			menu.Render(s, m.entries, m.state.Selected)
		}
	}
	return s.String()
}

func (m *Model) drawHeader(s *panel.Surface, subheading string) {
	st := panel.DefaultStyle()
	st.Width = headerWidth
	st.TMargin = 1
	st.Subheading = subheading
	panel.Heading(s, st, appTitle)
}

func (m *Model) drawScene(s *panel.Surface) {
	switch m.state.Scene {
	case menu.SceneList:
		listview.Render(s, m.ledger.Records(), listview.Options{
			Query:     m.state.Query,
			Highlight: m.highlight(),
			Decimals:  m.decimals,
		})
	}
}

func (m *Model) drawForm(s *panel.Surface) {
	st := panel.DefaultStyle()
	st.Width = formWidth
	edge := st
	edge.VPadding = 1
	panel.Top(s, edge)
	for _, line := range m.form.Answered() {
		panel.Row(s, st, line)
	}
	prompt := st
	prompt.Highlight = true
	panel.Row(s, prompt, m.form.Prompt())
	panel.Row(s, st, m.form.InputView())
	if msg := m.form.Error(); msg != "" {
		errRow := st
		errRow.HighlightColor = theme.SelectBackground.String()
		errRow.HighlightFontColor = theme.SelectForeground.String()
		panel.Row(s, errRow, "! "+msg)
	}
	panel.BR(s, st)
	hint := st
	hint.Align = panel.AlignCenter
	panel.Row(s, hint, m.form.Help())
	panel.Bottom(s, edge)
}

// Farewell renders the goodbye panel once the user has saved and quit. It is
// empty in every other mode.
func (m *Model) Farewell() string {
	if m.mode != ModeFarewell || m.err != nil {
		return ""
	}
	s := panel.NewSurface(m.width)
	m.drawFarewell(s)
	return s.String()
}

func (m *Model) drawFarewell(s *panel.Surface) {
	st := panel.DefaultStyle()
	st.Width = headerWidth
	st.TMargin = 1
	st.BMargin = 1
	panel.Heading(s, st, farewellText)
}

func (m *Model) drawError(s *panel.Surface) {
	st := panel.DefaultStyle()
	st.Width = formWidth
	st.HighlightColor = theme.SelectBackground.String()
	st.HighlightFontColor = theme.SelectForeground.String()
	edge := st
	edge.VPadding = 1
	panel.Top(s, edge)
	panel.Row(s, st, m.err.Error())
	panel.Bottom(s, edge)
	if styles.Hint != nil {
		s.WriteStyled(*styles.Hint, "Details were written to the log file.")
		s.Newline()
	}
}
