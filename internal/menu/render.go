package menu

import (
	"fmt"

	"github.com/atomicstack/trackmoney/internal/panel"
)

// Width is the content width of a menu box.
const Width = 60

// Render draws entries as a numbered box with the selected entry
// highlighted.
func Render(s *panel.Surface, entries []Entry, selected int) panel.Cursor {
	st := panel.DefaultStyle()
	st.Width = Width
	edge := st
	edge.VPadding = 1
	panel.Top(s, edge)
	selected = Wrap(selected, len(entries))
	for i, e := range entries {
		row := st
		row.Highlight = i == selected-1
		panel.Row(s, row, fmt.Sprintf("[%d] %s", i+1, e.Description))
	}
	return panel.Bottom(s, edge)
}
