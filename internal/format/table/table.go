package table

import "strings"

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes a fixed-width table column.
type Column struct {
	Name  string
	Width int
	Align Alignment
}

// NewColumn returns a column that is at least as wide as its name.
func NewColumn(name string, width int, align Alignment) Column {
	if w := cellWidth(name); w > width {
		width = w
	}
	return Column{Name: name, Width: width, Align: align}
}

// Width returns the total width of the columns joined by gap spaces.
func Width(cols []Column, gap int) int {
	total := 0
	for i, col := range cols {
		total += col.Width
		if i > 0 {
			total += gap
		}
	}
	return total
}

// Header renders the column names as a row.
func Header(cols []Column, gap int) string {
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Name
	}
	return Row(cols, names, gap)
}

// Row pads each cell to its column width. The final column is not padded on
// the right so trailing content is never followed by filler.
func Row(cols []Column, cells []string, gap int) string {
	var b strings.Builder
	for c, col := range cols {
		cell := ""
		if c < len(cells) {
			cell = cells[c]
		}
		if c > 0 {
			writeSpaces(&b, gap)
		}
		pad := col.Width - cellWidth(cell)
		if pad < 0 {
			pad = 0
		}
		if col.Align == AlignRight {
			writeSpaces(&b, pad)
			b.WriteString(cell)
			continue
		}
		b.WriteString(cell)
		if c < len(cols)-1 {
			writeSpaces(&b, pad)
		}
	}
	return b.String()
}

// Format returns the rows padded according to the widest entry in each column.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := len(rows[0])
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if c >= colCount {
				break
			}
			if width := cellWidth(cell); width > widths[c] {
				widths[c] = width
			}
		}
	}
	cols := make([]Column, colCount)
	for c := range cols {
		cols[c] = Column{Width: widths[c]}
		if c < len(alignments) {
			cols[c].Align = alignments[c]
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = Row(cols, row, 2)
	}
	return out
}

func cellWidth(text string) int {
	return len([]rune(text))
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
