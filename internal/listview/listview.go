// Package listview renders the ledger as a bordered table with a balance
// line underneath.
package listview

import (
	"github.com/atomicstack/trackmoney/internal/format"
	"github.com/atomicstack/trackmoney/internal/format/table"
	"github.com/atomicstack/trackmoney/internal/ledger"
	"github.com/atomicstack/trackmoney/internal/panel"
	"github.com/atomicstack/trackmoney/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	columnGap     = 1
	titleColumn   = 2
	amountColumn  = 3
	balancePrefix = "Balance: "
)

var columns = []table.Column{
	table.NewColumn("Type", 14, table.AlignLeft),
	table.NewColumn("Month", 16, table.AlignLeft),
	table.NewColumn("Title", 24, table.AlignLeft),
	table.NewColumn("Amount", 12, table.AlignRight),
}

// layout widens the Amount column until every formatted amount and the
// balance line fit, so amounts are never truncated.
func layout(records []ledger.Record, balance string, decimals int) []table.Column {
	cols := append([]table.Column(nil), columns...)
	amount := &cols[amountColumn]
	for _, r := range records {
		if w := lipgloss.Width(format.Amount(r.Amount, decimals)); w > amount.Width {
			amount.Width = w
		}
	}
	if need := lipgloss.Width(balance) - (table.Width(cols, columnGap) - amount.Width); need > amount.Width {
		amount.Width = need
	}
	return cols
}

// Options controls what Render shows.
type Options struct {
	Query ledger.Query
	// Highlight is the 1-based ledger position of the record drawn with the
	// selection style; zero highlights nothing.
	Highlight int
	Decimals  int
	// Style is the panel style for the table. The zero value uses the
	// centered default at the table's natural width.
	Style panel.Style
}

// Render draws the records matching opts.Query. The balance always covers
// every record, whatever the filter.
func Render(s *panel.Surface, records []ledger.Record, opts Options) panel.Cursor {
	st := opts.Style
	if st == (panel.Style{}) {
		st = panel.DefaultStyle()
	}
	balance := balancePrefix + format.Amount(ledger.Balance(records), opts.Decimals)
	cols := layout(records, balance, opts.Decimals)
	if st.Width <= 0 {
		st.Width = table.Width(cols, columnGap)
	}
	outer := st
	outer.VPadding = 1
	outer.BMargin = 0
	panel.Top(s, outer)

	body := st
	body.TMargin, body.BMargin, body.VPadding = 0, 0, 0
	panel.Row(s, body, table.Header(cols, columnGap))
	panel.HR(s, body)

	selected := body
	selected.HighlightColor = theme.SelectBackground.String()
	selected.HighlightFontColor = theme.SelectForeground.String()
	for _, row := range ledger.Select(records, opts.Query) {
		rowStyle := body
		if opts.Highlight > 0 && row.Index == opts.Highlight-1 {
			rowStyle = selected
		}
		panel.Row(s, rowStyle, cells(cols, row.Record, opts.Decimals))
	}

	panel.HR(s, body)
	total := body
	total.Align = panel.AlignRight
	panel.Row(s, total, balance)

	outer.TMargin = 0
	outer.BMargin = st.BMargin
	return panel.Bottom(s, outer)
}

// cells formats one record as a table row.
func cells(cols []table.Column, r ledger.Record, decimals int) string {
	title := r.Title
	if w := cols[titleColumn].Width; len([]rune(title)) > w {
		title = truncate.StringWithTail(title, uint(w), "…")
	}
	return table.Row(cols, []string{
		r.Kind().String(),
		format.MonthYear(r.Date),
		title,
		format.Amount(r.Amount, decimals),
	}, columnGap)
}
