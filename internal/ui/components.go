package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// CreateMainTable creates the results table. Cells are selectable so the
// cursor column drives sort and filter.
func CreateMainTable() *tview.Table {
	table := tview.NewTable()
	table.SetBorder(true).SetTitle("Resultados")
	table.SetSelectable(true, true)
	table.SetFixed(1, 2) // header row, checkbox and pinned column
	return table
}

// CreateSelectionBar creates the one-line selection summary.
func CreateSelectionBar() *tview.TextView {
	bar := tview.NewTextView()
	bar.SetDynamicColors(true)
	return bar
}

// CreateBanner creates the one-line error/notice banner above the table.
func CreateBanner() *tview.TextView {
	banner := tview.NewTextView()
	banner.SetDynamicColors(true)
	return banner
}

// SetBannerError shows a failed load with the retry hint.
func SetBannerError(banner *tview.TextView, msg string) {
	banner.SetText(fmt.Sprintf("%s⚠ Error al cargar datos: %s%s  [::b]Reintentar (Ctrl-R)[::-]", tagError, tview.Escape(msg), tagReset))
}

// SetBannerNotice shows an informational message.
func SetBannerNotice(banner *tview.TextView, msg string) {
	banner.SetText(tagNotice + tview.Escape(msg) + tagReset)
}

// SelectionSummary is the selection bar text: count and the module's
// configured sum.
func SelectionSummary(countLabel, sumLabel, sum string) string {
	return fmt.Sprintf(" [::b]%s[::-]  |  %s: [::b]%s[::-]", countLabel, tview.Escape(sumLabel), sum)
}
