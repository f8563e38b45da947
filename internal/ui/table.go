package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/jdlms/gcz-explorer/internal/columns"
	"github.com/jdlms/gcz-explorer/internal/render"
	"github.com/jdlms/gcz-explorer/internal/types"
)

// pxPerCell converts configured pixel widths to terminal cells.
const pxPerCell = 8

// TableView is what PopulateTable paints.
type TableView struct {
	Columns   []columns.Descriptor
	Rows      []types.Row // current page
	Selected  func(i int) bool
	Formatter *render.Formatter
	Loading   bool
	SortField string
	SortDesc  bool
	Filters   map[string]bool
	Page      int
	PageCount int
	PageSize  int
}

// PopulateTable fills the table: a header row, then one row per record
// with a checkbox column first.
func PopulateTable(table *tview.Table, v TableView) {
	table.Clear()
	table.SetTitle(fmt.Sprintf("Página %d/%d · %d por página", v.Page+1, max(v.PageCount, 1), v.PageSize))

	table.SetCell(0, 0, tview.NewTableCell(tagHeader+"✓"+tagReset).
		SetSelectable(false).
		SetAlign(tview.AlignCenter))
	for col, def := range v.Columns {
		table.SetCell(0, col+1, headerCell(def, v))
	}

	if len(v.Rows) == 0 {
		msg := "Sin registros"
		if v.Loading {
			msg = "Cargando registros..."
		}
		table.SetCell(1, 1, tview.NewTableCell(tagLoading+msg+tagReset).
			SetSelectable(false))
		return
	}

	presenters := make([]render.Presenter, len(v.Columns))
	for i, def := range v.Columns {
		presenters[i] = v.Formatter.ForVariant(def.Variant)
	}

	for r, row := range v.Rows {
		box := "[ ]"
		if v.Selected != nil && v.Selected(r) {
			box = "[x]"
		}
		table.SetCell(r+1, 0, tview.NewTableCell(tview.Escape(box)).SetAlign(tview.AlignCenter))
		for c, def := range v.Columns {
			cell := presenters[c].Present(row[def.Field])
			tc := tview.NewTableCell(CellText(cell, def.Muted))
			if def.Variant == render.Amount {
				tc.SetAlign(tview.AlignRight)
			}
			if def.MaxWidth > 0 {
				tc.SetMaxWidth(cells(def.MaxWidth))
			}
			table.SetCell(r+1, c+1, tc)
		}
	}
}

// CellText renders a presented cell as tview dynamic-color text.
func CellText(c render.Cell, muted bool) string {
	switch {
	case c.Empty:
		return ""
	case c.Badge:
		return fmt.Sprintf("[%s]%s[-] %s", c.Category.Color(), render.BadgeDot, tview.Escape(c.Text))
	case muted:
		return tagMuted + tview.Escape(c.Text) + tagReset
	default:
		return tview.Escape(c.Text)
	}
}

func headerCell(def columns.Descriptor, v TableView) *tview.TableCell {
	text := def.Header
	if def.Field == v.SortField {
		if v.SortDesc {
			text += " ▼"
		} else {
			text += " ▲"
		}
	}
	if v.Filters[def.Field] {
		text += " ⧩"
	}
	if pad := cells(def.MinWidth) - len([]rune(text)); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	tc := tview.NewTableCell(tagHeader + tview.Escape(text) + tagReset).SetSelectable(false)
	if def.MaxWidth > 0 {
		tc.SetMaxWidth(cells(def.MaxWidth))
	}
	return tc
}

func cells(px int) int {
	return max(px/pxPerCell, 4)
}
