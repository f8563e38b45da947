package ui

import (
	"strings"
	"testing"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdlms/gcz-explorer/internal/columns"
	"github.com/jdlms/gcz-explorer/internal/render"
	"github.com/jdlms/gcz-explorer/internal/types"
)

func testView() TableView {
	return TableView{
		Columns: []columns.Descriptor{
			{Field: "id", Header: "ID", MinWidth: 80, MaxWidth: 100, Muted: true},
			{Field: "estado", Header: "Estado", MinWidth: 120, Variant: render.Status},
			{Field: "total", Header: "Total", MinWidth: 100, Variant: render.Amount},
		},
		Formatter: render.NewFormatter("en-US"),
		PageSize:  50,
		PageCount: 1,
	}
}

func TestCellText(t *testing.T) {
	assert.Equal(t, "", CellText(render.Cell{Empty: true, Text: "x"}, false))
	assert.Equal(t, "[#10b981]●[-] Pagado", CellText(render.StatusBadge("Pagado"), false))
	assert.Equal(t, tagMuted+"42"+tagReset, CellText(render.Cell{Text: "42"}, true))
	assert.Equal(t, "a[b[]", CellText(render.Cell{Text: "a[b]"}, false))
}

func TestPopulateTable_Rows(t *testing.T) {
	table := tview.NewTable()
	v := testView()
	v.Rows = []types.Row{
		{"id": 1, "estado": "Anulado", "total": 1234.5},
		{"id": 2, "estado": "", "total": nil},
	}
	v.Selected = func(i int) bool { return i == 1 }
	v.SortField = "total"

	PopulateTable(table, v)

	require.Equal(t, 3, table.GetRowCount())
	assert.Equal(t, 4, table.GetColumnCount())
	assert.Contains(t, table.GetCell(0, 3).Text, "Total ▲")
	assert.Equal(t, tview.Escape("[ ]"), table.GetCell(1, 0).Text)
	assert.Equal(t, tview.Escape("[x]"), table.GetCell(2, 0).Text)
	assert.Equal(t, "[#f43f5e]●[-] Anulado", table.GetCell(1, 2).Text)
	assert.Equal(t, "1,234.50", table.GetCell(1, 3).Text)
	assert.Equal(t, "", table.GetCell(2, 2).Text)
	assert.Equal(t, "", table.GetCell(2, 3).Text)
}

func TestPopulateTable_LoadingOverlay(t *testing.T) {
	table := tview.NewTable()
	v := testView()
	v.Loading = true
	PopulateTable(table, v)
	assert.Contains(t, table.GetCell(1, 1).Text, "Cargando registros...")

	v.Loading = false
	PopulateTable(table, v)
	assert.Contains(t, table.GetCell(1, 1).Text, "Sin registros")
}

func TestHeaderPadsToMinWidth(t *testing.T) {
	cell := headerCell(columns.Descriptor{Header: "ID", MinWidth: 80}, TableView{})
	assert.Equal(t, tagHeader+"ID"+strings.Repeat(" ", 8)+tagReset, cell.Text)
}
