package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var errNoSelection = errors.New("no rows selected")

// wireWidgets connects widget callbacks to state actions.
func wireWidgets(s *State) {
	s.Header.Search.SetChangedFunc(func(text string) {
		if s.Hook != nil {
			s.Hook.HandleSearchChange(text)
		}
	})
	s.Header.Search.SetDoneFunc(func(key tcell.Key) {
		s.App.SetFocus(s.MainTable)
	})

	s.ColumnPanel.OnToggle = func(field string) {
		if s.Visibility.Toggle(field) {
			s.columnsChanged()
		}
	}
	s.ColumnPanel.OnShowAll = func() {
		s.Visibility.ShowAll()
		s.columnsChanged()
	}
	s.ColumnPanel.OnRecommended = func() {
		s.Visibility.ShowRecommended()
		s.columnsChanged()
	}
}

// ToggleSidebar expands or collapses the module sidebar.
func (s *State) ToggleSidebar() {
	s.Sidebar.SetExpanded(!s.Sidebar.Expanded())
	s.Layout.SetWidth(s.Sidebar, s.Sidebar.Width())
}

// ToggleColumnPanel slides the column visibility panel in or out.
func (s *State) ToggleColumnPanel() {
	s.PanelOpen = !s.PanelOpen
	if s.PanelOpen {
		s.Layout.SetWidth(s.ColumnPanel, ColumnPanelWidth)
		s.App.SetFocus(s.ColumnPanel)
		return
	}
	s.Layout.SetWidth(s.ColumnPanel, 0)
	s.App.SetFocus(s.MainTable)
}

// currentColumn is the field under the table cursor.
func (s *State) currentColumn() (field, header string, ok bool) {
	_, col := s.MainTable.GetSelection()
	cols := s.Model.Columns()
	if col < 1 || col > len(cols) {
		return "", "", false
	}
	c := cols[col-1]
	return c.Field, c.Header, true
}

// currentRow is the page row under the table cursor.
func (s *State) currentRow() int {
	row, _ := s.MainTable.GetSelection()
	return row - 1
}

// SortCurrentColumn cycles the sort of the cursor column.
func (s *State) SortCurrentColumn() {
	if field, _, ok := s.currentColumn(); ok {
		s.Model.CycleSort(field)
		s.refresh()
	}
}

// ToggleCurrentRow flips the selection of the cursor row.
func (s *State) ToggleCurrentRow() {
	s.Model.ToggleSelect(s.currentRow())
	s.refresh()
}

// Export writes the displayed rows to a CSV file in the export dir.
func (s *State) Export() {
	path, err := s.Model.ExportFile(s.Settings.ExportDir, s.Active.ID, time.Now())
	if err != nil {
		s.Log.Error().Err(err).Msg("export failed")
		s.Notify("No se pudo exportar: " + err.Error())
		return
	}
	s.Log.Info().Str("path", path).Int("rows", s.Model.DisplayedCount()).Msg("exported")
	s.Notify("Exportado a " + path)
}

// CopySelection puts the selected rows on the clipboard as TSV.
func (s *State) CopySelection() {
	if err := s.copySelection(); err != nil {
		if errors.Is(err, errNoSelection) {
			s.Notify("No hay registros seleccionados")
			return
		}
		s.Log.Error().Err(err).Msg("copy failed")
		s.Notify("No se pudo copiar: " + err.Error())
		return
	}
	s.Notify(fmt.Sprintf("Copiados %d registros al portapapeles", s.Model.SelectedCount()))
}

func (s *State) copySelection() error {
	if s.Model.SelectedCount() == 0 {
		return errNoSelection
	}
	var b strings.Builder
	if err := s.Model.WriteTSV(&b); err != nil {
		return err
	}
	return clipboard.WriteAll(b.String())
}

// PromptFilter asks for a filter on the cursor column.
func (s *State) PromptFilter() {
	field, header, ok := s.currentColumn()
	if !ok {
		return
	}
	input := tview.NewInputField().
		SetLabel("Filtrar " + header + ": ").
		SetText(s.Model.Filter(field))
	input.SetBorder(true)

	closePrompt := func() {
		s.Pages.RemovePage(pageFilter)
		s.App.SetFocus(s.MainTable)
	}
	input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			s.Model.SetFilter(field, input.GetText())
			s.refresh()
		}
		closePrompt()
	})

	modal := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(input, 3, 0, true).
			AddItem(nil, 0, 1, false), 60, 0, true).
		AddItem(nil, 0, 1, false)
	s.Pages.AddPage(pageFilter, modal, true, true)
	s.App.SetFocus(input)
}

// ClearFilters drops every column filter.
func (s *State) ClearFilters() {
	s.Model.ClearFilters()
	s.refresh()
}
