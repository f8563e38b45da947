package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/jdlms/gcz-explorer/internal/ui/components"
)

// ColumnPanelWidth is the open width of the column panel.
const ColumnPanelWidth = components.ColumnPanelWidth

const footerHelp = "q salir · / buscar · Tab foco · b menú · c columnas · espacio marcar · s ordenar · f filtrar · e exportar · y copiar"

// SetupKeyBindings configures keyboard input handling
func SetupKeyBindings(state *State) {
	state.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if !state.Started {
			if event.Rune() == 'q' {
				state.App.Stop()
				return nil
			}
			return event
		}
		if state.Pages.HasPage(pageFilter) {
			return event
		}
		focus := normalizeFocus(state, state.App.GetFocus())

		switch event.Key() {
		case tcell.KeyCtrlR:
			state.Retry()
			return nil
		case tcell.KeyCtrlB:
			state.ToggleSidebar()
			return nil
		case tcell.KeyTab:
			cycleFocus(state, focus)
			return nil
		case tcell.KeyEscape:
			if focus != state.MainTable {
				state.App.SetFocus(state.MainTable)
				return nil
			}
		case tcell.KeyPgDn:
			if state.Model.NextPage() {
				state.refresh()
			}
			return nil
		case tcell.KeyPgUp:
			if state.Model.PrevPage() {
				state.refresh()
			}
			return nil
		}

		// the search box gets every printable key
		if focus == state.Header.Search || event.Key() != tcell.KeyRune {
			return event
		}

		switch event.Rune() {
		case 'q':
			state.App.Stop()
			return nil
		case '/':
			state.App.SetFocus(state.Header.Search)
			return nil
		case 'b':
			state.ToggleSidebar()
			return nil
		case 'c':
			state.ToggleColumnPanel()
			return nil
		case 'j':
			if list := listOf(state, focus); list != nil {
				if i := list.GetCurrentItem(); i < list.GetItemCount()-1 {
					list.SetCurrentItem(i + 1)
				}
				return nil
			}
		case 'k':
			if list := listOf(state, focus); list != nil {
				if i := list.GetCurrentItem(); i > 0 {
					list.SetCurrentItem(i - 1)
				}
				return nil
			}
		}

		if focus != state.MainTable {
			return event
		}
		switch event.Rune() {
		case ' ':
			state.ToggleCurrentRow()
		case 'A':
			state.Model.SelectAllPage()
			state.refresh()
		case 'X':
			state.Model.ClearSelection()
			state.refresh()
		case 's':
			state.SortCurrentColumn()
		case 'f':
			state.PromptFilter()
		case 'F':
			state.ClearFilters()
		case 'n':
			if state.Model.NextPage() {
				state.refresh()
			}
		case 'p':
			if state.Model.PrevPage() {
				state.refresh()
			}
		case 'z':
			state.Model.CyclePageSize()
			state.refresh()
		case 'e':
			state.Export()
		case 'y':
			state.CopySelection()
		default:
			return event
		}
		return nil
	})
}

// normalizeFocus maps the inner list a mouse click focuses back to the
// widget that wraps it.
func normalizeFocus(state *State, focus tview.Primitive) tview.Primitive {
	switch focus {
	case state.Sidebar.List:
		return state.Sidebar
	case state.ColumnPanel.List:
		return state.ColumnPanel
	}
	return focus
}

// listOf returns the list widget that has focus, if any.
func listOf(state *State, focus tview.Primitive) *tview.List {
	switch focus {
	case state.Sidebar:
		return state.Sidebar.List
	case state.ColumnPanel:
		return state.ColumnPanel.List
	}
	return nil
}

// cycleFocus moves focus sidebar -> table -> column panel -> search.
func cycleFocus(state *State, focus tview.Primitive) {
	order := []tview.Primitive{state.Sidebar, state.MainTable}
	if state.PanelOpen {
		order = append(order, state.ColumnPanel)
	}
	order = append(order, state.Header.Search)

	next := order[0]
	for i, p := range order {
		if p == focus {
			next = order[(i+1)%len(order)]
			break
		}
	}
	state.App.SetFocus(next)
}
