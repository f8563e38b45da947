package components

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// NewWelcome builds the start screen. onStart runs on Enter or when the
// Iniciar button is pressed.
func NewWelcome(onStart func()) *tview.Flex {
	title := tview.NewTextView()
	title.SetDynamicColors(true)
	title.SetTextAlign(tview.AlignCenter)
	title.SetText("[::b]GCZ Data[::-]\n\n[#9ccfd8]Buscador[-]\n\nConsulta de datos en tiempo real")

	start := tview.NewButton("Iniciar")
	start.SetSelectedFunc(onStart)

	footer := tview.NewTextView()
	footer.SetTextAlign(tview.AlignCenter)
	footer.SetText(Copyright)

	buttonRow := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(start, 12, 0, true).
		AddItem(nil, 0, 1, false)

	page := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(title, 6, 0, false).
		AddItem(buttonRow, 1, 0, true).
		AddItem(nil, 0, 1, false).
		AddItem(footer, 1, 0, false)
	page.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEnter {
			onStart()
			return nil
		}
		return event
	})
	return page
}
