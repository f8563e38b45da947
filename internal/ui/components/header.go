package components

import (
	"fmt"

	"github.com/rivo/tview"
)

// Header shows the active module, the search box and the result count.
type Header struct {
	*tview.Flex
	Title  *tview.TextView
	Search *tview.InputField
	Count  *tview.TextView
}

// NewHeader builds an empty header.
func NewHeader() *Header {
	title := tview.NewTextView()
	title.SetDynamicColors(true)
	title.SetText("GCZ Data")

	search := tview.NewInputField()
	search.SetLabel("🔍 ")
	search.SetPlaceholder("Buscar...")

	count := tview.NewTextView()
	count.SetDynamicColors(true)
	count.SetTextAlign(tview.AlignRight)

	flex := tview.NewFlex().
		AddItem(title, 0, 1, false).
		AddItem(search, 0, 2, true).
		AddItem(count, 16, 0, false)
	flex.SetBorder(true)

	return &Header{Flex: flex, Title: title, Search: search, Count: count}
}

// SetModule shows the module name and subtitle and swaps the placeholder.
func (h *Header) SetModule(icon, name, subtitle, placeholder string) {
	h.Title.SetText(fmt.Sprintf("%s [::b]%s[::-] [gray]%s[-]", icon, tview.Escape(name), tview.Escape(subtitle)))
	if placeholder == "" {
		placeholder = "Buscar..."
	}
	h.Search.SetPlaceholder(placeholder)
}

// SetCount shows "N resultados".
func (h *Header) SetCount(n int) {
	h.Count.SetText(fmt.Sprintf("%d resultados ", n))
}
