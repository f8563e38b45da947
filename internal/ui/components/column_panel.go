package components

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// PanelItem is one row of the column panel.
type PanelItem struct {
	Field   string
	Header  string
	Visible bool
	Locked  bool
}

// ColumnPanel is the slide-in column visibility list with the two bulk
// actions. Enter or space toggles; 'a' shows all; 'r' shows recommended.
type ColumnPanel struct {
	*tview.List
	items []PanelItem

	OnToggle      func(field string)
	OnShowAll     func()
	OnRecommended func()
}

// ColumnPanelWidth is the panel width in cells.
const ColumnPanelWidth = 36

// NewColumnPanel builds an empty panel.
func NewColumnPanel() *ColumnPanel {
	p := &ColumnPanel{List: tview.NewList()}
	p.ShowSecondaryText(false)
	p.SetHighlightFullLine(true)
	p.SetBorder(true)
	p.SetSelectedFunc(func(i int, _, _ string, _ rune) { p.toggle(i) })
	p.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case ' ':
			p.toggle(p.GetCurrentItem())
			return nil
		case 'a':
			if p.OnShowAll != nil {
				p.OnShowAll()
			}
			return nil
		case 'r':
			if p.OnRecommended != nil {
				p.OnRecommended()
			}
			return nil
		}
		return event
	})
	return p
}

// SetItems repaints the panel, keeping the cursor where it was.
func (p *ColumnPanel) SetItems(items []PanelItem, visible int) {
	current := p.GetCurrentItem()
	p.items = items
	p.Clear()
	for _, it := range items {
		box := "[ ]"
		if it.Visible {
			box = "[x]"
		}
		text := tview.Escape(box) + " " + tview.Escape(it.Header)
		if it.Locked {
			text = "[gray]" + text + " (fija)[-]"
		}
		p.AddItem(text, "", 0, nil)
	}
	p.SetTitle(fmt.Sprintf("Columnas (%d/%d)  a:Mostrar todas r:Recomendadas", visible, len(items)))
	if current >= 0 && current < len(items) {
		p.SetCurrentItem(current)
	}
}

func (p *ColumnPanel) toggle(i int) {
	if i < 0 || i >= len(p.items) || p.items[i].Locked || p.OnToggle == nil {
		return
	}
	p.OnToggle(p.items[i].Field)
}
