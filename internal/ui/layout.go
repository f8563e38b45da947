package ui

import (
	"github.com/rivo/tview"
)

// Layout is the main screen: header on top, footer at the bottom, and in
// between the sidebar, the results area and the column panel.
type Layout struct {
	Root *tview.Flex
	Body *tview.Flex
	Main *tview.Flex
}

// LayoutParts are the widgets the layout arranges.
type LayoutParts struct {
	Header       tview.Primitive
	Sidebar      tview.Primitive
	SidebarWidth int
	Banner       tview.Primitive
	Table        tview.Primitive
	SelectionBar tview.Primitive
	ColumnPanel  tview.Primitive
	Footer       tview.Primitive
}

// SetupLayout builds the layout with the banner, selection bar and column
// panel collapsed.
func SetupLayout(p LayoutParts) *Layout {
	main := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(p.Banner, 0, 0, false).
		AddItem(p.Table, 0, 1, true).
		AddItem(p.SelectionBar, 0, 0, false)

	body := tview.NewFlex().
		AddItem(p.Sidebar, p.SidebarWidth, 0, false).
		AddItem(main, 0, 1, true).
		AddItem(p.ColumnPanel, 0, 0, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(p.Header, 3, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(p.Footer, 3, 0, false)

	return &Layout{Root: root, Body: body, Main: main}
}

// SetWidth resizes a body column (sidebar or panel); 0 hides it.
func (l *Layout) SetWidth(item tview.Primitive, width int) {
	l.Body.ResizeItem(item, width, 0)
}

// SetLineVisible shows or hides a one-line row of the results area.
func (l *Layout) SetLineVisible(item tview.Primitive, visible bool) {
	height := 0
	if visible {
		height = 1
	}
	l.Main.ResizeItem(item, height, 0)
}
