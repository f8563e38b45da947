package components

import (
	"github.com/rivo/tview"
)

// SidebarItem is one module entry.
type SidebarItem struct {
	ID   string
	Icon string
	Name string
}

// Sidebar lists the modules. Collapsed it shows icons only.
type Sidebar struct {
	*tview.List
	items    []SidebarItem
	expanded bool
	active   string
}

// Sidebar widths in cells.
const (
	SidebarExpandedWidth  = 28
	SidebarCollapsedWidth = 6
)

// NewSidebar builds a collapsed sidebar. onSelect receives the module id
// when an entry is chosen.
func NewSidebar(items []SidebarItem, onSelect func(id string)) *Sidebar {
	s := &Sidebar{List: tview.NewList(), items: items}
	s.ShowSecondaryText(false)
	s.SetHighlightFullLine(true)
	s.SetBorder(true)
	s.SetSelectedFunc(func(i int, _, _ string, _ rune) {
		if i >= 0 && i < len(s.items) && onSelect != nil {
			onSelect(s.items[i].ID)
		}
	})
	s.render()
	return s
}

// Expanded reports the current state.
func (s *Sidebar) Expanded() bool { return s.expanded }

// Width is the width the layout should give the sidebar.
func (s *Sidebar) Width() int {
	if s.expanded {
		return SidebarExpandedWidth
	}
	return SidebarCollapsedWidth
}

// SetExpanded switches between icon-only and labelled entries.
func (s *Sidebar) SetExpanded(expanded bool) {
	s.expanded = expanded
	s.render()
}

// SetActive marks the module shown in the main area.
func (s *Sidebar) SetActive(id string) {
	s.active = id
	s.render()
}

func (s *Sidebar) render() {
	current := s.GetCurrentItem()
	s.Clear()
	for _, it := range s.items {
		text := it.Icon
		if s.expanded {
			text += " " + tview.Escape(it.Name)
		}
		if it.ID == s.active {
			text = "[::b]" + text + "[::-]"
		}
		s.AddItem(text, "", 0, nil)
	}
	if s.expanded {
		s.SetTitle("Módulos")
	} else {
		s.SetTitle("")
	}
	if current >= 0 && current < len(s.items) {
		s.SetCurrentItem(current)
	}
}
