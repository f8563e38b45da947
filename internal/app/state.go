// state.go - module activation and screen refresh
package app

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/jdlms/gcz-explorer/internal/grid"
	"github.com/jdlms/gcz-explorer/internal/module"
	"github.com/jdlms/gcz-explorer/internal/render"
	"github.com/jdlms/gcz-explorer/internal/search"
	"github.com/jdlms/gcz-explorer/internal/ui"
	"github.com/jdlms/gcz-explorer/internal/ui/components"
	"github.com/jdlms/gcz-explorer/internal/visibility"
)

// Settings are the tunables the app reads from configuration.
type Settings struct {
	Debounce      time.Duration
	FallbackLimit int
	Timeout       time.Duration
	PageSize      int
	ExportDir     string
}

// State holds the application state. Everything except the search hook
// is touched from the tview event goroutine only; hooks hand their
// changes over through queue.
type State struct {
	App          *tview.Application
	Pages        *tview.Pages
	Layout       *ui.Layout
	Sidebar      *components.Sidebar
	Header       *components.Header
	Banner       *tview.TextView
	MainTable    *tview.Table
	ColumnPanel  *components.ColumnPanel
	SelectionBar *tview.TextView
	Footer       *tview.TextView

	Registry  *module.Registry
	Backend   search.Backend
	KV        visibility.KV
	Formatter *render.Formatter
	Log       zerolog.Logger
	Settings  Settings
	Clock     clockwork.Clock

	Active     *module.Config
	Hook       *search.Hook
	Search     search.State
	Visibility *visibility.Store
	Model      *grid.Model
	PanelOpen  bool
	Started    bool

	notice string
	// queue runs f on the event goroutine.
	queue func(f func())
}

// ActivateModule tears down the current module and mounts id with fresh
// search, visibility and grid state.
func (s *State) ActivateModule(id string) error {
	cfg, err := s.Registry.Lookup(id)
	if err != nil {
		return err
	}

	if s.Hook != nil {
		s.Hook.Close()
	}
	// detach before clearing the box so the change handler sees no hook
	s.Hook = nil
	s.Header.Search.SetText("")

	s.Active = cfg
	s.Search = search.State{}
	s.notice = ""
	s.Visibility = visibility.New(cfg, s.KV, s.Log)
	s.Model = grid.New()
	if err := s.Model.SetPageSize(s.Settings.PageSize); err != nil {
		s.Log.Warn().Err(err).Msg("keeping default page size")
	}
	s.Model.SetColumns(s.Visibility.Columns())

	var hook *search.Hook
	hook = search.New(cfg, s.Backend, search.Options{
		Debounce:      s.Settings.Debounce,
		FallbackLimit: s.Settings.FallbackLimit,
		Timeout:       s.Settings.Timeout,
		Clock:         s.Clock,
		Logger:        s.Log,
		OnChange: func(search.State) {
			s.queue(func() { s.syncSearch(hook) })
		},
	})
	s.Hook = hook

	s.Header.SetModule(cfg.Icon, cfg.Name, cfg.Subtitle, cfg.SearchPlaceholder)
	s.Sidebar.SetActive(cfg.ID)
	s.MainTable.Select(1, 1)
	s.refresh()

	s.Log.Info().Str("module", cfg.ID).Msg("module activated")
	go func() { _ = hook.InitialFetch(context.Background()) }()
	return nil
}

// syncSearch copies the hook's latest state into the screen. Snapshots
// from a hook that is no longer active are dropped.
func (s *State) syncSearch(hook *search.Hook) {
	if hook == nil || s.Hook != hook {
		return
	}
	st := hook.State()
	prev := s.Search
	s.Search = st
	if st.Loading && !prev.Loading {
		s.notice = ""
	}
	if st.Version != prev.Version {
		s.Model.SetRows(st.Rows)
	}
	s.refresh()
}

// Retry refetches the current query.
func (s *State) Retry() {
	if hook := s.Hook; hook != nil {
		go func() { _ = hook.Retry(context.Background()) }()
	}
}

// Notify shows msg in the banner until the next fetch starts.
func (s *State) Notify(msg string) {
	s.notice = msg
	s.refresh()
}

// refresh repaints everything derived from the model and search state.
func (s *State) refresh() {
	if s.Active == nil {
		return
	}
	row, col := s.MainTable.GetSelection()

	field, dir := s.Model.Sort()
	filters := map[string]bool{}
	for _, c := range s.Model.Columns() {
		if s.Model.Filter(c.Field) != "" {
			filters[c.Field] = true
		}
	}
	ui.PopulateTable(s.MainTable, ui.TableView{
		Columns:   s.Model.Columns(),
		Rows:      s.Model.Page(),
		Selected:  s.Model.IsSelected,
		Formatter: s.Formatter,
		Loading:   s.Search.Loading,
		SortField: field,
		SortDesc:  dir == grid.Descending,
		Filters:   filters,
		Page:      s.Model.PageIndex(),
		PageCount: s.Model.PageCount(),
		PageSize:  s.Model.PageSize(),
	})
	s.MainTable.Select(max(row, 1), max(col, 0))
	s.Header.SetCount(len(s.Search.Rows))

	n := s.Model.SelectedCount()
	if n > 0 {
		sum := render.SumField(s.Model.SelectedRows(), s.Active.SumField)
		s.SelectionBar.SetText(ui.SelectionSummary(render.SelectionLabel(n), s.Active.SumLabel, s.Formatter.Decimal(sum)))
	}
	s.Layout.SetLineVisible(s.SelectionBar, n > 0)

	switch {
	case s.Search.Err != "":
		ui.SetBannerError(s.Banner, s.Search.Err)
	case s.notice != "":
		ui.SetBannerNotice(s.Banner, s.notice)
	}
	s.Layout.SetLineVisible(s.Banner, s.Search.Err != "" || s.notice != "")

	s.refreshPanel()
}

func (s *State) refreshPanel() {
	items := make([]components.PanelItem, len(s.Active.Columns))
	for i, c := range s.Active.Columns {
		items[i] = components.PanelItem{
			Field:   c.Field,
			Header:  c.HeaderName,
			Visible: s.Visibility.IsVisible(c.Field),
			Locked:  s.Active.IsPinned(c.Field),
		}
	}
	s.ColumnPanel.SetItems(items, s.Visibility.VisibleCount())
}

// columnsChanged pushes the visibility state into the grid.
func (s *State) columnsChanged() {
	s.Model.SetColumns(s.Visibility.Columns())
	s.refresh()
}

// Close releases the active hook.
func (s *State) Close() {
	if s.Hook != nil {
		s.Hook.Close()
		s.Hook = nil
	}
}
