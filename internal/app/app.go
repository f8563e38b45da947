package app

import (
	"github.com/jonboulle/clockwork"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/jdlms/gcz-explorer/internal/module"
	"github.com/jdlms/gcz-explorer/internal/render"
	"github.com/jdlms/gcz-explorer/internal/search"
	"github.com/jdlms/gcz-explorer/internal/ui"
	"github.com/jdlms/gcz-explorer/internal/ui/components"
	"github.com/jdlms/gcz-explorer/internal/visibility"
)

// Page names.
const (
	pageWelcome = "welcome"
	pageMain    = "main"
	pageFilter  = "filter"
)

// Deps are the collaborators the app is built from.
type Deps struct {
	Registry  *module.Registry
	Backend   search.Backend
	KV        visibility.KV
	Formatter *render.Formatter
	Logger    zerolog.Logger
	Settings  Settings
	// Module is the module shown after the welcome screen.
	Module string
	// Clock drives search debouncing; nil means the real clock.
	Clock clockwork.Clock
}

// CreateApp initializes and returns the application state. Nothing is
// fetched until the user leaves the welcome screen.
func CreateApp(d Deps) *State {
	ui.SetupRosePineTheme()

	if d.Formatter == nil {
		d.Formatter = render.NewFormatter(render.DefaultLocale)
	}
	state := &State{
		Registry:  d.Registry,
		Backend:   d.Backend,
		KV:        d.KV,
		Formatter: d.Formatter,
		Log:       d.Logger,
		Settings:  d.Settings,
		Clock:     d.Clock,
	}

	// Create components
	state.Header = components.NewHeader()
	state.Footer = components.NewFooter(footerHelp)
	state.MainTable = ui.CreateMainTable()
	state.Banner = ui.CreateBanner()
	state.SelectionBar = ui.CreateSelectionBar()
	state.ColumnPanel = components.NewColumnPanel()

	modules := d.Registry.List()
	items := make([]components.SidebarItem, len(modules))
	for i, m := range modules {
		items[i] = components.SidebarItem{ID: m.ID, Icon: m.Icon, Name: m.Name}
	}
	state.Sidebar = components.NewSidebar(items, func(id string) {
		if err := state.ActivateModule(id); err != nil {
			state.Log.Error().Err(err).Str("module", id).Msg("cannot activate module")
			return
		}
		state.App.SetFocus(state.MainTable)
	})

	state.Layout = ui.SetupLayout(ui.LayoutParts{
		Header:       state.Header,
		Sidebar:      state.Sidebar,
		SidebarWidth: state.Sidebar.Width(),
		Banner:       state.Banner,
		Table:        state.MainTable,
		SelectionBar: state.SelectionBar,
		ColumnPanel:  state.ColumnPanel,
		Footer:       state.Footer,
	})

	state.Pages = tview.NewPages().
		AddPage(pageMain, state.Layout.Root, true, false).
		AddPage(pageWelcome, components.NewWelcome(func() { state.Start(d.Module) }), true, true)

	// Create application
	state.App = tview.NewApplication().
		SetRoot(state.Pages, true).
		EnableMouse(true)
	state.queue = func(f func()) {
		// QueueUpdateDraw waits for the event loop; never call it from there
		go state.App.QueueUpdateDraw(f)
	}

	wireWidgets(state)
	SetupKeyBindings(state)
	return state
}

// Start leaves the welcome screen and mounts the module id, or the
// registry default when id does not resolve.
func (s *State) Start(id string) {
	if s.Started {
		return
	}
	s.Started = true
	s.Pages.SwitchToPage(pageMain)

	if err := s.ActivateModule(id); err != nil {
		s.Log.Warn().Err(err).Str("module", id).Msg("falling back to default module")
		_ = s.ActivateModule(s.Registry.Default(module.DefaultModuleID).ID)
	}
	s.App.SetFocus(s.Header.Search)
}

// Run starts the event loop and closes the active hook when it ends.
func (s *State) Run() error {
	defer s.Close()
	return s.App.Run()
}
