package app

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdlms/gcz-explorer/internal/module"
	"github.com/jdlms/gcz-explorer/internal/render"
	"github.com/jdlms/gcz-explorer/internal/search"
	"github.com/jdlms/gcz-explorer/internal/types"
	"github.com/jdlms/gcz-explorer/internal/visibility"
)

type stubBackend struct {
	mu    sync.Mutex
	rows  []types.Row
	err   error
	terms []string
}

func (b *stubBackend) CallSearch(_ context.Context, _ string, term string) ([]types.Row, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.terms = append(b.terms, term)
	return b.rows, b.err
}

func (b *stubBackend) FallbackSearch(context.Context, search.FallbackQuery) ([]types.Row, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rows, b.err
}

func (b *stubBackend) set(rows []types.Row, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rows, b.err = rows, err
}

type harness struct {
	t       *testing.T
	state   *State
	kv      *visibility.MemoryKV
	backend *stubBackend
	updates chan func()
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		t:       t,
		kv:      visibility.NewMemoryKV(),
		backend: &stubBackend{},
		updates: make(chan func(), 256),
	}
	h.backend.set([]types.Row{
		{"id_registro": 1, "proveedor": "Acme", "total_original": "100.50", "estado": "Pagado"},
		{"id_registro": 2, "proveedor": "Beta", "total_original": 20, "estado": "Pendiente"},
	}, nil)
	h.state = CreateApp(Deps{
		Registry:  module.Builtin(),
		Backend:   h.backend,
		KV:        h.kv,
		Formatter: render.NewFormatter("en-US"),
		Logger:    zerolog.Nop(),
		Settings:  Settings{PageSize: 50, ExportDir: t.TempDir()},
		Module:    "pqt06",
	})
	h.state.queue = func(f func()) { h.updates <- f }
	t.Cleanup(h.state.Close)
	return h
}

// settle runs queued updates on the test goroutine until cond holds.
func (h *harness) settle(cond func() bool) {
	h.t.Helper()
	deadline := time.After(2 * time.Second)
	for !cond() {
		select {
		case f := <-h.updates:
			f()
		case <-deadline:
			h.t.Fatal("condition not reached")
		}
	}
}

func (h *harness) loaded() bool {
	return h.state.Search.Phase == search.Success && !h.state.Search.Loading
}

func TestStart_LoadsDefaultModule(t *testing.T) {
	h := newHarness(t)
	assert.Nil(t, h.state.Active, "nothing mounts before the welcome screen is left")

	h.state.Start("pqt06")
	h.settle(h.loaded)

	s := h.state
	assert.Equal(t, "pqt06", s.Active.ID)
	assert.Equal(t, 2, s.Model.DisplayedCount())
	assert.Equal(t, "2 resultados ", s.Header.Count.GetText(true))
	assert.Contains(t, s.MainTable.GetCell(1, 1).Text, "1")
}

func TestStart_UnknownModuleFallsBack(t *testing.T) {
	h := newHarness(t)
	h.state.Start("nope")
	assert.Equal(t, module.DefaultModuleID, h.state.Active.ID)
}

func TestActivateModule_ResetsState(t *testing.T) {
	h := newHarness(t)
	h.state.Start("pqt06")
	h.settle(h.loaded)
	first := h.state.Hook
	h.state.Model.ToggleSelect(0)

	require.NoError(t, h.state.ActivateModule("bd_valorizaciones"))
	assert.NotSame(t, first, h.state.Hook)
	assert.Equal(t, search.State{}, h.state.Search)
	assert.Zero(t, h.state.Model.SelectedCount())
	assert.Empty(t, h.state.Header.Search.GetText())

	// updates still queued for the old hook change nothing
	h.state.syncSearch(first)
	assert.Equal(t, search.State{}, h.state.Search)

	h.settle(h.loaded)
	assert.Equal(t, "bd_valorizaciones", h.state.Active.ID)

	assert.ErrorIs(t, h.state.ActivateModule("nope"), module.ErrUnknownModule)
}

func TestColumnPanel_TogglePersists(t *testing.T) {
	h := newHarness(t)
	h.state.Start("pqt06")
	before := len(h.state.Model.Columns())

	h.state.ColumnPanel.OnToggle("proveedor")
	assert.Len(t, h.state.Model.Columns(), before-1)
	raw, ok, err := h.kv.Get("pqt06-column-visibility")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"proveedor":false`)

	h.state.ColumnPanel.OnToggle("id_registro")
	assert.Len(t, h.state.Model.Columns(), before-1, "the pinned column cannot be hidden")

	h.state.ColumnPanel.OnShowAll()
	assert.Len(t, h.state.Model.Columns(), before)
}

func TestSelectionBar(t *testing.T) {
	h := newHarness(t)
	h.state.Start("pqt06")
	h.settle(h.loaded)

	h.state.MainTable.Select(1, 1)
	h.state.ToggleCurrentRow()
	text := h.state.SelectionBar.GetText(true)
	assert.Contains(t, text, "1 registro seleccionado")
	assert.Contains(t, text, "Suma Total Original: 100.50")

	h.state.Model.SelectAllPage()
	h.state.refresh()
	text = h.state.SelectionBar.GetText(true)
	assert.Contains(t, text, "2 registros seleccionados")
	assert.Contains(t, text, "120.50")
}

func TestErrorBannerAndRetry(t *testing.T) {
	h := newHarness(t)
	h.backend.set(nil, errors.New("sin conexión"))
	h.state.Start("pqt06")
	h.settle(func() bool { return h.state.Search.Phase == search.Failed })

	assert.Contains(t, h.state.Banner.GetText(true), "sin conexión")
	assert.Contains(t, h.state.Banner.GetText(true), "Reintentar")
	assert.Contains(t, h.state.MainTable.GetCell(1, 1).Text, "Sin registros")

	h.backend.set([]types.Row{{"id_registro": 9}}, nil)
	h.state.Retry()
	h.settle(h.loaded)
	assert.Equal(t, 1, h.state.Model.DisplayedCount())
	assert.Empty(t, h.state.Search.Err)
}

func TestExport(t *testing.T) {
	h := newHarness(t)
	h.state.Start("pqt06")
	h.settle(h.loaded)

	h.state.Export()
	assert.Contains(t, h.state.Banner.GetText(true), "Exportado a")

	entries, err := os.ReadDir(h.state.Settings.ExportDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Regexp(t, `^pqt06-\d{8}-\d{6}\.csv$`, entries[0].Name())
}

func TestCopySelection_NothingSelected(t *testing.T) {
	h := newHarness(t)
	h.state.Start("pqt06")
	h.settle(h.loaded)

	assert.ErrorIs(t, h.state.copySelection(), errNoSelection)
	h.state.CopySelection()
	assert.Contains(t, h.state.Banner.GetText(true), "No hay registros seleccionados")
}

func TestSearchTyping(t *testing.T) {
	h := newHarness(t)
	h.state.Settings.Debounce = time.Millisecond
	h.state.Start("pqt06")
	h.settle(h.loaded)

	h.state.Header.Search.SetText("acme")
	h.settle(func() bool {
		return h.loaded() && h.state.Search.Version == 2
	})
	h.backend.mu.Lock()
	defer h.backend.mu.Unlock()
	assert.Equal(t, []string{"", "acme"}, h.backend.terms)
	assert.Equal(t, "acme", h.state.Search.Query)
}
