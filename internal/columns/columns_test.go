package columns_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdlms/gcz-explorer/internal/columns"
	"github.com/jdlms/gcz-explorer/internal/module"
	"github.com/jdlms/gcz-explorer/internal/render"
)

func testConfig() *module.Config {
	return &module.Config{
		ID: "facturas",
		Columns: []module.Column{
			{Field: "estado", HeaderName: "Estado", MinWidth: 120},
			{Field: "id", HeaderName: "ID", MinWidth: 80},
			{Field: "fecha", HeaderName: "Fecha"},
			{Field: "total", HeaderName: "Total"},
			{Field: "proveedor", HeaderName: "Proveedor", MinWidth: 200},
		},
		DateFields:      module.NewFieldSet("fecha"),
		AmountFields:    module.NewFieldSet("total"),
		StatusField:     "estado",
		PinnedField:     "id",
		LocalStorageKey: "facturas-column-visibility",
	}
}

func TestBuild(t *testing.T) {
	cfg := testConfig()
	got := columns.Build(cfg, map[string]bool{"id": false, "total": false, "fecha": true})

	want := []columns.Descriptor{
		{Field: "estado", Header: "Estado", MinWidth: 120, Variant: render.Status, Sortable: true, Filterable: true},
		{Field: "id", Header: "ID", MinWidth: 80, MaxWidth: columns.PinnedMaxWidth, Variant: render.Plain,
			Pinned: columns.PinLeft, LockPinned: true, Muted: true, Sortable: true, Filterable: true},
		{Field: "fecha", Header: "Fecha", MinWidth: module.DefaultMinWidth, Variant: render.Date, Sortable: true, Filterable: true},
		{Field: "total", Header: "Total", MinWidth: module.DefaultMinWidth, Hidden: true, Variant: render.Amount, Sortable: true, Filterable: true},
		{Field: "proveedor", Header: "Proveedor", MinWidth: 200, Variant: render.Plain, Sortable: true, Filterable: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_PreservesLengthAndOrder(t *testing.T) {
	for _, cfg := range module.Builtin().List() {
		for _, vis := range []map[string]bool{nil, {}, allFalse(cfg)} {
			defs := columns.Build(cfg, vis)
			require.Len(t, defs, len(cfg.Columns), cfg.ID)
			for i, d := range defs {
				assert.Equal(t, cfg.Columns[i].Field, d.Field)
			}
		}
	}
}

func TestBuild_PinnedAlwaysVisible(t *testing.T) {
	cfg := module.Builtin().Default(module.DefaultModuleID)
	defs := columns.Build(cfg, allFalse(cfg))

	visible := columns.VisibleDescriptors(defs)
	require.Len(t, visible, 1)
	assert.Equal(t, cfg.PinnedField, visible[0].Field)
}

func TestVariantFor_StatusWinsOverlap(t *testing.T) {
	cfg := testConfig()
	cfg.DateFields = module.NewFieldSet("fecha", "estado")
	assert.Equal(t, render.Status, columns.VariantFor(cfg, "estado"))

	cfg.StatusField = ""
	assert.Equal(t, render.Date, columns.VariantFor(cfg, "estado"))
}

func TestVisibleDescriptors_PinnedFirst(t *testing.T) {
	defs := columns.Build(testConfig(), map[string]bool{"fecha": false})
	got := columns.VisibleDescriptors(defs)

	fields := make([]string, len(got))
	for i, d := range got {
		fields[i] = d.Field
	}
	assert.Equal(t, []string{"id", "estado", "total", "proveedor"}, fields)
}

func allFalse(cfg *module.Config) map[string]bool {
	m := make(map[string]bool, len(cfg.Columns))
	for _, f := range cfg.FieldNames() {
		m[f] = false
	}
	return m
}
