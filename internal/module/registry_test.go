package module_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdlms/gcz-explorer/internal/module"
)

func validConfig(id string) module.Config {
	return module.Config{
		ID:              id,
		Name:            "Test " + id,
		RPCFunction:     "buscar_" + id,
		Schema:          "public",
		TableName:       id,
		Columns:         []module.Column{{Field: "id", HeaderName: "ID"}, {Field: "fecha", HeaderName: "Fecha"}, {Field: "monto", HeaderName: "Monto", MinWidth: 140}},
		DateFields:      module.NewFieldSet("fecha"),
		AmountFields:    module.NewFieldSet("monto"),
		PinnedField:     "id",
		LocalStorageKey: id + "-column-visibility",
	}
}

func TestBuiltinRegistry(t *testing.T) {
	reg := module.Builtin()

	mods := reg.List()
	require.Len(t, mods, 2)
	assert.Equal(t, "pqt06", mods[0].ID)
	assert.Equal(t, "bd_valorizaciones", mods[1].ID)

	def := reg.Default(module.DefaultModuleID)
	assert.Equal(t, "id_registro", def.PinnedField)
	assert.Equal(t, "estado", def.StatusField)
	assert.Equal(t, []string{"proveedor", "documento_identidad", "empresa"}, def.FallbackSearchFields)

	for _, cfg := range mods {
		assert.NoError(t, cfg.Validate(), cfg.ID)
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	reg := module.Builtin()

	_, ok := reg.Get("nope")
	assert.False(t, ok)

	_, err := reg.Lookup("nope")
	assert.ErrorIs(t, err, module.ErrUnknownModule)
	assert.Panics(t, func() { reg.Default("nope") })
}

func TestRegistry_ListIsACopy(t *testing.T) {
	reg := module.MustRegistry(validConfig("a"), validConfig("b"))

	mods := reg.List()
	mods[0] = nil

	again := reg.List()
	require.NotNil(t, again[0])
	assert.Equal(t, "a", again[0].ID)
}

func TestNewRegistry_Invariants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*module.Config)
	}{
		{"pinned not a column", func(c *module.Config) { c.PinnedField = "missing" }},
		{"status not a column", func(c *module.Config) { c.StatusField = "missing" }},
		{"date not a column", func(c *module.Config) { c.DateFields = module.NewFieldSet("missing") }},
		{"amount not a column", func(c *module.Config) { c.AmountFields = module.NewFieldSet("missing") }},
		{"recommended not a column", func(c *module.Config) { c.RecommendedColumns = module.NewFieldSet("missing") }},
		{"date and amount overlap", func(c *module.Config) { c.AmountFields = module.NewFieldSet("fecha", "monto") }},
		{"duplicate column", func(c *module.Config) {
			c.Columns = append(c.Columns, module.Column{Field: "monto", HeaderName: "Otra"})
		}},
		{"empty storage key", func(c *module.Config) { c.LocalStorageKey = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig("x")
			tt.mutate(&cfg)
			_, err := module.NewRegistry(cfg)
			assert.ErrorIs(t, err, module.ErrInvalidConfig)
		})
	}
}

func TestNewRegistry_CrossModule(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		b := validConfig("a")
		b.LocalStorageKey = "other"
		_, err := module.NewRegistry(validConfig("a"), b)
		assert.ErrorIs(t, err, module.ErrInvalidConfig)
	})

	t.Run("shared storage key", func(t *testing.T) {
		b := validConfig("b")
		b.LocalStorageKey = "a-column-visibility"
		_, err := module.NewRegistry(validConfig("a"), b)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "a-column-visibility")
	})
}

func TestColumnWidthDefault(t *testing.T) {
	cfg := validConfig("a")
	col, ok := cfg.Column("id")
	require.True(t, ok)
	assert.Equal(t, module.DefaultMinWidth, col.Width())

	col, ok = cfg.Column("monto")
	require.True(t, ok)
	assert.Equal(t, 140, col.Width())

	assert.Equal(t, []string{"id", "fecha", "monto"}, cfg.FieldNames())
	assert.True(t, cfg.IsPinned("id"))
	assert.False(t, cfg.IsPinned("monto"))
}
