package render_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jdlms/gcz-explorer/internal/render"
)

func TestAmount(t *testing.T) {
	f := render.NewFormatter("en-US")

	tests := []struct {
		name  string
		in    any
		want  string
		raw   bool
		empty bool
	}{
		{name: "float", in: 1234.5, want: "1,234.50"},
		{name: "int", in: 1000000, want: "1,000,000.00"},
		{name: "decimal", in: decimal.RequireFromString("98765.4321"), want: "98,765.43"},
		{name: "numeric string", in: " 12.3 ", want: "12.30"},
		{name: "negative", in: -5, want: "-5.00"},
		{name: "zero", in: 0, want: "0.00"},
		{name: "beyond float precision", in: decimal.RequireFromString("12345678901234567.89"), want: "12,345,678,901,234,567.89"},
		{name: "rounds half away from zero", in: "2.005", want: "2.01"},
		{name: "negative with grouping", in: "-1234567.891", want: "-1,234,567.89"},
		{name: "not a number", in: "abc", want: "abc", raw: true},
		{name: "nil", in: nil, empty: true},
		{name: "blank", in: "  ", empty: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Amount(tt.in)
			assert.Equal(t, tt.empty, got.Empty)
			assert.Equal(t, tt.raw, got.Raw)
			if !tt.empty {
				assert.Equal(t, tt.want, got.Text)
			}
		})
	}
}

func TestDate(t *testing.T) {
	f := render.NewFormatter("en-US")

	tests := []struct {
		name  string
		in    any
		want  string
		raw   bool
		empty bool
	}{
		{name: "date only stays on its day", in: "2026-03-01", want: "01/03/2026"},
		{name: "timestamp with offset is read in UTC", in: "2026-03-01T23:30:00-05:00", want: "02/03/2026"},
		{name: "timestamp without zone", in: "2026-12-31 22:15:00", want: "31/12/2026"},
		{name: "time value", in: time.Date(2026, 3, 1, 0, 0, 0, 0, time.FixedZone("PET", -5*3600)), want: "01/03/2026"},
		{name: "not a date", in: "not-a-date", want: "not-a-date", raw: true},
		{name: "nil", in: nil, empty: true},
		{name: "empty", in: "", empty: true},
		{name: "numeric zero", in: 0, empty: true},
		{name: "zero decimal", in: decimal.Zero, empty: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Date(tt.in)
			assert.Equal(t, tt.empty, got.Empty)
			assert.Equal(t, tt.raw, got.Raw)
			if !tt.empty {
				assert.Equal(t, tt.want, got.Text)
			}
		})
	}
}

func TestStatusBadge(t *testing.T) {
	tests := []struct {
		in   any
		want render.Category
	}{
		{"PAGADO", render.StatusPositive},
		{"Pagado parcialmente", render.StatusPositive},
		{"  anulado ", render.StatusNegative},
		{"Cancelado", render.StatusNegative},
		{"Pendiente", render.StatusPending},
		{"En proceso", render.StatusPending},
		{"si", render.StatusPositive},
		{" SI ", render.StatusPositive},
		{"no", render.StatusNegative},
		{"parcial", render.StatusPending},
		{"nota", render.StatusUnknown},
		{"Observado", render.StatusUnknown},
	}
	for _, tt := range tests {
		got := render.StatusBadge(tt.in)
		assert.True(t, got.Badge, tt.in)
		assert.Equal(t, tt.want, got.Category, tt.in)
		assert.Equal(t, tt.in, got.Text, "label keeps the original text")
	}

	assert.True(t, render.StatusBadge("").Empty)
	assert.True(t, render.StatusBadge(nil).Empty)
}

func TestForVariant(t *testing.T) {
	f := render.NewFormatter("en-US")

	assert.Equal(t, "1,234.50", f.ForVariant(render.Amount).Present(1234.5).Text)
	assert.Equal(t, "01/03/2026", f.ForVariant(render.Date).Present("2026-03-01").Text)
	assert.True(t, f.ForVariant(render.Status).Present("pagado").Badge)
	assert.Equal(t, "42", f.ForVariant(render.Plain).Present(42).Text)
	assert.True(t, f.ForVariant(render.Plain).Present(nil).Empty)
}

func TestNewFormatter_BadLocale(t *testing.T) {
	f := render.NewFormatter("???")
	assert.Equal(t, render.DefaultLocale, f.Locale().String())
}

func TestSumField(t *testing.T) {
	rows := []map[string]any{
		{"total": 100.25},
		{"total": "50.50"},
		{"total": "n/a"},
		{"total": nil},
		{"other": 1},
		{"total": decimal.RequireFromString("0.25")},
	}
	assert.True(t, decimal.RequireFromString("151").Equal(render.SumField(rows, "total")))
	assert.True(t, render.SumField(nil, "total").IsZero())
}

func TestSelectionLabel(t *testing.T) {
	assert.Equal(t, "1 registro seleccionado", render.SelectionLabel(1))
	assert.Equal(t, "3 registros seleccionados", render.SelectionLabel(3))
}
