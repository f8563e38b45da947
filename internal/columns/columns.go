// Package columns maps a module config and a visibility map onto the grid's
// column descriptors.
package columns

import (
	"github.com/jdlms/gcz-explorer/internal/module"
	"github.com/jdlms/gcz-explorer/internal/render"
)

// PinnedMaxWidth caps the width of the pinned identifier column.
const PinnedMaxWidth = 100

// Pin is a column's pinned placement.
type Pin int

const (
	PinNone Pin = iota
	PinLeft
)

// Descriptor is everything the grid needs to lay out and paint a column.
type Descriptor struct {
	Field    string
	Header   string
	MinWidth int
	MaxWidth int // 0 means unbounded
	Hidden   bool
	Variant  render.Variant

	Pinned     Pin
	LockPinned bool // user can neither unpin nor move it
	Muted      bool // monospace, muted identifier styling

	Sortable   bool
	Filterable bool
	Movable    bool
}

// Visible is the inverse of Hidden.
func (d Descriptor) Visible() bool { return !d.Hidden }

// Build returns one descriptor per configured column, in config order.
// Only an explicit false in visibility hides a column, and the pinned
// field is never hidden.
func Build(cfg *module.Config, visibility map[string]bool) []Descriptor {
	defs := make([]Descriptor, 0, len(cfg.Columns))
	for _, col := range cfg.Columns {
		pinned := cfg.IsPinned(col.Field)
		def := Descriptor{
			Field:      col.Field,
			Header:     col.HeaderName,
			MinWidth:   col.Width(),
			Hidden:     !pinned && IsHidden(visibility, col.Field),
			Variant:    VariantFor(cfg, col.Field),
			Sortable:   true,
			Filterable: true,
		}
		if pinned {
			def.MaxWidth = PinnedMaxWidth
			def.Pinned = PinLeft
			def.LockPinned = true
			def.Muted = true
		}
		defs = append(defs, def)
	}
	return defs
}

// IsHidden applies the default-visible policy to a single field.
func IsHidden(visibility map[string]bool, field string) bool {
	v, ok := visibility[field]
	return ok && !v
}

// VariantFor picks the presentation variant of a field. Status wins over
// date, and date over amount, should a config ever overlap them.
func VariantFor(cfg *module.Config, field string) render.Variant {
	switch {
	case cfg.StatusField != "" && field == cfg.StatusField:
		return render.Status
	case cfg.DateFields.Has(field):
		return render.Date
	case cfg.AmountFields.Has(field):
		return render.Amount
	default:
		return render.Plain
	}
}

// VisibleDescriptors filters defs down to the shown columns, pinned first.
func VisibleDescriptors(defs []Descriptor) []Descriptor {
	out := make([]Descriptor, 0, len(defs))
	for _, d := range defs {
		if d.Visible() && d.Pinned == PinLeft {
			out = append(out, d)
		}
	}
	for _, d := range defs {
		if d.Visible() && d.Pinned != PinLeft {
			out = append(out, d)
		}
	}
	return out
}
