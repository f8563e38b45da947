// Package module holds the declarative per-dataset configuration and the
// compiled-in registry of every dataset the explorer can browse.
package module

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownModule is returned when a module id does not resolve.
	ErrUnknownModule = errors.New("unknown module")
	// ErrInvalidConfig wraps every registry invariant violation.
	ErrInvalidConfig = errors.New("invalid module config")
)

// DefaultMinWidth is used for columns that do not declare one.
const DefaultMinWidth = 100

// Column describes one grid column of a module.
type Column struct {
	Field      string `json:"field" yaml:"field"`
	HeaderName string `json:"headerName" yaml:"headerName"`
	MinWidth   int    `json:"minWidth,omitempty" yaml:"minWidth,omitempty"`
}

// Width returns the declared minimum width or DefaultMinWidth.
func (c Column) Width() int {
	if c.MinWidth > 0 {
		return c.MinWidth
	}
	return DefaultMinWidth
}

// FieldSet is an unordered set of field names.
type FieldSet map[string]struct{}

// NewFieldSet builds a set from the given field names.
func NewFieldSet(fields ...string) FieldSet {
	s := make(FieldSet, len(fields))
	for _, f := range fields {
		s[f] = struct{}{}
	}
	return s
}

// Has reports whether field is in the set.
func (s FieldSet) Has(field string) bool {
	_, ok := s[field]
	return ok
}

// Len returns the number of fields in the set.
func (s FieldSet) Len() int { return len(s) }

// Config is the static descriptor of one dataset. It is never mutated
// after the registry is built.
type Config struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Subtitle    string `json:"subtitle" yaml:"subtitle"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`

	RPCFunction          string   `json:"rpcFunction" yaml:"rpcFunction"`
	Schema               string   `json:"schema" yaml:"schema"`
	TableName            string   `json:"tableName" yaml:"tableName"`
	FallbackSearchFields []string `json:"fallbackSearchFields" yaml:"fallbackSearchFields"`

	Columns      []Column `json:"columns" yaml:"columns"`
	DateFields   FieldSet `json:"-" yaml:"-"`
	AmountFields FieldSet `json:"-" yaml:"-"`
	StatusField  string   `json:"statusField,omitempty" yaml:"statusField,omitempty"`
	PinnedField  string   `json:"pinnedField" yaml:"pinnedField"`

	RecommendedColumns FieldSet `json:"-" yaml:"-"`
	LocalStorageKey    string   `json:"localStorageKey" yaml:"localStorageKey"`

	SumField          string `json:"sumField" yaml:"sumField"`
	SumLabel          string `json:"sumLabel" yaml:"sumLabel"`
	SearchPlaceholder string `json:"searchPlaceholder" yaml:"searchPlaceholder"`
}

// FieldNames returns the column field names in declaration order.
func (c *Config) FieldNames() []string {
	names := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		names[i] = col.Field
	}
	return names
}

// Column looks up a column by field name.
func (c *Config) Column(field string) (Column, bool) {
	for _, col := range c.Columns {
		if col.Field == field {
			return col, true
		}
	}
	return Column{}, false
}

// IsPinned reports whether field is the module's pinned column.
func (c *Config) IsPinned(field string) bool {
	return field == c.PinnedField
}

// Validate checks the per-module invariants. Cross-module invariants are
// checked by NewRegistry.
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: module %q: %s", ErrInvalidConfig, c.ID, fmt.Sprintf(format, args...)))
	}

	if c.ID == "" {
		fail("empty id")
	}
	if c.LocalStorageKey == "" {
		fail("empty localStorageKey")
	}
	if len(c.Columns) == 0 {
		fail("no columns")
	}

	fields := make(FieldSet, len(c.Columns))
	for _, col := range c.Columns {
		if col.Field == "" {
			fail("column with empty field")
			continue
		}
		if fields.Has(col.Field) {
			fail("duplicate column %q", col.Field)
		}
		fields[col.Field] = struct{}{}
	}

	if !fields.Has(c.PinnedField) {
		fail("pinnedField %q is not a column", c.PinnedField)
	}
	if c.StatusField != "" && !fields.Has(c.StatusField) {
		fail("statusField %q is not a column", c.StatusField)
	}
	for _, set := range []struct {
		name   string
		fields FieldSet
	}{
		{"dateFields", c.DateFields},
		{"amountFields", c.AmountFields},
		{"recommendedColumns", c.RecommendedColumns},
	} {
		for f := range set.fields {
			if !fields.Has(f) {
				fail("%s entry %q is not a column", set.name, f)
			}
		}
	}
	for f := range c.DateFields {
		if c.AmountFields.Has(f) {
			fail("field %q is both a date and an amount", f)
		}
	}
	return errors.Join(errs...)
}
