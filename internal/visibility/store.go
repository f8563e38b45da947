// Package visibility keeps the per-module column visibility map and
// persists it on every change.
package visibility

import (
	"maps"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/jdlms/gcz-explorer/internal/columns"
	"github.com/jdlms/gcz-explorer/internal/module"
)

// Store is the visibility state of one module. It is driven from the UI
// goroutine only and is not safe for concurrent use.
type Store struct {
	cfg *module.Config
	kv  KV
	log zerolog.Logger
	m   map[string]bool
}

// New loads the persisted map for cfg.LocalStorageKey. A missing or
// unreadable entry yields the all-visible default.
func New(cfg *module.Config, kv KV, log zerolog.Logger) *Store {
	s := &Store{
		cfg: cfg,
		kv:  kv,
		log: log.With().Str("module", cfg.ID).Logger(),
	}
	if m, ok := s.load(); ok {
		s.m = m
	} else {
		s.m = s.allVisible()
	}
	return s
}

func (s *Store) load() (map[string]bool, bool) {
	raw, ok, err := s.kv.Get(s.cfg.LocalStorageKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("read column visibility")
		return nil, false
	}
	if !ok || raw == "" {
		return nil, false
	}
	var m map[string]bool
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		s.log.Warn().Err(err).Msg("discarding corrupt column visibility")
		return nil, false
	}
	if m == nil {
		return nil, false
	}
	return m, true
}

func (s *Store) save() {
	data, err := json.Marshal(s.m)
	if err != nil {
		s.log.Warn().Err(err).Msg("encode column visibility")
		return
	}
	if err := s.kv.Set(s.cfg.LocalStorageKey, string(data)); err != nil {
		s.log.Warn().Err(err).Msg("persist column visibility")
	}
}

func (s *Store) allVisible() map[string]bool {
	m := make(map[string]bool, len(s.cfg.Columns))
	for _, col := range s.cfg.Columns {
		m[col.Field] = true
	}
	return m
}

// Toggle flips the visibility of field. The pinned field and fields that
// are not columns of the module are left alone. It reports whether the
// map changed.
func (s *Store) Toggle(field string) bool {
	if s.cfg.IsPinned(field) {
		return false
	}
	if _, ok := s.cfg.Column(field); !ok {
		return false
	}
	next := maps.Clone(s.m)
	next[field] = !s.IsVisible(field)
	s.m = next
	s.save()
	return true
}

// ShowAll makes every column visible.
func (s *Store) ShowAll() {
	s.m = s.allVisible()
	s.save()
}

// ShowRecommended shows exactly the module's recommended columns. The
// pinned column stays visible whatever its entry says.
func (s *Store) ShowRecommended() {
	m := make(map[string]bool, len(s.cfg.Columns))
	for _, col := range s.cfg.Columns {
		m[col.Field] = s.cfg.RecommendedColumns.Has(col.Field)
	}
	s.m = m
	s.save()
}

// IsVisible resolves one field with the default-visible policy.
func (s *Store) IsVisible(field string) bool {
	return s.cfg.IsPinned(field) || !columns.IsHidden(s.m, field)
}

// VisibleCount counts the module's columns that resolve to visible.
func (s *Store) VisibleCount() int {
	n := 0
	for _, col := range s.cfg.Columns {
		if s.IsVisible(col.Field) {
			n++
		}
	}
	return n
}

// Map returns a copy of the raw visibility map.
func (s *Store) Map() map[string]bool {
	return maps.Clone(s.m)
}

// Columns builds the column descriptors for the current state.
func (s *Store) Columns() []columns.Descriptor {
	return columns.Build(s.cfg, s.m)
}
