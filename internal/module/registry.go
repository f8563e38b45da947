package module

import (
	"errors"
	"fmt"
)

// DefaultModuleID is the module shown when the explorer starts.
const DefaultModuleID = "pqt06"

// Registry is an ordered, immutable list of module configs.
type Registry struct {
	modules []*Config
	byID    map[string]*Config
}

// NewRegistry validates every config and the cross-module invariants
// (unique ids, unique storage keys) and returns the registry.
func NewRegistry(cfgs ...Config) (*Registry, error) {
	r := &Registry{
		modules: make([]*Config, 0, len(cfgs)),
		byID:    make(map[string]*Config, len(cfgs)),
	}
	storageKeys := make(map[string]string, len(cfgs))

	var errs []error
	for i := range cfgs {
		cfg := cfgs[i]
		if err := cfg.Validate(); err != nil {
			errs = append(errs, err)
		}
		if _, dup := r.byID[cfg.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: duplicate module id %q", ErrInvalidConfig, cfg.ID))
			continue
		}
		if owner, dup := storageKeys[cfg.LocalStorageKey]; dup && cfg.LocalStorageKey != "" {
			errs = append(errs, fmt.Errorf("%w: localStorageKey %q shared by %q and %q",
				ErrInvalidConfig, cfg.LocalStorageKey, owner, cfg.ID))
		}
		storageKeys[cfg.LocalStorageKey] = cfg.ID
		r.modules = append(r.modules, &cfg)
		r.byID[cfg.ID] = &cfg
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// MustRegistry is NewRegistry for compiled-in configs; an invalid
// config is a programming error.
func MustRegistry(cfgs ...Config) *Registry {
	r, err := NewRegistry(cfgs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Builtin returns the registry of compiled-in modules.
func Builtin() *Registry {
	return builtin
}

var builtin = MustRegistry(PQT06, BDValorizaciones)

// List returns the modules in registration order.
func (r *Registry) List() []*Config {
	out := make([]*Config, len(r.modules))
	copy(out, r.modules)
	return out
}

// Get resolves a module id.
func (r *Registry) Get(id string) (*Config, bool) {
	cfg, ok := r.byID[id]
	return cfg, ok
}

// Lookup is Get returning ErrUnknownModule when id does not resolve.
func (r *Registry) Lookup(id string) (*Config, error) {
	cfg, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModule, id)
	}
	return cfg, nil
}

// Default returns the module for id, panicking if it is not registered.
func (r *Registry) Default(id string) *Config {
	cfg, err := r.Lookup(id)
	if err != nil {
		panic(err)
	}
	return cfg
}
