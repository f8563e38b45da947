// Package search owns the query state of the active module: the search
// text, the last fetched rows, the loading flag and the error banner.
package search

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/jdlms/gcz-explorer/internal/module"
	"github.com/jdlms/gcz-explorer/internal/types"
)

// DefaultDebounce is the quiet period before a typed search runs.
const DefaultDebounce = 400 * time.Millisecond

var (
	// ErrClosed is returned by fetches on a hook that was torn down.
	ErrClosed = errors.New("search hook closed")
	// ErrSuperseded is returned when a newer fetch started before this one
	// finished; its rows were discarded.
	ErrSuperseded = errors.New("search superseded by a newer one")
)

// Phase is the fetch state machine position.
type Phase int

const (
	Idle Phase = iota
	Loading
	Success
	Failed
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Source tells which read produced the current rows.
type Source int

const (
	SourceNone Source = iota
	SourcePrimary
	SourceFallback
)

// State is a snapshot of the hook. Rows is replaced wholesale on every
// successful fetch and must be treated as read-only.
type State struct {
	Query   string
	Rows    []types.Row
	Loading bool
	Err     string
	Phase   Phase
	Source  Source
	// Version is bumped every time Rows is replaced.
	Version uint64
}

// Options tunes a Hook. Zero values pick the defaults.
type Options struct {
	Debounce      time.Duration
	FallbackLimit int
	Timeout       time.Duration
	Clock         clockwork.Clock
	Logger        zerolog.Logger
	// OnChange receives a snapshot after every state change. It runs on
	// whichever goroutine made the change.
	OnChange func(State)
}

// Hook is the data access state of one module. A new Hook is created
// every time a module becomes active and closed when it stops being so.
type Hook struct {
	cfg      *module.Config
	backend  Backend
	log      zerolog.Logger
	limit    int
	timeout  time.Duration
	onChange func(State)
	debounce *Debouncer

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	state  State
	seq    uint64
	closed bool
}

// New creates the hook for cfg. Nothing is fetched until InitialFetch.
func New(cfg *module.Config, backend Backend, opts Options) *Hook {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.FallbackLimit <= 0 {
		opts.FallbackLimit = DefaultFallbackLimit
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Hook{
		cfg:      cfg,
		backend:  backend,
		log:      opts.Logger.With().Str("module", cfg.ID).Logger(),
		limit:    opts.FallbackLimit,
		timeout:  opts.Timeout,
		onChange: opts.OnChange,
		debounce: NewDebouncer(opts.Debounce, opts.Clock),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Config is the module this hook serves.
func (h *Hook) Config() *module.Config { return h.cfg }

// State returns the current snapshot.
func (h *Hook) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// HandleSearchChange echoes value into the query at once and schedules a
// fetch for it after the debounce window.
func (h *Hook) HandleSearchChange(value string) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.state.Query = value
	snapshot := h.state
	h.mu.Unlock()
	h.notify(snapshot)

	h.debounce.Trigger(func() {
		_ = h.FetchData(h.ctx, value)
	})
}

// InitialFetch loads the unfiltered result set.
func (h *Hook) InitialFetch(ctx context.Context) error {
	return h.FetchData(ctx, "")
}

// Retry fetches again for the current query.
func (h *Hook) Retry(ctx context.Context) error {
	return h.FetchData(ctx, h.State().Query)
}

// FetchData runs the search procedure for term and, if it fails, the
// fallback table read. On success the rows are replaced; if both reads
// fail the previous rows are kept and the error is surfaced.
func (h *Hook) FetchData(ctx context.Context, term string) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrClosed
	}
	h.seq++
	seq := h.seq
	h.state.Loading = true
	h.state.Phase = Loading
	h.state.Err = ""
	snapshot := h.state
	h.mu.Unlock()
	h.notify(snapshot)

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(h.ctx, cancel)
	defer stop()

	started := time.Now()
	rows, source, err := h.fetch(ctx, term)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrClosed
	}
	if seq != h.seq {
		h.mu.Unlock()
		h.log.Debug().Str("term", term).Msg("discarding superseded search result")
		return ErrSuperseded
	}
	h.state.Loading = false
	if err != nil {
		h.state.Phase = Failed
		h.state.Err = ErrorMessage(err)
	} else {
		if rows == nil {
			rows = []types.Row{}
		}
		h.state.Rows = rows
		h.state.Version++
		h.state.Phase = Success
		h.state.Source = source
	}
	snapshot = h.state
	h.mu.Unlock()
	h.notify(snapshot)

	if err != nil {
		h.log.Error().Err(err).Str("term", term).Msg("search failed")
		return fmt.Errorf("fallback search: %w", err)
	}
	h.log.Info().
		Str("term", term).
		Int("rows", len(rows)).
		Dur("took", time.Since(started)).
		Bool("fallback", source == SourceFallback).
		Msg("search finished")
	return nil
}

func (h *Hook) fetch(ctx context.Context, term string) ([]types.Row, Source, error) {
	rows, err := h.backend.CallSearch(ctx, h.cfg.RPCFunction, term)
	if err == nil {
		return rows, SourcePrimary, nil
	}
	h.log.Warn().Err(err).Str("function", h.cfg.RPCFunction).Msg("search procedure failed, reading table directly")

	rows, ferr := h.backend.FallbackSearch(ctx, FallbackQuery{
		Schema: h.cfg.Schema,
		Table:  h.cfg.TableName,
		Fields: h.cfg.FallbackSearchFields,
		Term:   term,
		Limit:  h.limit,
	})
	if ferr != nil {
		return nil, SourceNone, ferr
	}
	return rows, SourceFallback, nil
}

func (h *Hook) notify(s State) {
	if h.onChange != nil {
		h.onChange(s)
	}
}

// Close cancels any pending debounced search and in-flight fetch. The
// hook ignores all later calls.
func (h *Hook) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	h.mu.Unlock()

	h.debounce.Stop()
	h.cancel()
}
