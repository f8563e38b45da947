// Package datasource reads module datasets from Postgres: the module's
// search function first, a direct table scan as the fallback.
package datasource

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jdlms/gcz-explorer/internal/search"
	"github.com/jdlms/gcz-explorer/internal/types"
)

// SearchParam is the named argument every search function takes.
const SearchParam = "termino_busqueda"

var _ search.Backend = (*Client)(nil)

// Querier is the part of pgxpool.Pool (or pgx.Conn) the client needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Client implements search.Backend over a Querier.
type Client struct {
	db        Querier
	rpcSchema string
}

// NewClient creates a client. Search functions are resolved in
// rpcSchema; empty means public.
func NewClient(db Querier, rpcSchema string) *Client {
	if rpcSchema == "" {
		rpcSchema = "public"
	}
	return &Client{db: db, rpcSchema: rpcSchema}
}

// CallSearch runs SELECT * FROM schema.function(termino_busqueda => term).
func (c *Client) CallSearch(ctx context.Context, function, term string) ([]types.Row, error) {
	if function == "" {
		return nil, &QueryError{Op: "rpc", Err: errors.New("no search function configured")}
	}
	sql := fmt.Sprintf("SELECT * FROM %s(%s => $1)",
		pgx.Identifier{c.rpcSchema, function}.Sanitize(), SearchParam)
	rows, err := c.query(ctx, "rpc "+function, sql, term)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FallbackSearch reads the table directly, matching Term in any of the
// fallback fields.
func (c *Client) FallbackSearch(ctx context.Context, q search.FallbackQuery) ([]types.Row, error) {
	sql, args := BuildFallbackQuery(q.Schema, q.Table, q.Fields, q.Term, q.Limit)
	return c.query(ctx, "select "+q.Table, sql, args...)
}

func (c *Client) query(ctx context.Context, op, sql string, args ...any) ([]types.Row, error) {
	rows, err := c.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, &QueryError{Op: op, Err: err}
	}
	out, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, &QueryError{Op: op, Err: err}
	}
	return out, nil
}

// BuildFallbackQuery returns the fallback table read and its arguments:
// every column of schema.table where any field's text contains term,
// case-insensitively, capped at limit rows. With no fields the table is
// read unfiltered. Wildcards in term are not escaped.
func BuildFallbackQuery(schema, table string, fields []string, term string, limit int) (string, []any) {
	if limit <= 0 {
		limit = search.DefaultFallbackLimit
	}
	var b strings.Builder
	b.WriteString("SELECT * FROM ")
	if schema != "" {
		b.WriteString(pgx.Identifier{schema, table}.Sanitize())
	} else {
		b.WriteString(pgx.Identifier{table}.Sanitize())
	}

	var args []any
	if len(fields) > 0 {
		args = append(args, "%"+term+"%")
		b.WriteString(" WHERE ")
		for i, f := range fields {
			if i > 0 {
				b.WriteString(" OR ")
			}
			b.WriteString(pgx.Identifier{f}.Sanitize())
			b.WriteString("::text ILIKE $1")
		}
	}
	fmt.Fprintf(&b, " LIMIT %d", limit)
	return b.String(), args
}

// QueryError is a failed read. Its UserMessage is what the error banner
// shows.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *QueryError) Unwrap() error { return e.Err }

// UserMessage is the server message and code for database errors, a
// fixed text for connection failures, and the raw text otherwise.
func (e *QueryError) UserMessage() string {
	var pgErr *pgconn.PgError
	if errors.As(e.Err, &pgErr) {
		return fmt.Sprintf("%s (%s)", pgErr.Message, pgErr.Code)
	}
	var connErr *pgconn.ConnectError
	if errors.As(e.Err, &connErr) {
		return search.DefaultErrorMessage
	}
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return "Tiempo de espera agotado al consultar la base de datos"
	}
	return e.Err.Error()
}
