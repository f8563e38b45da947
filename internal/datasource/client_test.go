package datasource

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdlms/gcz-explorer/internal/search"
)

// recorder captures the statement and fails it with err.
type recorder struct {
	sql  string
	args []any
	err  error
}

func (r *recorder) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	r.sql, r.args = sql, args
	return nil, r.err
}

func TestBuildFallbackQuery(t *testing.T) {
	tests := []struct {
		name     string
		schema   string
		table    string
		fields   []string
		term     string
		limit    int
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "pqt06",
			schema:   "cgoii-data-prod",
			table:    "PQT06_Facturas_Consulta_Master",
			fields:   []string{"proveedor", "documento_identidad", "empresa"},
			term:     "acme",
			limit:    100,
			wantSQL:  `SELECT * FROM "cgoii-data-prod"."PQT06_Facturas_Consulta_Master" WHERE "proveedor"::text ILIKE $1 OR "documento_identidad"::text ILIKE $1 OR "empresa"::text ILIKE $1 LIMIT 100`,
			wantArgs: []any{"%acme%"},
		},
		{
			name:     "empty term matches everything",
			schema:   "s",
			table:    "t",
			fields:   []string{"a"},
			term:     "",
			limit:    100,
			wantSQL:  `SELECT * FROM "s"."t" WHERE "a"::text ILIKE $1 LIMIT 100`,
			wantArgs: []any{"%%"},
		},
		{
			name:    "no fields, default limit",
			table:   "t",
			wantSQL: `SELECT * FROM "t" LIMIT 100`,
		},
		{
			name:     "quotes are escaped",
			schema:   "s",
			table:    `we"ird`,
			fields:   []string{`x"y`},
			term:     "it's",
			limit:    5,
			wantSQL:  `SELECT * FROM "s"."we""ird" WHERE "x""y"::text ILIKE $1 LIMIT 5`,
			wantArgs: []any{"%it's%"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := BuildFallbackQuery(tt.schema, tt.table, tt.fields, tt.term, tt.limit)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestCallSearch_Statement(t *testing.T) {
	rec := &recorder{err: errors.New("boom")}
	c := NewClient(rec, "")

	_, err := c.CallSearch(context.Background(), "buscar_documentos_prod", "acme")
	require.Error(t, err)
	assert.Equal(t, `SELECT * FROM "public"."buscar_documentos_prod"(termino_busqueda => $1)`, rec.sql)
	assert.Equal(t, []any{"acme"}, rec.args)

	var qe *QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "rpc buscar_documentos_prod", qe.Op)
	assert.Equal(t, "boom", qe.UserMessage())
}

func TestCallSearch_NoFunction(t *testing.T) {
	rec := &recorder{}
	_, err := NewClient(rec, "api").CallSearch(context.Background(), "", "x")
	require.Error(t, err)
	assert.Empty(t, rec.sql)
}

func TestFallbackSearch_Statement(t *testing.T) {
	rec := &recorder{err: errors.New("boom")}
	_, err := NewClient(rec, "public").FallbackSearch(context.Background(), search.FallbackQuery{
		Schema: "cgoii-data-prod",
		Table:  "BD_Valorizaciones_Master",
		Fields: []string{"proveedor"},
		Term:   "obra",
		Limit:  100,
	})
	require.Error(t, err)
	assert.Equal(t, `SELECT * FROM "cgoii-data-prod"."BD_Valorizaciones_Master" WHERE "proveedor"::text ILIKE $1 LIMIT 100`, rec.sql)
	assert.Equal(t, []any{"%obra%"}, rec.args)
}

func TestQueryError_UserMessage(t *testing.T) {
	pgErr := &QueryError{Op: "rpc", Err: fmt.Errorf("exec: %w", &pgconn.PgError{Message: "function does not exist", Code: "42883"})}
	assert.Equal(t, "function does not exist (42883)", pgErr.UserMessage())
	assert.Equal(t, "function does not exist (42883)", search.ErrorMessage(pgErr))

	timeout := &QueryError{Op: "rpc", Err: context.DeadlineExceeded}
	assert.Contains(t, timeout.UserMessage(), "Tiempo de espera")
	assert.ErrorIs(t, timeout, context.DeadlineExceeded)
}
