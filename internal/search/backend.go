package search

import (
	"context"
	"errors"

	"github.com/jdlms/gcz-explorer/internal/types"
)

// DefaultFallbackLimit caps the rows read by the fallback query.
const DefaultFallbackLimit = 100

// DefaultErrorMessage is shown when a failure carries no text.
const DefaultErrorMessage = "Error al conectar con la base de datos"

// FallbackQuery is a direct table read: every column of Schema.Table
// where any of Fields contains Term, case-insensitively.
type FallbackQuery struct {
	Schema string
	Table  string
	Fields []string
	Term   string
	Limit  int
}

// Backend runs the two remote reads behind a search.
type Backend interface {
	// CallSearch invokes the named search procedure with the raw term.
	CallSearch(ctx context.Context, function, term string) ([]types.Row, error)
	// FallbackSearch reads the table directly.
	FallbackSearch(ctx context.Context, q FallbackQuery) ([]types.Row, error)
}

// userMessager is implemented by backend errors that carry text fit for
// the error banner.
type userMessager interface {
	UserMessage() string
}

// ErrorMessage is the banner text for err.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var um userMessager
	if errors.As(err, &um) {
		if msg := um.UserMessage(); msg != "" {
			return msg
		}
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return DefaultErrorMessage
}
