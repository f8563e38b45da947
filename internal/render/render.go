// Package render turns raw cell values into display text. Every presenter
// is a pure function of one value and never fails: values it cannot
// interpret are shown as they are.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Variant selects how a column's cells are presented.
type Variant int

const (
	Plain Variant = iota
	Date
	Amount
	Status
)

func (v Variant) String() string {
	switch v {
	case Date:
		return "date"
	case Amount:
		return "amount"
	case Status:
		return "status"
	default:
		return "plain"
	}
}

// Cell is the presented form of one value.
type Cell struct {
	Text  string
	Empty bool // nothing to show
	Raw   bool // value could not be interpreted and is shown unchanged

	// Badge is set by the status presenter only.
	Badge    bool
	Category Category
}

// Presenter renders one raw value.
type Presenter interface {
	Present(v any) Cell
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(v any) Cell

func (f PresenterFunc) Present(v any) Cell { return f(v) }

// ForVariant returns the presenter for a column variant.
func (f *Formatter) ForVariant(v Variant) Presenter {
	switch v {
	case Date:
		return PresenterFunc(f.Date)
	case Amount:
		return PresenterFunc(f.Amount)
	case Status:
		return PresenterFunc(StatusBadge)
	default:
		return PresenterFunc(PlainText)
	}
}

// PlainText shows the value's string form; nil shows nothing.
func PlainText(v any) Cell {
	if v == nil {
		return Cell{Empty: true}
	}
	return Cell{Text: ToString(v)}
}

func raw(v any) Cell {
	return Cell{Text: ToString(v), Raw: true}
}

// ToString is the display string of a raw scalar.
func ToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case decimal.Decimal:
		return t.String()
	case fmt.Stringer:
		return t.String()
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}
