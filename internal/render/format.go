package render

import (
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale matches the locale the datasets are maintained in.
const DefaultLocale = "es-PE"

// DateLayout is day/month/year with zero padding.
const DateLayout = "02/01/2006"

// Formatter holds the locale used for number grouping.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer

	decimalSep string
	groupSep   string
	// integer digits needed before grouping applies
	minGroup   int
}

// NewFormatter builds a formatter for a BCP 47 locale. Unknown locales
// fall back to DefaultLocale.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	f := &Formatter{tag: tag, printer: message.NewPrinter(tag), decimalSep: ".", minGroup: 4}
	f.learnSymbols()
	return f
}

// learnSymbols reads the locale's separators off formatted samples.
func (f *Formatter) learnSymbols() {
	large := []rune(f.printer.Sprint(number.Decimal(1234567.5, number.Scale(2))))
	if len(large) < 4 {
		return
	}
	f.decimalSep = string(large[len(large)-3])
	if !unicode.IsDigit(large[1]) {
		f.groupSep = string(large[1])
	}
	small := []rune(f.printer.Sprint(number.Decimal(1234.5, number.Scale(2))))
	if len(small) == len("1234.50") {
		f.minGroup = 5
	}
}

// Locale returns the formatter's language tag.
func (f *Formatter) Locale() language.Tag { return f.tag }

// Amount shows a number with exactly two fraction digits and locale
// grouping. Values that are not numeric are shown unchanged.
func (f *Formatter) Amount(v any) Cell {
	if isBlank(v) {
		return Cell{Empty: true}
	}
	d, ok := ToDecimal(v)
	if !ok {
		return raw(v)
	}
	return Cell{Text: f.Decimal(d)}
}

// Decimal formats d with two fraction digits and locale grouping. The
// digits come from the decimal itself, so no precision is lost.
func (f *Formatter) Decimal(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	intPart, frac, _ := strings.Cut(strings.TrimPrefix(s, "-"), ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(f.group(intPart))
	b.WriteString(f.decimalSep)
	b.WriteString(frac)
	return b.String()
}

func (f *Formatter) group(digits string) string {
	if f.groupSep == "" || len(digits) < f.minGroup {
		return digits
	}
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(f.groupSep)
		}
		b.WriteRune(c)
	}
	return b.String()
}

// Date shows a calendar date as day/month/year in UTC. Unparseable values
// are shown unchanged; a numeric zero is no date at all.
func (f *Formatter) Date(v any) Cell {
	if isBlank(v) || isZeroNumber(v) {
		return Cell{Empty: true}
	}
	t, ok := ToTime(v)
	if !ok {
		return raw(v)
	}
	return Cell{Text: t.Format(DateLayout)}
}

// ToDecimal coerces a raw scalar to a decimal.
func ToDecimal(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return t, true
	case decimal.NullDecimal:
		return t.Decimal, t.Valid
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		return d, err == nil
	case []byte:
		d, err := decimal.NewFromString(strings.TrimSpace(string(t)))
		return d, err == nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

// ToTime parses a raw scalar as a point in time, normalized to UTC.
// Zone-less strings are read as UTC so date-only values never shift.
func ToTime(v any) (time.Time, bool) {
	if t, ok := v.(time.Time); ok {
		return t.UTC(), !t.IsZero()
	}
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	t, err := cast.ToTimeInDefaultLocationE(v, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func isZeroNumber(v any) bool {
	switch t := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		n, err := cast.ToFloat64E(t)
		return err == nil && n == 0
	case decimal.Decimal:
		return t.IsZero()
	}
	return false
}
