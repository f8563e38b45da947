package render

import "strings"

// Category groups status words by meaning.
type Category int

const (
	StatusUnknown Category = iota
	StatusPositive
	StatusNegative
	StatusPending
)

func (c Category) String() string {
	switch c {
	case StatusPositive:
		return "positive"
	case StatusNegative:
		return "negative"
	case StatusPending:
		return "pending"
	default:
		return "unknown"
	}
}

// Color is the badge color as a tview color tag value.
func (c Category) Color() string {
	switch c {
	case StatusPositive:
		return "#10b981"
	case StatusNegative:
		return "#f43f5e"
	case StatusPending:
		return "#f59e0b"
	default:
		return "#64748b"
	}
}

// BadgeDot leads every status badge.
const BadgeDot = "●"

type statusRule struct {
	category Category
	match    func(s string) bool
}

func containsAny(words ...string) func(string) bool {
	return func(s string) bool {
		for _, w := range words {
			if strings.Contains(s, w) {
				return true
			}
		}
		return false
	}
}

func equalsAny(words ...string) func(string) bool {
	return func(s string) bool {
		for _, w := range words {
			if s == w {
				return true
			}
		}
		return false
	}
}

// statusRules is evaluated in order; the first match wins. Document
// states come first, then the si/no/parcial approval vocabulary.
var statusRules = []statusRule{
	{StatusPositive, containsAny("pagado")},
	{StatusNegative, containsAny("anulado", "cancelado")},
	{StatusPending, containsAny("pendiente", "proceso")},
	{StatusPositive, equalsAny("si", "sí")},
	{StatusNegative, equalsAny("no")},
	{StatusPending, containsAny("parcial")},
}

// ClassifyStatus maps a status word to its category.
func ClassifyStatus(s string) Category {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, r := range statusRules {
		if r.match(s) {
			return r.category
		}
	}
	return StatusUnknown
}

// StatusBadge presents a status value as a colored badge keeping the
// original text as its label.
func StatusBadge(v any) Cell {
	s := ToString(v)
	if s == "" {
		return Cell{Empty: true}
	}
	return Cell{Text: s, Badge: true, Category: ClassifyStatus(s)}
}
