package render

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// SumField adds field over rows. Missing or non-numeric values count as 0.
func SumField(rows []map[string]any, field string) decimal.Decimal {
	sum := decimal.Zero
	for _, row := range rows {
		if d, ok := ToDecimal(row[field]); ok {
			sum = sum.Add(d)
		}
	}
	return sum
}

// SelectionLabel is the Spanish "N registro(s) seleccionado(s)" caption.
func SelectionLabel(n int) string {
	if n == 1 {
		return "1 registro seleccionado"
	}
	return strconv.Itoa(n) + " registros seleccionados"
}
