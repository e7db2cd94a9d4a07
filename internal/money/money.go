// Package money converts between API amounts (float64) and the NUMERIC(10,2)
// text the database stores.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits persisted.
const Scale = 2

// Max is the largest amount a NUMERIC(10,2) column holds.
var Max = decimal.RequireFromString("99999999.99")

// ToText renders v rounded half away from zero to Scale places.
func ToText(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(Scale)
}

// FromText parses a NUMERIC column value.
func FromText(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d.Round(Scale).InexactFloat64(), nil
}

// Positive reports whether v is still greater than zero once rounded to Scale
// and fits the column.
func Positive(v float64) bool {
	d := decimal.NewFromFloat(v).Round(Scale)
	return d.IsPositive() && d.LessThanOrEqual(Max)
}
