// Package money provides the currency codes accepted by accounts and the
// formatting of amounts held in minor units.
//
// Amounts are always int64 values in the smallest currency unit
// (e.g., pence for GBP).
package money

import (
	"github.com/shopspring/decimal"
)

// Amount represents a monetary amount as an integer in the
// smallest currency unit (e.g., cents for USD).
type Amount = int64

// decimals maps each code to its number of minor-unit digits.
var decimals = map[Code]int32{
	USD: 2,
	EUR: 2,
	GBP: 2,
}

// Decimals returns the number of decimal places used by the currency.
// Unknown codes fall back to 2.
func Decimals(c Code) int {
	if d, ok := decimals[c]; ok {
		return int(d)
	}
	return 2
}

// Format renders an amount of minor units in major units, e.g. 1234 GBP -> "12.34 GBP".
func Format(amount Amount, c Code) string {
	exp := int32(Decimals(c))
	return decimal.New(amount, -exp).StringFixed(exp) + " " + c.String()
}
