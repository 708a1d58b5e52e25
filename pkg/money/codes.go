package money

import "strings"

// Code represents a currency code (e.g., "USD", "EUR").
type Code string

// Supported currency codes
const (
	USD Code = "USD" // US Dollar
	EUR Code = "EUR" // Euro
	GBP Code = "GBP" // British Pound
)

// supported keeps the closed set in display order.
var supported = []Code{USD, EUR, GBP}

// Codes returns the supported currency codes in a stable order.
func Codes() []Code {
	codes := make([]Code, len(supported))
	copy(codes, supported)
	return codes
}

// IsValid reports whether the code belongs to the supported set.
func (c Code) IsValid() bool {
	for _, s := range supported {
		if c == s {
			return true
		}
	}
	return false
}

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}

// ParseCode parses a currency code, ignoring case and surrounding whitespace.
func ParseCode(s string) (Code, error) {
	c := Code(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", invalidCurrency(s)
	}
	return c, nil
}
