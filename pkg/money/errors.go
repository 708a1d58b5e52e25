package money

import (
	"errors"
	"fmt"
)

// ErrInvalidCurrency is returned when a currency code is not one of the supported codes.
var ErrInvalidCurrency = errors.New("invalid currency code")

func invalidCurrency(s string) error {
	return fmt.Errorf("%w: %q", ErrInvalidCurrency, s)
}
