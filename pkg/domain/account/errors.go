package account

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by Deposit and Pay wraps exactly one of them.
var (
	// ErrInvalidArgument is returned when a transaction request is malformed.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is returned when an operation would break an account invariant.
	ErrInvalidState = errors.New("invalid state")
)

var (
	// ErrInvalidAmount is returned when a transaction amount is not positive.
	ErrInvalidAmount = fmt.Errorf("%w: invalid amount", ErrInvalidArgument)

	// ErrInsufficientFunds is returned when a payment would leave a negative balance.
	ErrInsufficientFunds = fmt.Errorf(
		"%w: unable to pay amount that would leave a negative balance",
		ErrInvalidState,
	)

	// ErrInvalidConversion is returned when the exchange hands back a non-positive amount.
	ErrInvalidConversion = fmt.Errorf("%w: exchange returned a non-positive amount", ErrInvalidState)

	// ErrBalanceOverflow is returned when a deposit would overflow the balance.
	ErrBalanceOverflow = fmt.Errorf("%w: deposit amount exceeds maximum safe integer value", ErrInvalidState)
)

func invalidAmount(amount int64) error {
	return fmt.Errorf("%w: %d is an invalid amount", ErrInvalidAmount, amount)
}
