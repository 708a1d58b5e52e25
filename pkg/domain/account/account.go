// Package account implements a single-currency bank account that accepts
// deposits and payments in any supported currency.
package account

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/amirasaad/bankaccount/pkg/money"
	"github.com/google/uuid"
)

// Account holds a balance in a fixed base currency. Amounts given in another
// currency are converted through the Exchange supplied at construction.
//
// Invariants:
//   - The base currency and the exchange never change after New.
//   - The balance is never negative.
//   - A failed Deposit or Pay leaves the balance untouched.
//
// Account is not safe for concurrent use; callers own the serialisation.
type Account struct {
	id       uuid.UUID
	currency money.Code
	exchange Exchange
	balance  int64
	logger   *slog.Logger
}

// Option configures an Account built by New.
type Option func(*Account)

// WithID sets the account ID instead of generating one.
func WithID(id uuid.UUID) Option {
	return func(a *Account) {
		a.id = id
	}
}

// WithLogger sets the logger used for transaction tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Account) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New opens an account with a zero balance in the given currency.
func New(currency money.Code, exchange Exchange, opts ...Option) *Account {
	a := &Account{
		id:       uuid.New(),
		currency: currency,
		exchange: exchange,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ID returns the account identifier.
func (a *Account) ID() uuid.UUID {
	return a.id
}

// Currency returns the base currency of the account.
func (a *Account) Currency() money.Code {
	return a.currency
}

// Balance returns the current balance in the smallest unit of the base currency.
func (a *Account) Balance() int64 {
	return a.balance
}

// Deposit adds amount, given in currency, to the balance.
func (a *Account) Deposit(amount int64, currency money.Code) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	converted, err := a.convert(amount, currency)
	if err != nil {
		return err
	}
	if converted > math.MaxInt64-a.balance {
		return ErrBalanceOverflow
	}
	a.balance += converted
	a.logger.Debug("deposit applied",
		"account_id", a.id,
		"amount", amount,
		"currency", currency,
		"converted", converted,
		"balance", a.balance,
	)
	return nil
}

// Pay removes amount, given in currency, from the balance. The converted
// amount must not exceed the current balance.
func (a *Account) Pay(amount int64, currency money.Code) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	converted, err := a.convert(amount, currency)
	if err != nil {
		return err
	}
	if converted > a.balance {
		a.logger.Debug("payment refused",
			"account_id", a.id,
			"converted", converted,
			"balance", a.balance,
		)
		return ErrInsufficientFunds
	}
	a.balance -= converted
	a.logger.Debug("payment applied",
		"account_id", a.id,
		"amount", amount,
		"currency", currency,
		"converted", converted,
		"balance", a.balance,
	)
	return nil
}

// convert returns amount expressed in the base currency. The exchange is
// called with the base currency first and the transaction currency second.
func (a *Account) convert(amount int64, currency money.Code) (int64, error) {
	if currency == a.currency {
		return amount, nil
	}
	converted, err := a.exchange.Convert(amount, a.currency, currency)
	if err != nil {
		return 0, fmt.Errorf("convert %d %s/%s: %w", amount, a.currency, currency, err)
	}
	if converted <= 0 {
		return 0, fmt.Errorf("%w: %d %s gave %d", ErrInvalidConversion, amount, currency, converted)
	}
	return converted, nil
}

func validateAmount(amount int64) error {
	if amount <= 0 {
		return invalidAmount(amount)
	}
	return nil
}
