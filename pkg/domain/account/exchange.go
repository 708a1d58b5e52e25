package account

import "github.com/amirasaad/bankaccount/pkg/money"

// Exchange converts transaction amounts into an account's currency. Accounts
// only hold a reference to it; rate lookup and unsupported pairs are the
// implementation's concern.
type Exchange interface {
	// Convert is called with the account currency as base and the transaction
	// currency as quote. It returns the value of amount units of quote
	// expressed in base.
	Convert(amount int64, base, quote money.Code) (int64, error)
}
