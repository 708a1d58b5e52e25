package initializer

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/bankaccount/pkg/config"
	"github.com/amirasaad/bankaccount/pkg/money"
)

// Deps holds what a teller session needs from the environment.
type Deps struct {
	Logger   *slog.Logger
	Currency money.Code
}

// Initialize builds the logger and resolves the base currency from cfg.
func Initialize(cfg *config.App) (*Deps, error) {
	logger := SetupLogger(cfg.Log)

	currency, err := money.ParseCode(cfg.Account.Currency)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account currency: %w", err)
	}

	logger.Debug("dependencies initialized", "env", cfg.Env, "currency", currency)
	return &Deps{Logger: logger, Currency: currency}, nil
}
