// Package teller drives a single account from a line-oriented session.
//
// Amounts are typed in minor units, e.g. "deposit 1250 usd" deposits 12.50 USD.
package teller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/amirasaad/bankaccount/pkg/domain/account"
	"github.com/amirasaad/bankaccount/pkg/money"
	"github.com/fatih/color"
)

// ErrUsage is returned for command lines that cannot be parsed.
var ErrUsage = errors.New("usage")

const helpText = `Commands:
  deposit <amount> [currency]   add funds, amount in minor units
  pay <amount> [currency]       remove funds, amount in minor units
  balance                       show the current balance
  help                          show this help
  quit                          end the session
`

// Session reads commands from its input and applies them to one account.
type Session struct {
	account *account.Account
	in      *bufio.Reader
	out     io.Writer
	prompt  bool
	ok      *color.Color
	fail    *color.Color
	logger  *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithColor turns coloured output on or off.
func WithColor(enabled bool) Option {
	return func(s *Session) {
		for _, c := range []*color.Color{s.ok, s.fail} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// WithPrompt prints a "> " prompt before each command.
func WithPrompt(enabled bool) Option {
	return func(s *Session) {
		s.prompt = enabled
	}
}

// WithLogger sets the logger shared by the session and its account.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession opens an account in currency whose conversions are answered by
// the operator on the same input.
func NewSession(in io.Reader, out io.Writer, currency money.Code, opts ...Option) *Session {
	s := &Session{
		in:     bufio.NewReader(in),
		out:    out,
		ok:     color.New(color.FgGreen),
		fail:   color.New(color.FgRed, color.Bold),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.account = account.New(currency, NewPromptExchange(s.in, out), account.WithLogger(s.logger))
	return s
}

// Account returns the account driven by the session.
func (s *Session) Account() *account.Account {
	return s.account
}

// Run processes commands until quit, end of input or ctx is done.
// Domain and usage errors are reported to the operator and do not stop the session.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("teller session opened",
		"account_id", s.account.ID(),
		"currency", s.account.Currency(),
	)
	defer func() {
		s.logger.Info("teller session closed",
			"account_id", s.account.ID(),
			"balance", s.account.Balance(),
		)
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt {
			fmt.Fprint(s.out, "> ") //nolint:errcheck
		}
		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read command: %w", err)
		}
		eof := errors.Is(err, io.EOF)

		if strings.TrimSpace(line) != "" {
			quit, cmdErr := s.Execute(line)
			if cmdErr != nil {
				s.fail.Fprintf(s.out, "error: %v\n", cmdErr) //nolint:errcheck
			}
			if quit {
				return nil
			}
		}
		if eof {
			return nil
		}
	}
}

// Execute applies a single command line. It reports whether the session should end.
func (s *Session) Execute(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "deposit", "pay":
		amount, currency, err := s.parseTransaction(cmd, fields[1:])
		if err != nil {
			return false, err
		}
		if cmd == "deposit" {
			err = s.account.Deposit(amount, currency)
		} else {
			err = s.account.Pay(amount, currency)
		}
		if err != nil {
			s.logger.Warn("transaction refused", "command", cmd, "amount", amount, "currency", currency, "error", err)
			return false, err
		}
		s.ok.Fprintf(s.out, "%s %s ok, balance %s\n", //nolint:errcheck
			cmd, money.Format(amount, currency), s.balance())
	case "balance":
		fmt.Fprintf(s.out, "balance %s\n", s.balance()) //nolint:errcheck
	case "help":
		fmt.Fprint(s.out, helpText) //nolint:errcheck
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("%w: unknown command %q, try help", ErrUsage, fields[0])
	}
	return false, nil
}

func (s *Session) parseTransaction(cmd string, args []string) (int64, money.Code, error) {
	if len(args) < 1 || len(args) > 2 {
		return 0, "", fmt.Errorf("%w: %s <amount> [currency]", ErrUsage, cmd)
	}
	amount, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: amount %q is not a whole number", ErrUsage, args[0])
	}
	currency := s.account.Currency()
	if len(args) == 2 {
		if currency, err = money.ParseCode(args[1]); err != nil {
			return 0, "", err
		}
	}
	return amount, currency, nil
}

func (s *Session) balance() string {
	return money.Format(s.account.Balance(), s.account.Currency())
}
