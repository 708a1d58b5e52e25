package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amirasaad/bankaccount/infra/initializer"
	"github.com/amirasaad/bankaccount/pkg/config"
	"github.com/amirasaad/bankaccount/pkg/teller"
	log "github.com/charmbracelet/log"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	session := teller.NewSession(os.Stdin, os.Stdout, deps.Currency,
		teller.WithColor(interactive),
		teller.WithPrompt(interactive),
		teller.WithLogger(deps.Logger),
	)
	if interactive {
		fmt.Printf("Account %s opened in %s. Type help for commands.\n",
			session.Account().ID(), session.Account().Currency())
	}
	return session.Run(context.Background())
}
