// Package cmd implements the CLI application that reports on a Wealthsimple
// profile: account value summaries per account type, and transfer
// transactions for the registered accounts.
package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/wealthctl/wealth"
	"github.com/wealthctl/wealth/wealthsimple"
)

// Brokerage is the slice of the API client the application needs. Tests
// substitute a fake.
type Brokerage interface {
	Login(ctx context.Context, username, password, otp string) (wealthsimple.Session, error)
	Accounts(ctx context.Context, session wealthsimple.Session) ([]wealth.Account, error)
	Activities(ctx context.Context, session wealthsimple.Session, filter wealthsimple.ActivityFilter) ([]wealth.Transaction, error)
}

// App holds the parsed flags and the injected collaborators for one run.
//
// As a CLI application it is short lived: the session obtained by Run lives
// for the process lifetime and nothing is cached beyond it.
type App struct {
	Username     string
	Summary      bool
	Transactions bool
	Start        time.Time
	End          time.Time

	Client      Brokerage
	Credentials CredentialReader
	Logger      *wealthsimple.Logger
	Out         io.Writer
}

// Run executes the selected reports sequentially: authenticate once, then
// summary and/or transactions, each performing its own round trips.
func (a *App) Run(ctx context.Context) error {
	if !a.Summary && !a.Transactions {
		fmt.Fprintln(a.Out, "Please provide a command: -summary and/or -transactions")
		return nil
	}

	password, err := a.Credentials.Password("Enter password: ")
	if err != nil {
		return fmt.Errorf("cannot read password: %w", err)
	}
	otp, err := a.Credentials.OTP("Enter OTP: ")
	if err != nil {
		return fmt.Errorf("cannot read OTP: %w", err)
	}

	session, err := a.Client.Login(ctx, a.Username, password, otp)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "User: %s, Identity: %s\n", session.Email, session.IdentityID)

	if a.Summary {
		if err := a.runSummary(ctx, session); err != nil {
			return err
		}
	}
	if a.Transactions {
		if err := a.runTransactions(ctx, session); err != nil {
			return err
		}
	}
	return nil
}
