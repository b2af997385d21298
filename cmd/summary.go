package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wealthctl/wealth"
	"github.com/wealthctl/wealth/wealthsimple"
)

// runSummary fetches all accounts, aggregates values per account type, and
// prints one diagnostic line per retained account followed by the totals
// mapping as indented JSON.
func (a *App) runSummary(ctx context.Context, session wealthsimple.Session) error {
	accounts, err := a.Client.Accounts(ctx, session)
	if err != nil {
		return err
	}

	summary := wealth.Summarize(accounts)
	for _, row := range summary.Rows {
		fmt.Fprintf(a.Out, "%s, %s, %s, %s\n", row.ID, row.Type, row.Nickname, row.Value)
	}

	totals := make(map[string]json.Number, len(summary.Totals))
	for typ, total := range summary.Totals {
		totals[string(typ)] = json.Number(total.String())
	}
	rendered, err := json.MarshalIndent(totals, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot render summary: %w", err)
	}
	fmt.Fprintln(a.Out, string(rendered))
	return nil
}
