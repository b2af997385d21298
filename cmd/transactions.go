package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/wealthctl/wealth"
	"github.com/wealthctl/wealth/wealthsimple"
)

// reportedAccountTypes are the registered account types the transactions
// report covers, in output order.
var reportedAccountTypes = []wealth.AccountType{wealth.RRSP, wealth.TFSA}

// displayDateTime is the layout used for the report headers.
const displayDateTime = "2006-01-02T15:04:05"

// runTransactions prints the transfer report for each registered account
// type in turn. Each report re-resolves the account list from scratch and
// performs its own activity search; nothing is cached between them.
func (a *App) runTransactions(ctx context.Context, session wealthsimple.Session) error {
	for _, typ := range reportedAccountTypes {
		fmt.Fprintf(a.Out, "Transactions for %s from %s to %s\n",
			strings.ToUpper(string(typ)),
			a.Start.Format(displayDateTime),
			a.End.Format(displayDateTime),
		)

		accounts, err := a.Client.Accounts(ctx, session)
		if err != nil {
			return err
		}
		ids := wealth.FilterAccountIDs(accounts, typ)
		a.Logger.Debug().Strs("account_ids", ids).Msgf("resolved %s accounts", typ)

		transactions, err := a.Client.Activities(ctx, session, wealthsimple.ActivityFilter{
			AccountIDs: ids,
			Start:      a.Start,
			End:        a.End,
		})
		if err != nil {
			return err
		}

		report := wealth.BuildTransferReport(typ, transactions)
		for _, line := range report.Lines {
			fmt.Fprintln(a.Out, line)
		}
		fmt.Fprintf(a.Out, "Total: %s\n", report.Total)
	}
	return nil
}
