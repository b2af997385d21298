// wsctl prints account value summaries and transfer reports for a
// Wealthsimple profile.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/wealthctl/wealth/cmd"
	"github.com/wealthctl/wealth/wealthsimple"
)

func main() {
	username := flag.String("username", "", "login email for the brokerage profile")
	summary := flag.Bool("summary", false, "print net liquidation value totals per account type")
	transactions := flag.Bool("transactions", false, "print transfer transactions for RRSP and TFSA accounts")
	start := flag.String("start", time.Now().AddDate(0, 0, -30).Format("2006-01-02T15:04:05"),
		"start of the transaction range (ISO-8601 datetime)")
	end := flag.String("end", time.Now().Format("2006-01-02T15:04:05"),
		"end of the transaction range (ISO-8601 datetime)")
	verbose := flag.Bool("v", false, "enable debug logging")

	completion := &complete.Command{
		Flags: map[string]complete.Predictor{
			"username":     predict.Something,
			"summary":      predict.Nothing,
			"transactions": predict.Nothing,
			"start":        predict.Something,
			"end":          predict.Something,
			"v":            predict.Nothing,
		},
	}
	completion.Complete("wsctl")

	flag.Parse()

	startAt, err := cmd.ParseDateTime(*start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -start: %v\n", err)
		os.Exit(2)
	}
	endAt, err := cmd.ParseDateTime(*end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -end: %v\n", err)
		os.Exit(2)
	}

	level := "info"
	if *verbose {
		level = "debug"
	}
	logger := wealthsimple.NewLogger(level)

	app := &cmd.App{
		Username:     *username,
		Summary:      *summary,
		Transactions: *transactions,
		Start:        startAt,
		End:          endAt,
		Client:       wealthsimple.NewClient(wealthsimple.WithLogger(logger)),
		Credentials:  cmd.TerminalCredentials{},
		Logger:       logger,
		Out:          os.Stdout,
	}
	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
