package wealth

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single activity-feed item as reported by the API.
// Read-only, derived from the API response.
type Transaction struct {
	OccurredAt        time.Time
	Amount            decimal.Decimal
	OpposingAccountID string
	AccountID         string
	Type              string
}

// TransferReport is the per-transaction view of a transfer history: one CSV
// line per transaction plus the exact decimal sum of all amounts.
type TransferReport struct {
	Lines []string
	Total decimal.Decimal
}

// BuildTransferReport formats transactions into report lines for the given
// account type and accumulates their total.
//
// Each line is `date,attribution,amount,opposingAccountId,accountId` with
// the date as YYYY-MM-DD and the attribution from Attribution. The total is
// a decimal-exact sum in input order; addition is commutative so the order
// cannot change the result. An empty input yields no lines and a zero total.
func BuildTransferReport(typ AccountType, transactions []Transaction) *TransferReport {
	report := &TransferReport{Total: decimal.Zero}
	for _, tx := range transactions {
		line := fmt.Sprintf("%s,%s,%s,%s,%s",
			tx.OccurredAt.Format("2006-01-02"),
			Attribution(typ, tx.OccurredAt),
			tx.Amount.String(),
			tx.OpposingAccountID,
			tx.AccountID,
		)
		report.Lines = append(report.Lines, line)
		report.Total = report.Total.Add(tx.Amount)
	}
	return report
}
