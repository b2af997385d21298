package wealth

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Account status reported by the API for accounts that no longer exist.
const statusClosed = "closed"

// SummaryRow is the diagnostic view of one account retained by Summarize.
type SummaryRow struct {
	ID       string
	Type     AccountType
	Nickname string
	Value    Money
}

// Summary holds per-account-type value totals plus one row per account that
// contributed to them.
type Summary struct {
	Totals map[AccountType]decimal.Decimal
	Rows   []SummaryRow
}

// Summarize aggregates net liquidation values per account type.
//
// An account is retained only when it is not closed, is denominated in CAD,
// and carries a non-zero net liquidation value; everything else is skipped
// silently. Values are accumulated in major units with exact decimal
// addition, so the totals do not depend on input order. An empty input
// yields empty totals, not an error.
func Summarize(accounts []Account) *Summary {
	s := &Summary{Totals: make(map[AccountType]decimal.Decimal)}
	for _, a := range accounts {
		if a.Status == statusClosed {
			continue
		}
		if a.Currency != money.CAD {
			continue
		}
		if !a.HasValue() {
			continue
		}
		typ := a.Type()
		value := a.Value()
		s.Totals[typ] = s.Totals[typ].Add(value.Decimal())
		s.Rows = append(s.Rows, SummaryRow{ID: a.ID, Type: typ, Nickname: a.Nickname, Value: value})
	}
	return s
}
