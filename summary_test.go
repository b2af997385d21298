package wealth

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
)

func cadAccount(id, nickname string, cents int64) Account {
	return Account{
		ID:                  id,
		Nickname:            nickname,
		Status:              "open",
		Currency:            "CAD",
		Owners:              []Owner{{IdentityID: "identity-1"}},
		NetLiquidationCents: &cents,
	}
}

func TestSummarize(t *testing.T) {
	accounts := []Account{
		cadAccount("rrsp-1", "Retirement", 150000),
		cadAccount("tfsa-1", "Savings", 50000),
	}

	s := Summarize(accounts)

	if len(s.Totals) != 2 {
		t.Fatalf("Totals has %d entries, want 2: %v", len(s.Totals), s.Totals)
	}
	if got := s.Totals[RRSP]; !got.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("Totals[rrsp] = %s, want 1500", got)
	}
	if got := s.Totals[TFSA]; !got.Equal(decimal.NewFromInt(500)) {
		t.Errorf("Totals[tfsa] = %s, want 500", got)
	}
	if len(s.Rows) != 2 {
		t.Fatalf("Rows has %d entries, want 2", len(s.Rows))
	}
	if s.Rows[0].ID != "rrsp-1" || s.Rows[0].Type != RRSP || s.Rows[0].Nickname != "Retirement" {
		t.Errorf("unexpected first row: %+v", s.Rows[0])
	}
	if got := s.Rows[0].Value.String(); got != "1500" {
		t.Errorf("first row value = %q, want 1500", got)
	}
}

func TestSummarizeExclusions(t *testing.T) {
	closed := cadAccount("rrsp-closed", "Old", 100000)
	closed.Status = statusClosed
	usd := cadAccount("tfsa-usd", "US Savings", 100000)
	usd.Currency = "USD"
	zero := cadAccount("tfsa-zero", "Empty", 0)
	missing := cadAccount("tfsa-missing", "No value", 1)
	missing.NetLiquidationCents = nil

	tests := []struct {
		name     string
		excluded Account
	}{
		{name: "closed account", excluded: closed},
		{name: "non-CAD account", excluded: usd},
		{name: "zero value", excluded: zero},
		{name: "missing value", excluded: missing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := []Account{
				tt.excluded,
				cadAccount("non-registered-1", "Taxable", 2500),
				tt.excluded,
			}
			s := Summarize(accounts)
			if len(s.Totals) != 1 {
				t.Fatalf("Totals = %v, want only the qualifying account", s.Totals)
			}
			if got := s.Totals[NonRegistered]; !got.Equal(decimal.NewFromInt(25)) {
				t.Errorf("Totals[non-registered] = %s, want 25", got)
			}
			if len(s.Rows) != 1 {
				t.Errorf("Rows = %+v, want a single row", s.Rows)
			}
		})
	}
}

func TestSummarizeOrderIndependent(t *testing.T) {
	accounts := []Account{
		cadAccount("rrsp-1", "a", 12345),
		cadAccount("rrsp-2", "b", 678),
		cadAccount("tfsa-1", "c", 999999),
		cadAccount("ca-cash-1", "d", 1),
		cadAccount("rrsp-3", "e", 31415),
	}
	want := Summarize(accounts).Totals

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(accounts), func(i, j int) {
			accounts[i], accounts[j] = accounts[j], accounts[i]
		})
		got := Summarize(accounts).Totals
		if len(got) != len(want) {
			t.Fatalf("shuffled Totals = %v, want %v", got, want)
		}
		for typ, total := range want {
			if !got[typ].Equal(total) {
				t.Errorf("shuffled Totals[%v] = %s, want %s", typ, got[typ], total)
			}
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if len(s.Totals) != 0 || len(s.Rows) != 0 {
		t.Errorf("Summarize(nil) = %+v, want empty summary", s)
	}
}
