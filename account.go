package wealth

import "strings"

// AccountType is a typed string for the closed set of account types an
// account identifier can classify into.
type AccountType string

// Account types derived from an account identifier and its owner count.
const (
	RRSP          AccountType = "rrsp"
	TFSA          AccountType = "tfsa"
	NonRegistered AccountType = "non-registered"
	Cash          AccountType = "cash"
	CashJoint     AccountType = "cash-joint"
	RESPJoint     AccountType = "resp-joint"
	Unknown       AccountType = "unknown"
)

// Owner identifies one holder of an account.
type Owner struct {
	IdentityID string
}

// Account is a brokerage account as reported by the API. It is read-only:
// sourced fresh on every query and never mutated.
type Account struct {
	ID       string
	Nickname string
	Status   string
	Currency string
	Owners   []Owner

	// NetLiquidationCents is the total account value in minor currency
	// units. It is nil when the API omits the value.
	NetLiquidationCents *int64
}

// HasValue reports whether the account carries a usable net liquidation
// value. A missing value and a zero value are excluded identically; that is
// the upstream contract, not an accident.
func (a Account) HasValue() bool {
	return a.NetLiquidationCents != nil && *a.NetLiquidationCents != 0
}

// Value returns the account's net liquidation value in major units.
func (a Account) Value() Money {
	var cents int64
	if a.NetLiquidationCents != nil {
		cents = *a.NetLiquidationCents
	}
	return MoneyFromCents(cents, a.Currency)
}

// Type classifies the account. See Classify.
func (a Account) Type() AccountType { return Classify(a.ID, len(a.Owners)) }

// Classify maps an account identifier and its owner count to an AccountType.
//
// The rules are ordered and the first match wins. The rule list mirrors the
// identifier scheme used by the brokerage:
//
//	rrsp...            -> rrsp
//	group-rrsp...      -> rrsp
//	tfsa...            -> tfsa
//	non-registered...  -> non-registered
//	ca-cash...         -> cash-joint when held by more than one owner, cash otherwise
//	resp...            -> resp-joint
//	anything else      -> unknown
//
// The group-rrsp rule is kept as an independent check even though the rrsp
// prefix shadows it; see DESIGN.md. Classify is pure and total: every input
// yields exactly one of the seven types.
func Classify(accountID string, ownerCount int) AccountType {
	switch {
	case strings.HasPrefix(accountID, "rrsp"):
		return RRSP
	case strings.HasPrefix(accountID, "group-rrsp"):
		return RRSP
	case strings.HasPrefix(accountID, "tfsa"):
		return TFSA
	case strings.HasPrefix(accountID, "non-registered"):
		return NonRegistered
	case strings.HasPrefix(accountID, "ca-cash") && ownerCount > 1:
		return CashJoint
	case strings.HasPrefix(accountID, "ca-cash"):
		return Cash
	case strings.HasPrefix(accountID, "resp"):
		return RESPJoint
	default:
		return Unknown
	}
}

// FilterAccountIDs returns the ids of the accounts that classify as typ,
// preserving input order.
func FilterAccountIDs(accounts []Account, typ AccountType) []string {
	var ids []string
	for _, a := range accounts {
		if a.Type() == typ {
			ids = append(ids, a.ID)
		}
	}
	return ids
}
