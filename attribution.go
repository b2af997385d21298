package wealth

import (
	"fmt"
	"time"
)

// Attribution returns the bucket a transaction is attributed to for
// tax-reporting purposes.
//
// For RRSP reports the bucket is a contribution period rather than a
// calendar year: contributions made in the first two months of a year
// belong to the grace period of the previous year ("YYYY-2"), the rest of
// the year is "YYYY-1". Every other account type attributes to the plain
// calendar year "YYYY".
//
// The timestamp is taken as reported by the API; no timezone adjustment is
// applied beyond what the API returns.
func Attribution(typ AccountType, occurredAt time.Time) string {
	if typ == RRSP {
		if occurredAt.Month() <= time.February {
			return fmt.Sprintf("%d-2", occurredAt.Year()-1)
		}
		return fmt.Sprintf("%d-1", occurredAt.Year())
	}
	return fmt.Sprintf("%d", occurredAt.Year())
}
