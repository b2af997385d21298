package wealthsimple

import (
	"context"
	_ "embed"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wealthctl/wealth"
)

//go:embed queries/get-transactions.graphql
var getTransactionsQuery string

const activitiesQueryName = "FetchActivityFeedItems"

// activityPageSize caps the activity search at a single page. Histories
// beyond the cap are silently truncated; that is a known limitation, there
// is no pagination fallback.
const activityPageSize = 10000

// transferActivityTypes is the fixed allow-list of activity kinds that count
// as transfers into an account.
var transferActivityTypes = []string{
	"INTERNAL_TRANSFER",
	"INSTITUTIONAL_TRANSFER_INTENT",
	"LEGACY_INTERNAL_TRANSFER",
	"LEGACY_TRANSFER",
	"CRYPTO_TRANSFER",
	"DEPOSIT",
}

// isoDateTime is the second-resolution ISO-8601 layout the activity search
// expects for its date bounds.
const isoDateTime = "2006-01-02T15:04:05"

// ActivityFilter bounds an activity search to a set of accounts and an
// inclusive date range.
type ActivityFilter struct {
	AccountIDs []string
	Start      time.Time
	End        time.Time
}

type activityNode struct {
	AccountID         string          `json:"accountId"`
	Amount            decimal.Decimal `json:"amount"`
	OccurredAt        time.Time       `json:"occurredAt"`
	OpposingAccountID string          `json:"opposingAccountId"`
	Type              string          `json:"type"`
}

type activitiesResponse struct {
	ActivityFeedItems struct {
		Edges []struct {
			Node activityNode `json:"node"`
		} `json:"edges"`
	} `json:"activityFeedItems"`
}

// Activities fetches the transfer transactions matching the filter, ordered
// ascending by occurrence time, in a single page of up to 10000 items.
func (c *Client) Activities(ctx context.Context, session Session, filter ActivityFilter) ([]wealth.Transaction, error) {
	accountIDs := filter.AccountIDs
	if accountIDs == nil {
		// the condition expects a list, never null
		accountIDs = []string{}
	}

	req, requestID := c.newRequest(getTransactionsQuery, session)
	req.Var("first", activityPageSize)
	req.Var("orderBy", "OCCURRED_AT_ASC")
	req.Var("condition", map[string]interface{}{
		"types":      transferActivityTypes,
		"accountIds": accountIDs,
		"startDate":  filter.Start.Format(isoDateTime),
		"endDate":    filter.End.Format(isoDateTime),
	})

	c.logger.Debug().
		Str("request_id", requestID).
		Str("query", activitiesQueryName).
		Strs("account_ids", filter.AccountIDs).
		Msg("graphql request")

	var resp activitiesResponse
	if err := c.graphql.Run(ctx, req, &resp); err != nil {
		return nil, &QueryError{Query: activitiesQueryName, Err: err}
	}

	edges := resp.ActivityFeedItems.Edges
	if len(edges) == activityPageSize {
		c.logger.Warn().Int("cap", activityPageSize).Msg("activity search hit the page cap, history may be truncated")
	}

	transactions := make([]wealth.Transaction, 0, len(edges))
	for _, edge := range edges {
		transactions = append(transactions, wealth.Transaction{
			OccurredAt:        edge.Node.OccurredAt,
			Amount:            edge.Node.Amount,
			OpposingAccountID: edge.Node.OpposingAccountID,
			AccountID:         edge.Node.AccountID,
			Type:              edge.Node.Type,
		})
	}
	return transactions, nil
}
