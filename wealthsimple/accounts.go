package wealthsimple

import (
	"context"
	_ "embed"
	"errors"

	"github.com/wealthctl/wealth"
)

// The query document is an external collaborator: the client depends on its
// response shape, not its text.
//
//go:embed queries/get-accounts.graphql
var getAccountsQuery string

const accountsQueryName = "FetchAllAccountFinancials"

type accountOwner struct {
	IdentityID string `json:"identityId"`
}

type accountNode struct {
	ID            string         `json:"id"`
	Nickname      string         `json:"nickname"`
	Status        string         `json:"status"`
	Currency      string         `json:"currency"`
	AccountOwners []accountOwner `json:"accountOwners"`
	Financials    struct {
		CurrentCombined *struct {
			NetLiquidationValueV2 *struct {
				Cents int64 `json:"cents"`
			} `json:"netLiquidationValueV2"`
		} `json:"currentCombined"`
	} `json:"financials"`
}

type accountsResponse struct {
	Identity *struct {
		Accounts struct {
			Edges []struct {
				Node accountNode `json:"node"`
			} `json:"edges"`
		} `json:"accounts"`
	} `json:"identity"`
}

// Accounts fetches every account under the session's identity in a single
// page. The response shape is validated here; accounts come back typed and
// the caller never sees raw JSON.
func (c *Client) Accounts(ctx context.Context, session Session) ([]wealth.Account, error) {
	req, requestID := c.newRequest(getAccountsQuery, session)
	req.Var("identityId", session.IdentityID)

	c.logger.Debug().Str("request_id", requestID).Str("query", accountsQueryName).Msg("graphql request")

	var resp accountsResponse
	if err := c.graphql.Run(ctx, req, &resp); err != nil {
		return nil, &QueryError{Query: accountsQueryName, Err: err}
	}
	if resp.Identity == nil {
		return nil, &QueryError{Query: accountsQueryName, Err: errors.New("response carries no identity")}
	}

	edges := resp.Identity.Accounts.Edges
	accounts := make([]wealth.Account, 0, len(edges))
	for _, edge := range edges {
		accounts = append(accounts, edge.Node.toAccount())
	}
	c.logger.Debug().Int("accounts", len(accounts)).Msg("accounts fetched")
	return accounts, nil
}

func (n accountNode) toAccount() wealth.Account {
	a := wealth.Account{
		ID:       n.ID,
		Nickname: n.Nickname,
		Status:   n.Status,
		Currency: n.Currency,
	}
	for _, o := range n.AccountOwners {
		a.Owners = append(a.Owners, wealth.Owner{IdentityID: o.IdentityID})
	}
	// A missing liquidation value is not an error: the account is simply
	// skipped downstream, exactly like a zero value.
	if cc := n.Financials.CurrentCombined; cc != nil && cc.NetLiquidationValueV2 != nil {
		cents := cc.NetLiquidationValueV2.Cents
		a.NetLiquidationCents = &cents
	}
	return a
}
