package wealthsimple

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthctl/wealth"
)

// graphqlRequest is the wire shape of a GraphQL POST.
type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// newGraphQLServer returns a test server answering every GraphQL POST with
// the given data payload, and records the last request.
func newGraphQLServer(t *testing.T, data string, last *graphqlRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(last))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":` + data + `}`))
	}))
}

const accountsPayload = `{
	"identity": {
		"id": "identity-abc",
		"accounts": {
			"edges": [
				{"node": {
					"id": "rrsp-1",
					"nickname": "Retirement",
					"status": "open",
					"currency": "CAD",
					"accountOwners": [{"identityId": "identity-abc"}],
					"financials": {"currentCombined": {"netLiquidationValueV2": {"cents": 150000}}}
				}},
				{"node": {
					"id": "tfsa-1",
					"nickname": "Savings",
					"status": "open",
					"currency": "CAD",
					"accountOwners": [{"identityId": "identity-abc"}, {"identityId": "identity-def"}],
					"financials": {"currentCombined": {"netLiquidationValueV2": null}}
				}},
				{"node": {
					"id": "ca-cash-1",
					"nickname": "Chequing",
					"status": "closed",
					"currency": "CAD",
					"accountOwners": [{"identityId": "identity-abc"}],
					"financials": {"currentCombined": null}
				}}
			]
		}
	}
}`

func testSession() Session {
	return Session{AccessToken: "tok-123", IdentityID: "identity-abc", Email: "user@example.com"}
}

func TestAccounts(t *testing.T) {
	var last graphqlRequest
	srv := newGraphQLServer(t, accountsPayload, &last)
	defer srv.Close()

	c := NewClient(WithGraphQLURL(srv.URL))

	accounts, err := c.Accounts(context.Background(), testSession())
	require.NoError(t, err)
	require.Len(t, accounts, 3)

	assert.Equal(t, "identity-abc", last.Variables["identityId"])
	assert.Contains(t, last.Query, "FetchAllAccountFinancials")

	rrsp := accounts[0]
	assert.Equal(t, "rrsp-1", rrsp.ID)
	assert.Equal(t, "Retirement", rrsp.Nickname)
	assert.Equal(t, "open", rrsp.Status)
	assert.Equal(t, "CAD", rrsp.Currency)
	require.Len(t, rrsp.Owners, 1)
	assert.Equal(t, "identity-abc", rrsp.Owners[0].IdentityID)
	require.NotNil(t, rrsp.NetLiquidationCents)
	assert.Equal(t, int64(150000), *rrsp.NetLiquidationCents)

	tfsa := accounts[1]
	assert.Nil(t, tfsa.NetLiquidationCents, "null liquidation value must map to nil")
	assert.Len(t, tfsa.Owners, 2)

	closed := accounts[2]
	assert.Nil(t, closed.NetLiquidationCents, "missing financials must map to nil")
	assert.Equal(t, "closed", closed.Status)
}

func TestAccountsSummarizeEndToEnd(t *testing.T) {
	payload := `{
		"identity": {
			"id": "identity-abc",
			"accounts": {
				"edges": [
					{"node": {
						"id": "rrsp-1", "nickname": "Retirement", "status": "open", "currency": "CAD",
						"accountOwners": [{"identityId": "identity-abc"}],
						"financials": {"currentCombined": {"netLiquidationValueV2": {"cents": 150000}}}
					}},
					{"node": {
						"id": "tfsa-1", "nickname": "Savings", "status": "open", "currency": "CAD",
						"accountOwners": [{"identityId": "identity-abc"}],
						"financials": {"currentCombined": {"netLiquidationValueV2": {"cents": 50000}}}
					}}
				]
			}
		}
	}`
	var last graphqlRequest
	srv := newGraphQLServer(t, payload, &last)
	defer srv.Close()

	c := NewClient(WithGraphQLURL(srv.URL))

	accounts, err := c.Accounts(context.Background(), testSession())
	require.NoError(t, err)

	s := wealth.Summarize(accounts)
	assert.Equal(t, "1500", s.Totals[wealth.RRSP].String())
	assert.Equal(t, "500", s.Totals[wealth.TFSA].String())
}

func TestAccountsMissingIdentity(t *testing.T) {
	var last graphqlRequest
	srv := newGraphQLServer(t, `{"identity": null}`, &last)
	defer srv.Close()

	c := NewClient(WithGraphQLURL(srv.URL))

	_, err := c.Accounts(context.Background(), testSession())
	var queryErr *QueryError
	require.ErrorAs(t, err, &queryErr)
	assert.Equal(t, accountsQueryName, queryErr.Query)
}

func TestAccountsGraphQLError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"errors":[{"message":"identity not found"}]}`))
	}))
	defer srv.Close()

	c := NewClient(WithGraphQLURL(srv.URL))

	_, err := c.Accounts(context.Background(), testSession())
	var queryErr *QueryError
	require.ErrorAs(t, err, &queryErr)
	assert.Contains(t, queryErr.Error(), "identity not found")
}
