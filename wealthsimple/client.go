// Package wealthsimple provides a read-only client for the Wealthsimple
// invest API: OAuth password-grant authentication, token introspection, and
// the two GraphQL queries used to list account financials and activity-feed
// items.
package wealthsimple

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/machinebox/graphql"
)

const (
	// DefaultAuthBaseURL hosts the OAuth token and introspection endpoints.
	DefaultAuthBaseURL = "https://api.production.wealthsimple.com"
	// DefaultGraphQLURL is the single GraphQL endpoint for invest data.
	DefaultGraphQLURL = "https://my.wealthsimple.com/graphql"

	// Fixed grant parameters of the public invest client.
	clientID = "4da53ac2b03225bed1550eba8e4611e086c7b905a3855e6ed12ea08c246758fa"
	scope    = "invest.read"

	otpHeader = "x-wealthsimple-otp"
)

// Session is the authenticated state for one run: the bearer token plus the
// identity it introspects to. Created once and read-only afterward.
type Session struct {
	AccessToken string
	IdentityID  string
	Email       string
}

// Client talks to the Wealthsimple API. It holds no mutable state between
// calls; every query goes back to the service.
type Client struct {
	authBaseURL string
	graphqlURL  string
	httpClient  *http.Client
	graphql     *graphql.Client
	logger      *Logger
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithAuthBaseURL sets the base URL for the OAuth endpoints.
func WithAuthBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.authBaseURL = baseURL
	}
}

// WithGraphQLURL sets the GraphQL endpoint URL.
func WithGraphQLURL(graphqlURL string) ClientOption {
	return func(c *Client) {
		c.graphqlURL = graphqlURL
	}
}

// WithHTTPClient sets the HTTP client used for every request.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger.
func WithLogger(logger *Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Wealthsimple client. Timeouts are left to the
// transport defaults.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		authBaseURL: DefaultAuthBaseURL,
		graphqlURL:  DefaultGraphQLURL,
		httpClient:  &http.Client{},
		logger:      NewSilentLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.graphql = graphql.NewClient(c.graphqlURL, graphql.WithHTTPClient(c.httpClient))
	return c
}

// QueryError reports a failed GraphQL query: either errors returned by the
// service or a response whose shape fails validation at the boundary.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s failed: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// newRequest builds an authenticated GraphQL request carrying a fresh
// correlation id.
func (c *Client) newRequest(query string, session Session) (*graphql.Request, string) {
	req := graphql.NewRequest(query)
	req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	return req, requestID
}
