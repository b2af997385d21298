package wealthsimple

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// AuthError reports a non-success HTTP status from the token or
// introspection endpoints. Authentication failures are fatal; there is no
// retry.
type AuthError struct {
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed with status %d: %s", e.StatusCode, e.Body)
}

// Login exchanges credentials for an access token and resolves the identity
// behind it, returning the session used by every subsequent query.
func (c *Client) Login(ctx context.Context, username, password, otp string) (Session, error) {
	token, err := c.ObtainAccessToken(ctx, username, password, otp)
	if err != nil {
		return Session{}, err
	}
	identityID, email, err := c.GetIdentity(ctx, token)
	if err != nil {
		return Session{}, err
	}
	return Session{AccessToken: token, IdentityID: identityID, Email: email}, nil
}

// ObtainAccessToken performs the password-grant token exchange. The otp, if
// any, travels in a dedicated header; when empty the header is omitted
// entirely.
func (c *Client) ObtainAccessToken(ctx context.Context, username, password, otp string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", username)
	form.Set("password", password)
	form.Set("skip_provision", "true")
	form.Set("scope", scope)
	form.Set("client_id", clientID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.authBaseURL+"/v1/oauth/v2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("cannot create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if otp != "" {
		req.Header.Set(otpHeader, otp)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	c.logger.Debug().Str("request_id", requestID).Str("username", username).Msg("token exchange")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("cannot execute token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", &AuthError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("cannot decode token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("token response carries no access token")
	}
	return payload.AccessToken, nil
}

// GetIdentity introspects an access token and returns the canonical
// identity id and email it belongs to. Purely a lookup.
func (c *Client) GetIdentity(ctx context.Context, accessToken string) (identityID, email string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.authBaseURL+"/v1/oauth/v2/token/info", nil)
	if err != nil {
		return "", "", fmt.Errorf("cannot create introspection request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("cannot execute introspection request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", "", &AuthError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var payload struct {
		IdentityCanonicalID string `json:"identity_canonical_id"`
		Email               string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", "", fmt.Errorf("cannot decode introspection response: %w", err)
	}

	c.logger.Debug().Str("identity", payload.IdentityCanonicalID).Msg("token introspected")
	return payload.IdentityCanonicalID, payload.Email, nil
}
