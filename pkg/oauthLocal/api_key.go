package oauthLocal

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

const bearerTokenType = "Bearer"

// APIKeyHTTPClient returns a client that sends apiKey as a bearer token on every request.
// The key never expires, so the token source is static.
func APIKeyHTTPClient(ctx context.Context, apiKey string, base *http.Client) *http.Client {
	if base == nil {
		base = http.DefaultClient
	}

	ctx = WithBaseClient(ctx, base)
	ts := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: apiKey,
		TokenType:   bearerTokenType,
	})

	return oauth2.NewClient(ctx, ts)
}
