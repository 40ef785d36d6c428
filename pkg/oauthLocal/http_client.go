package oauthLocal

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// HeaderPreservingClient copies the original request headers onto redirects so the
// Authorization header survives a provider-side redirect.
func HeaderPreservingClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(r *http.Request, via []*http.Request) error {
			if len(via) > 0 {
				r.Header = via[0].Header.Clone()
			}

			return nil
		},
	}
}

func WithBaseClient(ctx context.Context, base *http.Client) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, base)
}
