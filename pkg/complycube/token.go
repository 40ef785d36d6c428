package complycube

import (
	"context"
	"net/http"
)

const opCreateToken = "create web sdk token"

// CreateWebSDKToken issues the short-lived token the hosted capture widget needs.
func (s *service) CreateWebSDKToken(ctx context.Context, req TokenRequest) (TokenResponse, error) {
	body, err := s.do(ctx, opCreateToken, http.MethodPost, "/token", req)
	if err != nil {
		return TokenResponse{}, err
	}

	return decode[TokenResponse](opCreateToken, body)
}
