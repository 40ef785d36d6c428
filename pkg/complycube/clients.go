package complycube

import (
	"context"
	"net/http"
)

const opCreateClient = "create client"

func (s *service) CreateClient(ctx context.Context, req CreateClientRequest) (Client, error) {
	if req.Type == "" {
		req.Type = ClientTypePerson
	}

	body, err := s.do(ctx, opCreateClient, http.MethodPost, "/clients", req)
	if err != nil {
		return Client{}, err
	}

	return decode[Client](opCreateClient, body)
}
