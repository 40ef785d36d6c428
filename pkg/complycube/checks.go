package complycube

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

const (
	opCreateCheck = "create check"
	opGetCheck    = "get check"
)

func (s *service) CreateCheck(ctx context.Context, req CreateCheckRequest) (Check, error) {
	if req.Type == "" {
		req.Type = CheckTypeIdentity
	}

	body, err := s.do(ctx, opCreateCheck, http.MethodPost, "/checks", req)
	if err != nil {
		return Check{}, err
	}

	return decode[Check](opCreateCheck, body)
}

func (s *service) GetCheck(ctx context.Context, checkID string) (CheckResult, error) {
	if checkID == "" {
		return CheckResult{}, &UpstreamError{Operation: opGetCheck, Err: ErrMissingID}
	}

	body, err := s.do(ctx, opGetCheck, http.MethodGet, "/checks/"+url.PathEscape(checkID), nil)
	if err != nil {
		return CheckResult{}, err
	}

	result, err := decode[CheckResult](opGetCheck, body)
	if err != nil {
		return CheckResult{}, err
	}
	result.Raw = json.RawMessage(body)

	return result, nil
}
