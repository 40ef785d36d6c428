package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DSACMS/kyc-onboarding-api/pkg/complycube"
)

type Service struct {
	checks complycube.CheckGetter
	logger *slog.Logger
}

func NewService(checks complycube.CheckGetter, logger *slog.Logger) (*Service, error) {
	if checks == nil {
		return nil, errors.New("checks is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		checks: checks,
		logger: logger.With(slog.String("component", "verification")),
	}, nil
}

// Verify fetches the check once and decides it against claim. Provider
// failures are returned as errors and never turned into an outcome.
func (s *Service) Verify(ctx context.Context, claim Claim, checkID string) (Outcome, error) {
	result, err := s.checks.GetCheck(ctx, checkID)
	if err != nil {
		return "", fmt.Errorf("fetch check %s: %w", checkID, err)
	}

	outcome := Decide(claim, result)

	s.logger.InfoContext(ctx, "check decided",
		slog.String("check_id", checkID),
		slog.String("check_status", result.Status),
		slog.String("outcome", outcome.String()),
	)

	return outcome, nil
}
