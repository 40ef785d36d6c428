package handlers

import (
	"context"
	"log/slog"

	"github.com/DSACMS/kyc-onboarding-api/api/middleware"
	"github.com/DSACMS/kyc-onboarding-api/pkg/verification"
	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/DSACMS/kyc-onboarding-api/api/handlers"

type Verifier interface {
	Verify(ctx context.Context, claim verification.Claim, checkID string) (verification.Outcome, error)
}

// VerifyHandler fetches the check and renders the verdict. Every verdict is
// counted on kyc.verification.outcomes.
func VerifyHandler(verifier Verifier, meter metric.Meter, logger *slog.Logger) fiber.Handler {
	if meter == nil {
		meter = otel.Meter(meterName)
	}
	if logger == nil {
		logger = slog.Default()
	}

	outcomes, err := meter.Int64Counter(
		"kyc.verification.outcomes",
		metric.WithDescription("Verification verdicts by outcome"),
	)
	if err != nil {
		logger.Warn("verification outcome counter unavailable", slog.Any("error", err))
	}

	return func(c *fiber.Ctx) error {
		req := middleware.Body[VerifyRequest](c)
		ctx := c.UserContext()

		outcome, err := verifier.Verify(ctx, req.Claim(), req.CheckID)
		if err != nil {
			return err
		}

		if outcomes != nil {
			outcomes.Add(ctx, 1, metric.WithAttributes(
				attribute.String("outcome", outcome.String()),
				attribute.Bool("verified", outcome.Verified()),
			))
		}

		return c.Status(fiber.StatusOK).JSON(VerifyResponse{Status: outcome})
	}
}
