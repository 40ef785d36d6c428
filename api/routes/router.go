package routes

import (
	"log/slog"
	"time"

	"github.com/DSACMS/kyc-onboarding-api/api/handlers"
	"github.com/DSACMS/kyc-onboarding-api/api/middleware"
	"github.com/DSACMS/kyc-onboarding-api/pkg/complycube"
	"github.com/DSACMS/kyc-onboarding-api/pkg/core"
	"github.com/DSACMS/kyc-onboarding-api/pkg/ratelimit"
	"github.com/DSACMS/kyc-onboarding-api/pkg/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/metric"
)

type Dependencies struct {
	Config     *core.Config
	ComplyCube complycube.Service
	Verifier   handlers.Verifier
	Validator  *validation.Validator
	// Optional. Rate limiting is skipped without it.
	Redis  *redis.Client
	Meter  metric.Meter
	Logger *slog.Logger
	Now    func() time.Time
}

func RegisterRoutes(app fiber.Router, deps Dependencies) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Validator == nil {
		deps.Validator = validation.New()
	}

	v := deps.Validator
	limit := rateLimiter(deps)
	svc := deps.ComplyCube

	app.Post("/clients",
		middleware.Validate[handlers.IdentityClaim](v),
		limit(handlers.CreateClientHandler(svc, deps.Now)),
	)

	app.Post("/documents",
		middleware.Validate[handlers.CreateDocumentRequest](v),
		limit(handlers.CreateDocumentHandler(svc)),
	)

	app.Post("/documents/:id/upload",
		middleware.Validate[handlers.UploadDocumentRequest](v),
		limit(handlers.UploadDocumentHandler(svc)),
	)

	app.Post("/live-photos",
		middleware.Validate[handlers.CreateLivePhotoRequest](v),
		limit(handlers.CreateLivePhotoHandler(svc)),
	)

	app.Post("/checks",
		middleware.Validate[handlers.CreateCheckRequest](v),
		limit(handlers.CreateCheckHandler(svc)),
	)

	app.Get("/checks/:id", limit(handlers.GetCheckHandler(svc)))

	app.Post("/web-sdk-token",
		middleware.Validate[handlers.WebSDKTokenRequest](v),
		limit(handlers.WebSDKTokenHandler(svc, deps.Config.ComplyCube.DefaultReferrer)),
	)

	app.Post("/verify",
		middleware.Validate[handlers.VerifyRequest](v),
		limit(handlers.VerifyHandler(deps.Verifier, deps.Meter, deps.Logger)),
	)
}

func rateLimiter(deps Dependencies) func(fiber.Handler) fiber.Handler {
	if deps.Redis == nil || !deps.Config.RateLimit.Enabled {
		return func(h fiber.Handler) fiber.Handler { return h }
	}

	opts := ratelimit.DefaultOptions()
	opts.MaxRequests = deps.Config.RateLimit.MaxRequests
	opts.Window = deps.Config.RateLimit.Window

	return middleware.WithRateLimit(func(name string) ratelimit.Limiter {
		return ratelimit.NewRedisLimiter(deps.Redis, name, opts, deps.Logger)
	})
}
