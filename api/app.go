package api

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/DSACMS/kyc-onboarding-api/api/handlers"
	"github.com/DSACMS/kyc-onboarding-api/api/middleware"
	"github.com/DSACMS/kyc-onboarding-api/api/routes"
	"github.com/DSACMS/kyc-onboarding-api/pkg/complycube"
	"github.com/DSACMS/kyc-onboarding-api/pkg/core"
	"github.com/DSACMS/kyc-onboarding-api/pkg/validation"
	"github.com/DSACMS/kyc-onboarding-api/pkg/verification"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	slogfiber "github.com/samber/slog-fiber"
)

func errorHandler(logger *slog.Logger, otel core.OtelService) fiber.ErrorHandler {
	respond := func(ctx *fiber.Ctx, err error, code int, body handlers.ErrorResponse) error {
		span := otel.SpanFromContext(ctx.UserContext())
		span.RecordError(err)
		span.SetStatus(codes.Error, body.Error)

		level := slog.LevelWarn
		if code >= fiber.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(
			ctx.UserContext(),
			level,
			"Request failed",
			"Code",
			code,
			"Message",
			body.Error,
			"err",
			err,
		)

		return ctx.Status(code).JSON(body)
	}

	return func(ctx *fiber.Ctx, err error) error {
		var (
			validationErrs validation.Errors
			upstreamErr    *complycube.UpstreamError
			fiberErr       *fiber.Error
		)

		switch {
		case errors.As(err, &validationErrs):
			return respond(ctx, err, fiber.StatusBadRequest, handlers.ErrorResponse{
				Error:   validation.ErrorSummary,
				Details: []string(validationErrs),
			})
		case errors.As(err, &upstreamErr):
			return respond(ctx, err, fiber.StatusInternalServerError, handlers.ErrorResponse{
				Error:   "Failed to " + upstreamErr.Operation,
				Details: upstreamErr.Details(),
			})
		case errors.As(err, &fiberErr):
			return respond(ctx, err, fiberErr.Code, handlers.ErrorResponse{Error: fiberErr.Message})
		default:
			return respond(ctx, err, fiber.StatusInternalServerError, handlers.ErrorResponse{
				Error: fiber.ErrInternalServerError.Message,
			})
		}
	}
}

func stackTraceHandler(logger *slog.Logger) func(*fiber.Ctx, any) {
	return func(c *fiber.Ctx, e any) {
		stack := debug.Stack()
		logger.ErrorContext(
			c.UserContext(),
			"panic!",
			"stack",
			string(stack),
			"err",
			e,
		)
	}
}

type Config struct {
	Otel       core.OtelService
	Logger     *slog.Logger
	ComplyCube complycube.Service
	// Optional. Enables readiness pings and rate limiting.
	Redis *redis.Client
	Meter metric.Meter
	// Clock for date rules and the client joined date. Defaults to time.Now.
	Now func() time.Time
	core.Config
}

func New(cfg *Config) (*fiber.App, error) {
	if cfg.ComplyCube == nil {
		return nil, errors.New("ComplyCube service is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Otel == nil {
		cfg.Otel = core.NewNoopOtelService()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	verifier, err := verification.NewService(cfg.ComplyCube, cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize verification service: %w", err)
	}

	fiberConfig := fiber.Config{
		ErrorHandler: errorHandler(cfg.Logger, cfg.Otel),
	}
	if len(cfg.TrustedProxies) > 0 {
		// c.IP() is the applicant, not the load balancer, only when the hop is trusted
		fiberConfig.ProxyHeader = fiber.HeaderXForwardedFor
		fiberConfig.EnableTrustedProxyCheck = true
		fiberConfig.TrustedProxies = cfg.TrustedProxies
		fiberConfig.EnableIPValidation = true
	}

	app := fiber.New(fiberConfig)

	app.Use(recover.New(recover.Config{
		Next:              nil,
		EnableStackTrace:  true,
		StackTraceHandler: stackTraceHandler(cfg.Logger),
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowHeaders: "*",
		AllowMethods: "GET,POST,OPTIONS",
	}))

	app.Use(otelfiber.Middleware())

	app.Use(slogfiber.NewWithConfig(
		cfg.Logger,
		slogfiber.Config{
			WithRequestID: true,
			WithSpanID:    true,
			WithTraceID:   true,
		},
	))

	// health checks come from the load balancer without a token
	routes.StatusRouter(app, cfg.Redis)

	if !cfg.SkipAuth {
		cognito, err := middleware.NewCognitoVerifier(middleware.CognitoConfig{
			Region:     cfg.Cognito.Region,
			UserPoolID: cfg.Cognito.UserPoolID,
			ClientID:   cfg.Cognito.AppClientID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize cognito middleware: %w", err)
		}
		app.Use(cognito.FiberMiddleware())
	}

	routes.RegisterRoutes(app, routes.Dependencies{
		Config:     &cfg.Config,
		ComplyCube: cfg.ComplyCube,
		Verifier:   verifier,
		Validator:  validation.New(validation.WithClock(cfg.Now)),
		Redis:      cfg.Redis,
		Meter:      cfg.Meter,
		Logger:     cfg.Logger,
		Now:        cfg.Now,
	})

	return app, nil
}
