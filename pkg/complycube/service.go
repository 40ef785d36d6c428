package complycube

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/DSACMS/kyc-onboarding-api/pkg/core"
	"github.com/DSACMS/kyc-onboarding-api/pkg/oauthLocal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	applicationJSON = "application/json"

	defaultTimeout     = 10 * time.Second
	maxErrBodyLogBytes = 800

	instrumentationName = "github.com/DSACMS/kyc-onboarding-api/pkg/complycube"
)

//go:generate mockgen -destination=mocks/service_mock.go -package=mocks . Service

// Service relays onboarding calls to the ComplyCube API one-to-one. Nothing is
// retried; every failure comes back as an *UpstreamError.
type Service interface {
	CreateClient(ctx context.Context, req CreateClientRequest) (Client, error)
	CreateDocument(ctx context.Context, req CreateDocumentRequest) (Document, error)
	UploadDocument(ctx context.Context, documentID, side string, req UploadDocumentRequest) (json.RawMessage, error)
	CreateLivePhoto(ctx context.Context, req CreateLivePhotoRequest) (LivePhoto, error)
	CreateCheck(ctx context.Context, req CreateCheckRequest) (Check, error)
	GetCheck(ctx context.Context, checkID string) (CheckResult, error)
	CreateWebSDKToken(ctx context.Context, req TokenRequest) (TokenResponse, error)
}

type HTTPTransport interface {
	Do(req *http.Request) (*http.Response, error)
}

type Options struct {
	// Override for testing the HTTP client. When set it must add authentication itself.
	HTTPClient HTTPTransport
	// Structured logger using slog package
	Logger *slog.Logger
	// Context timeout, applied when the caller has no deadline
	Timeout time.Duration
	Tracer  trace.Tracer
	Meter   metric.Meter
}

type service struct {
	baseURL string
	client  HTTPTransport
	logger  *slog.Logger
	timeout time.Duration
	tracer  trace.Tracer

	duration metric.Float64Histogram
}

func New(cfg *core.ComplyCubeConfig, opts Options) (Service, error) {
	if cfg == nil {
		return nil, errors.New("cfg is required")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("cfg.BaseURL is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(
		slog.String("component", "onboarding"),
		slog.String("vendor", "complycube"),
	)

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = cfg.Timeout
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := opts.HTTPClient
	if client == nil {
		if strings.TrimSpace(cfg.APIKey) == "" {
			return nil, errors.New("cfg.APIKey is required")
		}
		client = oauthLocal.APIKeyHTTPClient(
			context.Background(),
			cfg.APIKey,
			oauthLocal.HeaderPreservingClient(timeout),
		)
	}

	tracer := opts.Tracer
	if tracer == nil {
		tracer = otel.Tracer(instrumentationName)
	}

	meter := opts.Meter
	if meter == nil {
		meter = otel.Meter(instrumentationName)
	}

	duration, err := meter.Float64Histogram(
		"complycube.request.duration",
		metric.WithDescription("Latency of ComplyCube API calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		logger.Warn("complycube duration histogram unavailable", slog.Any("error", err))
	}

	return &service{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		client:   client,
		logger:   logger,
		timeout:  timeout,
		tracer:   tracer,
		duration: duration,
	}, nil
}

// do sends one request to the provider and returns the raw 2xx body.
func (s *service) do(ctx context.Context, op, method, path string, in any) ([]byte, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	ctx, span := s.tracer.Start(ctx, "complycube."+strings.ReplaceAll(op, " ", "_"),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("complycube.operation", op),
			attribute.String("http.request.method", method),
		),
	)
	defer span.End()

	log := s.logger.With(
		slog.String("operation", op),
		slog.String("path", path),
	)

	fail := func(upErr *UpstreamError) error {
		span.RecordError(upErr)
		span.SetStatus(codes.Error, upErr.Details())
		return upErr
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			log.Error("complycube marshal failed", slog.Any("error", err))
			return nil, fail(&UpstreamError{Operation: op, Err: fmt.Errorf("marshal request: %w", err)})
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		log.Error("complycube create request failed", slog.Any("error", err))
		return nil, fail(&UpstreamError{Operation: op, Err: fmt.Errorf("create request: %w", err)})
	}

	req.Header.Set("Accept", applicationJSON)
	if in != nil {
		req.Header.Set("Content-Type", applicationJSON)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	latency := time.Since(start)
	s.recordDuration(ctx, op, latency)

	if err != nil {
		log.Error("complycube request failed",
			slog.Any("error", err),
			slog.Duration("latency", latency),
		)
		return nil, fail(&UpstreamError{Operation: op, Err: err})
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("complycube read body failed", slog.Any("error", err))
		return nil, fail(&UpstreamError{Operation: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)})
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	log.Info("complycube response received",
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", latency),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := strings.TrimSpace(string(respBytes))
		if len(snippet) > maxErrBodyLogBytes {
			snippet = snippet[:maxErrBodyLogBytes] + "..."
		}

		log.Error("complycube non-2xx",
			slog.Int("status", resp.StatusCode),
			slog.String("body_snippet", snippet),
		)

		return nil, fail(&UpstreamError{
			Operation:  op,
			StatusCode: resp.StatusCode,
			Message:    providerMessage(respBytes),
		})
	}

	return respBytes, nil
}

func (s *service) recordDuration(ctx context.Context, op string, latency time.Duration) {
	if s.duration == nil {
		return
	}
	s.duration.Record(ctx, latency.Seconds(), metric.WithAttributes(attribute.String("complycube.operation", op)))
}

func decode[T any](op string, body []byte) (T, error) {
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return out, &UpstreamError{Operation: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return out, nil
}
