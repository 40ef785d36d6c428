package main

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/DSACMS/kyc-onboarding-api/pkg/core"
)

type routeTest struct {
	description  string
	route        string
	expectedCode int
	expectedBody string
}

func testConfig() core.Config {
	return core.NewConfig(
		core.WithSkipAuth(),
		core.WithOtelDisable(),
		core.WithComplyCubeAPIKey("test-key"),
	)
}

func TestBuildApp_RequiresAPIKey(t *testing.T) {
	cfg := testConfig()
	cfg.ComplyCube.APIKey = ""

	_, cleanup, err := buildApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), core.NewNoopOtelService())
	defer cleanup()

	if err == nil {
		t.Fatal("expected buildApp to fail without an API key")
	}
}

func TestRoutes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app, cleanup, err := buildApp(testConfig(), logger, core.NewNoopOtelService())
	if err != nil {
		t.Fatalf("buildApp error: %v", err)
	}
	defer cleanup()

	tests := []routeTest{
		{
			description:  "index route",
			route:        "/",
			expectedCode: http.StatusOK,
			expectedBody: "Backend running!",
		},
		{
			description:  "status without redis",
			route:        "/status",
			expectedCode: http.StatusOK,
		},
		{
			description:  "non existing route",
			route:        "/i-dont-exist",
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Cannot GET /i-dont-exist"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, tt.route, nil)
			if err != nil {
				t.Fatalf("http.NewRequest error: %v", err)
			}

			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatalf("app.Test error: %v", err)
			}
			defer resp.Body.Close()

			bodyBytes, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("io.ReadAll error: %v", err)
			}
			body := strings.TrimSpace(string(bodyBytes))

			if resp.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d. body=%q", tt.expectedCode, resp.StatusCode, body)
			}

			if tt.expectedBody != "" && body != tt.expectedBody {
				t.Fatalf("expected body %q, got %q", tt.expectedBody, body)
			}
		})
	}
}
