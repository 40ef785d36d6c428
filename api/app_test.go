package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DSACMS/kyc-onboarding-api/pkg/complycube"
	"github.com/DSACMS/kyc-onboarding-api/pkg/complycube/mocks"
	"github.com/DSACMS/kyc-onboarding-api/pkg/core"
	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

const validClaim = `{
	"firstName": "John",
	"lastName": "Doe",
	"dateOfBirth": "1990-01-01",
	"email": "john@example.com",
	"mobile": "+14155552671",
	"nationality": "US"
}`

type testApp struct {
	app    *fiber.App
	svc    *mocks.MockService
	reader *sdkmetric.ManualReader
}

func newTestApp(t *testing.T, opts ...func(*Config)) testApp {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	cfg := &Config{
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		ComplyCube: svc,
		Meter:      provider.Meter("test"),
		Now:        func() time.Time { return testNow },
		Config:     core.NewConfig(core.WithSkipAuth()),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	app, err := New(cfg)
	require.NoError(t, err)

	return testApp{app: app, svc: svc, reader: reader}
}

func (a testApp) do(t *testing.T, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	return a.doWithHeaders(t, method, path, body, nil)
}

func (a testApp) doWithHeaders(t *testing.T, method, path, body string, headers map[string]string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, out
}

type errorBody struct {
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details"`
}

func decodeError(t *testing.T, body []byte) errorBody {
	t.Helper()

	var out errorBody
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func TestNew_RequiresComplyCube(t *testing.T) {
	_, err := New(&Config{Config: core.NewConfig(core.WithSkipAuth())})
	require.Error(t, err)
}

func TestNew_CognitoMisconfigured(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := New(&Config{
		ComplyCube: mocks.NewMockService(ctrl),
		Config: core.NewConfig(core.WithSkipAuth(false), func(c *core.Config) {
			c.Cognito.Region = ""
		}),
	})
	require.ErrorContains(t, err, "cognito")
}

func TestRoutes_StatusAndNotFound(t *testing.T) {
	a := newTestApp(t)

	resp, body := a.do(t, http.MethodGet, "/", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Backend running!", string(body))

	resp, _ = a.do(t, http.MethodGet, "/status", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body = a.do(t, http.MethodGet, "/i-dont-exist", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Cannot GET /i-dont-exist", decodeError(t, body).Error)
}

func TestCreateClient(t *testing.T) {
	a := newTestApp(t)

	a.svc.EXPECT().
		CreateClient(gomock.Any(), complycube.CreateClientRequest{
			Type:       "person",
			Email:      "john@example.com",
			Mobile:     "+14155552671",
			Telephone:  "+14155552671",
			JoinedDate: "2024-06-15",
			PersonDetails: complycube.PersonDetails{
				FirstName:   "John",
				LastName:    "Doe",
				DOB:         "1990-01-01",
				Nationality: "US",
			},
		}).
		Return(complycube.Client{ID: "cli_1"}, nil)

	resp, body := a.do(t, http.MethodPost, "/clients", validClaim)

	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.JSONEq(t, `{"clientId":"cli_1"}`, string(body))
}

func TestCreateClient_MissingEmailNeverReachesProvider(t *testing.T) {
	a := newTestApp(t)
	// no EXPECT: any provider call fails the test

	resp, body := a.do(t, http.MethodPost, "/clients", `{
		"firstName": "John",
		"lastName": "Doe",
		"dateOfBirth": "1990-01-01"
	}`)

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	got := decodeError(t, body)
	assert.Equal(t, "Validation failed", got.Error)
	assert.JSONEq(t, `["email is required"]`, string(got.Details))
}

func TestCreateClient_AccumulatesValidationErrors(t *testing.T) {
	a := newTestApp(t)

	resp, body := a.do(t, http.MethodPost, "/clients", `{
		"firstName": "J0hn",
		"lastName": "Doe",
		"dateOfBirth": "2030-01-01",
		"email": "john@example"
	}`)

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `[
		"firstName may only contain letters, accents, hyphens, apostrophes and spaces",
		"dateOfBirth must not be in the future",
		"email must be a valid email address"
	]`, string(decodeError(t, body).Details))
}

func TestCreateClient_UpstreamError(t *testing.T) {
	tests := []struct {
		name    string
		message string
		details string
	}{
		{"provider message relayed", "Email already in use", `"Email already in use"`},
		{"no provider message", "", `"Unknown error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)

			a.svc.EXPECT().
				CreateClient(gomock.Any(), gomock.Any()).
				Return(complycube.Client{}, &complycube.UpstreamError{
					Operation:  "create client",
					StatusCode: http.StatusUnprocessableEntity,
					Message:    tt.message,
				})

			resp, body := a.do(t, http.MethodPost, "/clients", validClaim)

			require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
			got := decodeError(t, body)
			assert.Equal(t, "Failed to create client", got.Error)
			assert.JSONEq(t, tt.details, string(got.Details))
		})
	}
}

func TestCreateDocument(t *testing.T) {
	a := newTestApp(t)

	a.svc.EXPECT().
		CreateDocument(gomock.Any(), complycube.CreateDocumentRequest{ClientID: "cli_1", Type: "passport"}).
		Return(complycube.Document{ID: "doc_1"}, nil)

	resp, body := a.do(t, http.MethodPost, "/documents", `{"clientId":"cli_1","type":"passport"}`)

	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.JSONEq(t, `{"documentId":"doc_1"}`, string(body))

	resp, body = a.do(t, http.MethodPost, "/documents", `{"clientId":"cli_1","type":"selfie"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t,
		`["type must be one of [passport driving_license national_identity_card residence_permit]"]`,
		string(decodeError(t, body).Details),
	)
}

func TestUploadDocument_DefaultsToFront(t *testing.T) {
	a := newTestApp(t)

	confirmation := `{"id":"doc_1","images":[{"side":"front"}]}`

	a.svc.EXPECT().
		UploadDocument(gomock.Any(), "doc_1", "front", complycube.UploadDocumentRequest{
			FileName: "passport.jpg",
			Data:     "aGVsbG8=",
		}).
		Return(json.RawMessage(confirmation), nil)

	resp, body := a.do(t, http.MethodPost, "/documents/doc_1/upload", `{"fileName":"passport.jpg","data":"aGVsbG8="}`)

	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, confirmation, string(body))
	assert.Equal(t, fiber.MIMEApplicationJSON, resp.Header.Get(fiber.HeaderContentType))
}

func TestUploadDocument_BackSide(t *testing.T) {
	a := newTestApp(t)

	a.svc.EXPECT().
		UploadDocument(gomock.Any(), "doc_1", "back", gomock.Any()).
		Return(json.RawMessage(`{}`), nil)

	resp, _ := a.do(t, http.MethodPost, "/documents/doc_1/upload", `{"fileName":"b.jpg","data":"aGVsbG8=","side":"back"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCreateLivePhoto(t *testing.T) {
	a := newTestApp(t)

	a.svc.EXPECT().
		CreateLivePhoto(gomock.Any(), complycube.CreateLivePhotoRequest{ClientID: "cli_1", Data: "aGVsbG8="}).
		Return(complycube.LivePhoto{ID: "lp_1"}, nil)

	resp, body := a.do(t, http.MethodPost, "/live-photos", `{"clientId":"cli_1","data":"aGVsbG8="}`)

	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.JSONEq(t, `{"livePhotoId":"lp_1"}`, string(body))
}

func TestCreateCheck(t *testing.T) {
	a := newTestApp(t)

	a.svc.EXPECT().
		CreateCheck(gomock.Any(), complycube.CreateCheckRequest{
			ClientID:    "cli_1",
			DocumentID:  "doc_1",
			LivePhotoID: "lp_1",
			Type:        "identity_check",
		}).
		Return(complycube.Check{ID: "chk_1"}, nil)

	resp, body := a.do(t, http.MethodPost, "/checks", `{"clientId":"cli_1","documentId":"doc_1","livePhotoId":"lp_1"}`)

	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.JSONEq(t, `{"checkId":"chk_1"}`, string(body))
}

func TestGetCheck_RelaysPayloadUnchanged(t *testing.T) {
	a := newTestApp(t)

	raw := `{"id":"chk_1","status":"pending","extra":{"kept":true}}`

	a.svc.EXPECT().
		GetCheck(gomock.Any(), "chk_1").
		Return(complycube.CheckResult{ID: "chk_1", Status: "pending", Raw: json.RawMessage(raw)}, nil)

	resp, body := a.do(t, http.MethodGet, "/checks/chk_1", "")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, raw, string(body))
}

func TestWebSDKToken(t *testing.T) {
	a := newTestApp(t)

	gomock.InOrder(
		a.svc.EXPECT().
			CreateWebSDKToken(gomock.Any(), complycube.TokenRequest{ClientID: "cli_1", Referrer: "*://*/*"}).
			Return(complycube.TokenResponse{Token: "tok_default"}, nil),
		a.svc.EXPECT().
			CreateWebSDKToken(gomock.Any(), complycube.TokenRequest{ClientID: "cli_1", Referrer: "https://app.example/*"}).
			Return(complycube.TokenResponse{Token: "tok_custom"}, nil),
	)

	resp, body := a.do(t, http.MethodPost, "/web-sdk-token", `{"clientId":"cli_1"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.JSONEq(t, `{"token":"tok_default"}`, string(body))

	resp, body = a.do(t, http.MethodPost, "/web-sdk-token", `{"clientId":"cli_1","referrer":"https://app.example/*"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.JSONEq(t, `{"token":"tok_custom"}`, string(body))
}

func clearCheck() complycube.CheckResult {
	return complycube.CheckResult{
		ID:     "chk_1",
		Status: complycube.CheckStatusComplete,
		Document: &complycube.CheckDocument{
			Authenticity: complycube.StatusField{Status: "clear"},
			Validity:     complycube.StatusField{Status: "clear"},
			FirstName:    complycube.ValueField{Value: "JOHN"},
			LastName:     complycube.ValueField{Value: "DOE"},
			DateOfBirth:  complycube.ValueField{Value: "1990-01-01"},
		},
	}
}

func TestVerify(t *testing.T) {
	a := newTestApp(t)

	mismatch := clearCheck()
	mismatch.Document.DateOfBirth.Value = "1995-01-01"

	gomock.InOrder(
		a.svc.EXPECT().GetCheck(gomock.Any(), "chk_1").Return(clearCheck(), nil),
		a.svc.EXPECT().GetCheck(gomock.Any(), "chk_1").Return(mismatch, nil),
	)

	req := `{"firstName":"john","lastName":"doe","dateOfBirth":"1990-01-01","clientId":"cli_1","checkId":"chk_1"}`

	resp, body := a.do(t, http.MethodPost, "/verify", req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.JSONEq(t, `{"status":"Identity verified successfully"}`, string(body))

	resp, body = a.do(t, http.MethodPost, "/verify", req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.JSONEq(t, `{"status":"Identity verification failed: Provided details do not match document"}`, string(body))

	var rm metricdata.ResourceMetrics
	require.NoError(t, a.reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "kyc.verification.outcomes" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			assert.Len(t, sum.DataPoints, 2)
		}
	}
	assert.Equal(t, int64(2), total)
}

func TestVerify_ProviderFailure(t *testing.T) {
	a := newTestApp(t)

	a.svc.EXPECT().
		GetCheck(gomock.Any(), "chk_404").
		Return(complycube.CheckResult{}, &complycube.UpstreamError{
			Operation:  "get check",
			StatusCode: http.StatusNotFound,
			Message:    "Check not found",
		})

	resp, body := a.do(t, http.MethodPost, "/verify",
		`{"firstName":"john","lastName":"doe","dateOfBirth":"1990-01-01","checkId":"chk_404"}`)

	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	got := decodeError(t, body)
	assert.Equal(t, "Failed to get check", got.Error)
	assert.JSONEq(t, `"Check not found"`, string(got.Details))
}

func TestRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	a := newTestApp(t, func(c *Config) {
		c.Redis = rdb
		c.Config.RateLimit.Enabled = true
		c.Config.RateLimit.MaxRequests = 1
		c.Config.RateLimit.Window = time.Minute
	})

	a.svc.EXPECT().GetCheck(gomock.Any(), "chk_1").Return(clearCheck(), nil).Times(1)

	resp, _ := a.do(t, http.MethodGet, "/checks/chk_1", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = a.do(t, http.MethodGet, "/checks/chk_1", "")
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	// limiter fails open once redis is gone
	mr.Close()
	a.svc.EXPECT().GetCheck(gomock.Any(), "chk_1").Return(clearCheck(), nil).Times(1)

	resp, _ = a.do(t, http.MethodGet, "/checks/chk_1", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRateLimit_ForwardedClientsKeepOwnBudget(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	a := newTestApp(t, func(c *Config) {
		c.Redis = rdb
		c.Config.RateLimit.Enabled = true
		c.Config.RateLimit.MaxRequests = 1
		c.Config.RateLimit.Window = time.Minute
		c.Config.TrustedProxies = []string{"0.0.0.0/0"}
	})

	a.svc.EXPECT().GetCheck(gomock.Any(), "chk_1").Return(clearCheck(), nil).Times(2)

	from := func(ip string) map[string]string {
		return map[string]string{fiber.HeaderXForwardedFor: ip}
	}

	resp, _ := a.doWithHeaders(t, http.MethodGet, "/checks/chk_1", "", from("203.0.113.1"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = a.doWithHeaders(t, http.MethodGet, "/checks/chk_1", "", from("198.51.100.7"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = a.doWithHeaders(t, http.MethodGet, "/checks/chk_1", "", from("203.0.113.1"))
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestRateLimit_UntrustedForwardedHeaderIgnored(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	a := newTestApp(t, func(c *Config) {
		c.Redis = rdb
		c.Config.RateLimit.Enabled = true
		c.Config.RateLimit.MaxRequests = 1
		c.Config.RateLimit.Window = time.Minute
	})

	a.svc.EXPECT().GetCheck(gomock.Any(), "chk_1").Return(clearCheck(), nil).Times(1)

	resp, _ := a.doWithHeaders(t, http.MethodGet, "/checks/chk_1", "",
		map[string]string{fiber.HeaderXForwardedFor: "203.0.113.1"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// without trusted proxies a spoofed header does not buy a fresh budget
	resp, _ = a.doWithHeaders(t, http.MethodGet, "/checks/chk_1", "",
		map[string]string{fiber.HeaderXForwardedFor: "198.51.100.7"})
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}
