package complycube

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// UnknownErrorMessage is reported when the provider gave no usable message.
const UnknownErrorMessage = "Unknown error"

var ErrMissingID = errors.New("identifier is required")

// UpstreamError is returned for every failed provider call: transport failures
// (StatusCode 0), non-2xx responses and undecodable bodies.
type UpstreamError struct {
	Operation  string
	StatusCode int
	// Message is the provider's own error message, when the body carried one.
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "complycube %s failed", e.Operation)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status=%d", e.StatusCode)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Details is the message safe to hand back to the browser.
func (e *UpstreamError) Details() string {
	if e.Message != "" {
		return e.Message
	}
	return UnknownErrorMessage
}

// providerMessage pulls "message" out of a ComplyCube error body.
func providerMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Message)
}
