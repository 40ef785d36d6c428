package complycube

import "encoding/json"

const (
	CheckStatusPending    = "pending"
	CheckStatusProcessing = "processing"
	CheckStatusComplete   = "complete"
	CheckStatusFailed     = "failed"

	// Outcome reported by the document authenticity and validity breakdowns when nothing was flagged.
	BreakdownClear = "clear"
)

type Client struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type Document struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
	Type     string `json:"type"`
}

type LivePhoto struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
}

type Check struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
	Type     string `json:"type"`
	Status   string `json:"status"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// CheckResult is the provider's check record. Raw holds the payload exactly as
// received so it can be relayed without loss.
type CheckResult struct {
	ID       string            `json:"id"`
	Status   string            `json:"status"`
	Document *CheckDocument    `json:"document,omitempty"`
	Alerts   []json.RawMessage `json:"alerts,omitempty"`

	Raw json.RawMessage `json:"-"`
}

type CheckDocument struct {
	Authenticity StatusField `json:"authenticity"`
	Validity     StatusField `json:"validity"`
	FirstName    ValueField  `json:"firstName"`
	LastName     ValueField  `json:"lastName"`
	DateOfBirth  ValueField  `json:"dateOfBirth"`
}

type StatusField struct {
	Status string `json:"status"`
}

type ValueField struct {
	Value string `json:"value"`
}
