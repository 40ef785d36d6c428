package verification

import (
	"strings"

	"github.com/DSACMS/kyc-onboarding-api/pkg/complycube"
)

type Outcome string

const (
	OutcomeAuthenticityFailed Outcome = "Document authenticity check failed"
	OutcomeValidityFailed     Outcome = "Document validity check failed"
	OutcomeDetailsMismatch    Outcome = "Identity verification failed: Provided details do not match document"
	OutcomeAlertsDetected     Outcome = "Identity verification failed: Alerts detected"
	OutcomeVerified           Outcome = "Identity verified successfully"
)

// Outcomes in the order Decide evaluates them.
var Outcomes = []Outcome{
	OutcomeAuthenticityFailed,
	OutcomeValidityFailed,
	OutcomeDetailsMismatch,
	OutcomeAlertsDetected,
	OutcomeVerified,
}

func (o Outcome) String() string {
	return string(o)
}

// Verified reports whether o is the only passing outcome.
func (o Outcome) Verified() bool {
	return o == OutcomeVerified
}

// Claim is the identity the applicant typed into the onboarding form.
type Claim struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
}

// Decide maps a provider check result onto an outcome. The first failing rule
// wins. A result without a document block is treated as not authentic.
func Decide(claim Claim, result complycube.CheckResult) Outcome {
	doc := result.Document
	if doc == nil || doc.Authenticity.Status != complycube.BreakdownClear {
		return OutcomeAuthenticityFailed
	}

	if doc.Validity.Status != complycube.BreakdownClear {
		return OutcomeValidityFailed
	}

	if !strings.EqualFold(doc.FirstName.Value, claim.FirstName) ||
		!strings.EqualFold(doc.LastName.Value, claim.LastName) ||
		doc.DateOfBirth.Value != claim.DateOfBirth {
		return OutcomeDetailsMismatch
	}

	if len(result.Alerts) > 0 {
		return OutcomeAlertsDetected
	}

	return OutcomeVerified
}
