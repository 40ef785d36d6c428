package handlers

import "github.com/DSACMS/kyc-onboarding-api/pkg/verification"

// IdentityClaim is the onboarding form as the browser submits it.
type IdentityClaim struct {
	FirstName   string `json:"firstName" validate:"required,personname"`
	LastName    string `json:"lastName" validate:"required,personname"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,isodate,notfuture"`
	Email       string `json:"email" validate:"required,emailaddr"`
	Mobile      string `json:"mobile,omitempty" validate:"omitempty,e164"`
	Nationality string `json:"nationality,omitempty" validate:"omitempty,iso3166_1_alpha2"`
}

type CreateClientResponse struct {
	ClientID string `json:"clientId"`
}

type CreateDocumentRequest struct {
	ClientID string `json:"clientId" validate:"required"`
	Type     string `json:"type" validate:"required,documenttype"`
}

type CreateDocumentResponse struct {
	DocumentID string `json:"documentId"`
}

type UploadDocumentRequest struct {
	FileName string `json:"fileName" validate:"required"`
	Data     string `json:"data" validate:"required,base64"`
	// Defaults to front.
	Side string `json:"side,omitempty" validate:"omitempty,oneof=front back"`
}

type CreateLivePhotoRequest struct {
	ClientID string `json:"clientId" validate:"required"`
	Data     string `json:"data" validate:"required,base64"`
}

type CreateLivePhotoResponse struct {
	LivePhotoID string `json:"livePhotoId"`
}

type CreateCheckRequest struct {
	ClientID    string `json:"clientId" validate:"required"`
	DocumentID  string `json:"documentId" validate:"required"`
	LivePhotoID string `json:"livePhotoId" validate:"required"`
}

type CreateCheckResponse struct {
	CheckID string `json:"checkId"`
}

type WebSDKTokenRequest struct {
	ClientID string `json:"clientId" validate:"required"`
	Referrer string `json:"referrer,omitempty"`
}

type WebSDKTokenResponse struct {
	Token string `json:"token"`
}

type VerifyRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,isodate"`
	ClientID    string `json:"clientId,omitempty"`
	CheckID     string `json:"checkId" validate:"required"`
}

func (r VerifyRequest) Claim() verification.Claim {
	return verification.Claim{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DateOfBirth: r.DateOfBirth,
	}
}

type VerifyResponse struct {
	Status verification.Outcome `json:"status"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
