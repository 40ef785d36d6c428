package complycube

const (
	ClientTypePerson  = "person"
	CheckTypeIdentity = "identity_check"

	DocumentSideFront = "front"
	DocumentSideBack  = "back"
)

// DocumentTypes lists the identity document types ComplyCube accepts.
var DocumentTypes = []string{
	"passport",
	"driving_license",
	"national_identity_card",
	"residence_permit",
}

type PersonDetails struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DOB         string `json:"dob,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

type CreateClientRequest struct {
	Type          string        `json:"type"`
	Email         string        `json:"email"`
	Mobile        string        `json:"mobile,omitempty"`
	Telephone     string        `json:"telephone,omitempty"`
	JoinedDate    string        `json:"joinedDate,omitempty"`
	PersonDetails PersonDetails `json:"personDetails"`
}

type CreateDocumentRequest struct {
	ClientID string `json:"clientId"`
	Type     string `json:"type"`
}

type UploadDocumentRequest struct {
	FileName string `json:"fileName"`
	// Base64 encoded image
	Data string `json:"data"`
}

type CreateLivePhotoRequest struct {
	ClientID string `json:"clientId"`
	// Base64 encoded image
	Data string `json:"data"`
}

type CreateCheckRequest struct {
	ClientID    string `json:"clientId"`
	DocumentID  string `json:"documentId"`
	LivePhotoID string `json:"livePhotoId"`
	Type        string `json:"type"`
}

type TokenRequest struct {
	ClientID string `json:"clientId"`
	Referrer string `json:"referrer"`
}
