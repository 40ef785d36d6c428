package complycube

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

const (
	opCreateDocument = "create document"
	opUploadDocument = "upload document"
)

func (s *service) CreateDocument(ctx context.Context, req CreateDocumentRequest) (Document, error) {
	body, err := s.do(ctx, opCreateDocument, http.MethodPost, "/documents", req)
	if err != nil {
		return Document{}, err
	}

	return decode[Document](opCreateDocument, body)
}

// UploadDocument attaches an image to one side of a document. The provider's
// confirmation is returned untouched.
func (s *service) UploadDocument(ctx context.Context, documentID, side string, req UploadDocumentRequest) (json.RawMessage, error) {
	if documentID == "" {
		return nil, &UpstreamError{Operation: opUploadDocument, Err: ErrMissingID}
	}
	if side == "" {
		side = DocumentSideFront
	}

	path := "/documents/" + url.PathEscape(documentID) + "/upload/" + url.PathEscape(side)

	body, err := s.do(ctx, opUploadDocument, http.MethodPost, path, req)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}
