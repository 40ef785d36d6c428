package complycube

import (
	"context"
	"net/http"
)

const opCreateLivePhoto = "create live photo"

func (s *service) CreateLivePhoto(ctx context.Context, req CreateLivePhotoRequest) (LivePhoto, error) {
	body, err := s.do(ctx, opCreateLivePhoto, http.MethodPost, "/livePhotos", req)
	if err != nil {
		return LivePhoto{}, err
	}

	return decode[LivePhoto](opCreateLivePhoto, body)
}
