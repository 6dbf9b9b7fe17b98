package uploader

import (
	"context"
	"io"

	"luxemart/internal/models"
)

// Uploader pushes raw image bytes to the media store and returns a durable
// {url, public_id} reference. Implementations must fail rather than hang:
// a single upload is bounded by UploadTimeout.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, folder string) (models.Photo, error)
}
