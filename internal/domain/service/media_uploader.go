package service

import (
	"context"
	"io"
)

// MediaUploader pushes an image to the managed media host and returns the
// public secure URL used directly as the document's image reference.
// Uploaded content is not validated server-side by this system.
type MediaUploader interface {
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
}
