package usecase

import (
	"context"
	"io"
	"time"
)

// ReportUsecase produces the on-demand financial report for the admin
// dashboard. The artifact is rendered per request and never persisted.
type ReportUsecase interface {
	// Financial renders the order history of [from, to) as a downloadable
	// PDF document.
	Financial(ctx context.Context, from, to time.Time) ([]byte, error)
}

// MediaUsecase uploads images to the managed media host and returns the
// public URL stored on product and order documents.
type MediaUsecase interface {
	UploadImage(ctx context.Context, filename string, content io.Reader) (string, error)
}
