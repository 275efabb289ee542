package storage

import (
	"context"
	"io"
)

// UploadResult carries the identifiers the external service assigned.
type UploadResult struct {
	PublicID string
	URL      string
}

// Uploader relays image files to external cloud storage.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader) (*UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}
