package port

import (
	"context"
	"io"
)

// UploadInput carries one document into the archive.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
}

// UploadOutput is the archive's record of a stored document.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage is the invoice document archive. Imported PDFs go in via
// Upload; retrieval hands out time-limited presigned URLs rather than
// proxying bytes through the service.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Delete(ctx context.Context, bucket, key string) error
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}
