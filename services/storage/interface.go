package storage

import (
	"context"
	"time"
)

// StorageService defines the interface for listing photo storage operations.
type StorageService interface {
	// UploadFile uploads a local file into destFolder and returns the
	// permanent public identifier.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a file by its public identifier.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL constructs a public URL for a stored file.
	GetDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
	// GetSecureDownloadURL generates a signed, short-lived URL.
	GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
}
