package storage

import (
	"context"
	"errors"
	"io"
)

// ErrStorageDisabled is returned when no media storage is configured.
var ErrStorageDisabled = errors.New("media storage is not configured")

// UploadedAsset identifies a stored file.
type UploadedAsset struct {
	PublicID  string
	SecureURL string
}

// MediaStorage defines the interface for media operations.
type MediaStorage interface {
	UploadImage(ctx context.Context, file io.Reader, destFolder string) (*UploadedAsset, error)
	DeleteFile(ctx context.Context, publicID string) error
}

// DisabledStorage rejects every call. Used when Cloudinary credentials are missing.
type DisabledStorage struct{}

func (DisabledStorage) UploadImage(context.Context, io.Reader, string) (*UploadedAsset, error) {
	return nil, ErrStorageDisabled
}

func (DisabledStorage) DeleteFile(context.Context, string) error {
	return ErrStorageDisabled
}
