package storage

import (
	"context"
	"fmt"
	"io"

	"tripcraft/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// CloudinaryStorage implements MediaStorage on Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage builds a client from account credentials.
func NewCloudinaryStorage(cloudName, apiKey, apiSecret string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true
	utils.GetLogger().Info("Cloudinary storage initialized", zap.String("cloudName", cloudName))
	return &CloudinaryStorage{cld: cld}, nil
}

// UploadImage uploads an image into destFolder and returns its public ID and HTTPS URL.
func (s *CloudinaryStorage) UploadImage(ctx context.Context, file io.Reader, destFolder string) (*UploadedAsset, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: destFolder,
	})
	if err != nil {
		return nil, fmt.Errorf("CloudinaryStorage: failed to upload file: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("CloudinaryStorage: upload rejected: %s", result.Error.Message)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("CloudinaryStorage: no public ID returned")
	}
	return &UploadedAsset{PublicID: result.PublicID, SecureURL: result.SecureURL}, nil
}

// DeleteFile deletes a file from Cloudinary given its public ID. Missing assets are not an error.
func (s *CloudinaryStorage) DeleteFile(ctx context.Context, publicID string) error {
	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("CloudinaryStorage: failed to delete file: %w", err)
	}
	if result.Error.Message != "" {
		return fmt.Errorf("CloudinaryStorage: delete rejected: %s", result.Error.Message)
	}
	return nil
}
