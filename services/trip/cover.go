package trip

import (
	"context"
	"fmt"
	"io"

	"tripcraft/models"
	"tripcraft/services/storage"
	"tripcraft/utils"

	"go.uber.org/zap"
)

// SetCoverPhoto uploads a new cover image for the trip and drops the previous one.
func (s *DefaultTripService) SetCoverPhoto(ctx context.Context, userID, tripID string, file io.Reader) (*models.Trip, error) {
	if s.Storage == nil {
		return nil, storage.ErrStorageDisabled
	}
	trip, err := s.GetTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	previousID := trip.CoverPhotoID

	asset, err := s.Storage.UploadImage(ctx, file, "trips/"+tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to upload cover photo: %w", err)
	}

	if err := s.Repo.SetCoverPhoto(ctx, userID, tripID, asset.SecureURL, asset.PublicID); err != nil {
		// the trip vanished or the write failed, so the fresh upload is orphaned
		s.removeAsset(ctx, asset.PublicID)
		return nil, translateRepoError(err)
	}

	if previousID != "" && previousID != asset.PublicID {
		s.removeAsset(ctx, previousID)
	}
	return s.GetTrip(ctx, userID, tripID)
}

// removeAsset queues the asset for deletion, falling back to an inline delete.
// Failures are only logged.
func (s *DefaultTripService) removeAsset(ctx context.Context, publicID string) {
	logger := utils.GetLogger()
	if s.Cleanup != nil {
		err := s.Cleanup.ScheduleAssetDeletion(ctx, publicID)
		if err == nil {
			return
		}
		logger.Warn("removeAsset: enqueue failed, deleting inline", zap.String("publicID", publicID), zap.Error(err))
	}
	if s.Storage == nil {
		return
	}
	if err := s.Storage.DeleteFile(ctx, publicID); err != nil {
		logger.Warn("removeAsset: failed to delete asset", zap.String("publicID", publicID), zap.Error(err))
	}
}
