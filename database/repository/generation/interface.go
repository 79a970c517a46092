package generationRepo

import (
	"context"

	"tripcraft/models"
)

// GenerationLog stores itinerary generation attempts.
type GenerationLog interface {
	Append(ctx context.Context, record models.GenerationRecord) (string, error)
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.GenerationRecord, error)
}

// NopGenerationLog discards every record. Used when MongoDB is not configured.
type NopGenerationLog struct{}

func (NopGenerationLog) Append(_ context.Context, record models.GenerationRecord) (string, error) {
	return record.ID, nil
}

func (NopGenerationLog) ListByUser(context.Context, string, int64) ([]models.GenerationRecord, error) {
	return []models.GenerationRecord{}, nil
}
