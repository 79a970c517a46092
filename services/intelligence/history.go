package ai

import (
	"context"
	"fmt"

	"tripcraft/models"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// RecentGenerations returns the user's latest generation attempts, newest first.
// The limit is clamped to 1..100 and defaults to 20.
func (s *DefaultItineraryService) RecentGenerations(ctx context.Context, userID string, limit int64) ([]models.GenerationRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if s.Log == nil {
		return []models.GenerationRecord{}, nil
	}

	records, err := s.Log.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	if records == nil {
		records = []models.GenerationRecord{}
	}
	return records, nil
}
