package ai

import (
	"context"
	"errors"
	"time"

	generationRepo "tripcraft/database/repository/generation"
	"tripcraft/models"
)

var (
	// ErrInvalidRequest is returned when destination or day count is missing or out of range.
	ErrInvalidRequest = errors.New("destination and a valid number of days are required")
	// ErrNoItinerary is returned when the model response contains no JSON array.
	ErrNoItinerary = errors.New("model response did not contain an itinerary")
	// ErrMalformedItinerary is returned when the JSON array cannot be decoded or holds no usable days.
	ErrMalformedItinerary = errors.New("model returned a malformed itinerary")
	// ErrGeneratorUnavailable is returned on a cache miss when no model is configured.
	ErrGeneratorUnavailable = errors.New("itinerary generation is not configured")
)

// ItineraryService produces day-by-day itineraries.
type ItineraryService interface {
	GenerateItinerary(ctx context.Context, userID string, req models.GenerateItineraryRequest) ([]models.ItineraryDay, error)
}

// TextGenerator sends a prompt to a language model and returns its text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ItineraryCache stores normalized itineraries by request key.
type ItineraryCache interface {
	Get(ctx context.Context, key string) ([]models.ItineraryDay, bool, error)
	Set(ctx context.Context, key string, days []models.ItineraryDay) error
}

// GenerationHistory lists a user's recent generation attempts.
type GenerationHistory interface {
	RecentGenerations(ctx context.Context, userID string, limit int64) ([]models.GenerationRecord, error)
}

// DefaultItineraryService is the production implementation.
type DefaultItineraryService struct {
	Generator TextGenerator
	Cache     ItineraryCache
	Log       generationRepo.GenerationLog
	ModelName string
	MaxDays   int
	Timeout   time.Duration
}
