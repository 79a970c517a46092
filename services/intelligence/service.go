package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tripcraft/models"
	"tripcraft/utils"

	"go.uber.org/zap"
)

const (
	defaultGenerationTimeout = 45 * time.Second
	generationLogTimeout     = 3 * time.Second
)

// GenerateItinerary returns a normalized itinerary, from cache when possible.
func (s *DefaultItineraryService) GenerateItinerary(ctx context.Context, userID string, req models.GenerateItineraryRequest) ([]models.ItineraryDay, error) {
	logger := utils.GetLogger()

	destination := strings.TrimSpace(req.Destination)
	if destination == "" || req.Days < 1 || (s.MaxDays > 0 && req.Days > s.MaxDays) {
		return nil, ErrInvalidRequest
	}

	key := CacheKey(destination, req.Days, req.Preferences)
	record := models.GenerationRecord{
		UserID:      userID,
		Destination: destination,
		Days:        req.Days,
		Preferences: strings.TrimSpace(req.Preferences),
		Model:       s.ModelName,
	}

	if s.Cache != nil {
		days, ok, err := s.Cache.Get(ctx, key)
		if err != nil {
			logger.Warn("GenerateItinerary: cache read failed", zap.Error(err))
		} else if ok {
			record.Outcome = models.GenerationCached
			s.appendLog(ctx, record)
			return days, nil
		}
	}

	if s.Generator == nil {
		return nil, ErrGeneratorUnavailable
	}

	record.Prompt = BuildItineraryPrompt(destination, req.Days, req.Preferences)

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultGenerationTimeout
	}
	genCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	started := time.Now()
	text, err := s.Generator.Generate(genCtx, record.Prompt)
	record.LatencyMS = time.Since(started).Milliseconds()
	record.RawResponse = text
	if err != nil {
		record.Outcome = models.GenerationFailed
		record.Error = err.Error()
		s.appendLog(ctx, record)
		logger.Error("GenerateItinerary: model call failed", zap.String("destination", destination), zap.Error(err))
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}

	raw, err := ExtractItinerary(text)
	if err != nil {
		record.Outcome = models.GenerationMalformed
		if errors.Is(err, ErrNoItinerary) {
			record.Outcome = models.GenerationNoJSON
		}
		record.Error = err.Error()
		s.appendLog(ctx, record)
		logger.Warn("GenerateItinerary: unusable model output",
			zap.String("destination", destination), zap.String("outcome", record.Outcome), zap.Error(err))
		return nil, err
	}

	days := NormalizeItinerary(raw, req.Days)
	if !hasActivities(days) {
		record.Outcome = models.GenerationMalformed
		record.Error = "itinerary has no usable activities"
		s.appendLog(ctx, record)
		return nil, ErrMalformedItinerary
	}

	record.Outcome = models.GenerationOK
	s.appendLog(ctx, record)

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, days); err != nil {
			logger.Warn("GenerateItinerary: cache write failed", zap.Error(err))
		}
	}
	return days, nil
}

// appendLog writes the record on a context detached from request cancellation.
// Failures are only logged.
func (s *DefaultItineraryService) appendLog(ctx context.Context, record models.GenerationRecord) {
	if s.Log == nil {
		return
	}
	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), generationLogTimeout)
	defer cancel()

	if _, err := s.Log.Append(logCtx, record); err != nil {
		utils.GetLogger().Warn("GenerateItinerary: failed to append generation log", zap.Error(err))
	}
}
