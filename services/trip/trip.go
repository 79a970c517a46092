package trip

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tripRepo "tripcraft/database/repository/trip"
	"tripcraft/models"
	ai "tripcraft/services/intelligence"
	"tripcraft/utils"

	"go.uber.org/zap"
)

// CreateTrip validates the request, maps the itinerary onto stops and stores the
// whole graph in one transaction. With Generate set and no itinerary supplied, the
// itinerary is produced for the trip's day count first.
func (s *DefaultTripService) CreateTrip(ctx context.Context, userID string, req models.CreateTripRequest) (*models.Trip, error) {
	name, err := requireText("name", req.Name)
	if err != nil {
		return nil, err
	}
	place, err := requireText("place", req.Place)
	if err != nil {
		return nil, err
	}
	start, end, err := s.parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	days := models.DaysBetween(start, end)
	description := strings.TrimSpace(req.Description)

	itinerary := req.Itinerary
	if len(itinerary) == 0 && req.Generate {
		if s.Itinerary == nil {
			return nil, ErrGenerationOff
		}
		itinerary, err = s.Itinerary.GenerateItinerary(ctx, userID, models.GenerateItineraryRequest{
			Destination: place,
			Days:        days,
			Preferences: description,
		})
		if err != nil {
			return nil, err
		}
	}

	trip := &models.Trip{
		UserID:      userID,
		Name:        name,
		Place:       place,
		Description: description,
		StartDate:   start,
		EndDate:     end,
		Stops:       ItineraryToStops(ai.NormalizeItinerary(itinerary, days), place, start, end),
	}

	if err := s.Repo.Create(ctx, trip); err != nil {
		utils.GetLogger().Error("CreateTrip: failed to store trip", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}
	utils.GetLogger().Info("Trip created",
		zap.String("tripID", trip.ID), zap.String("userID", userID), zap.Int("stops", len(trip.Stops)))

	return s.GetTrip(ctx, userID, trip.ID)
}

// GetTrip returns the trip graph when it belongs to the user.
func (s *DefaultTripService) GetTrip(ctx context.Context, userID, tripID string) (*models.Trip, error) {
	if err := checkTripID(tripID); err != nil {
		return nil, err
	}
	trip, err := s.Repo.GetByIDForUser(ctx, userID, tripID)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return trip, nil
}

// ListTrips returns the user's trips, newest first.
func (s *DefaultTripService) ListTrips(ctx context.Context, userID string) ([]models.Trip, error) {
	trips, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		utils.GetLogger().Error("ListTrips: failed to load trips", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}

// UpdateTrip patches the trip's own fields. Stop dates are clamped into a changed range.
func (s *DefaultTripService) UpdateTrip(ctx context.Context, userID, tripID string, req models.UpdateTripRequest) (*models.Trip, error) {
	trip, err := s.GetTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if trip.Name, err = requireText("name", *req.Name); err != nil {
			return nil, err
		}
	}
	if req.Place != nil {
		if trip.Place, err = requireText("place", *req.Place); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		trip.Description = strings.TrimSpace(*req.Description)
	}
	if req.StartDate != nil {
		if trip.StartDate, err = parseDate("startDate", *req.StartDate); err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil {
		if trip.EndDate, err = parseDate("endDate", *req.EndDate); err != nil {
			return nil, err
		}
	}
	if err := s.validateRange(trip.StartDate, trip.EndDate); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, trip); err != nil {
		return nil, translateRepoError(err)
	}
	return s.GetTrip(ctx, userID, tripID)
}

// DeleteTrip removes the trip graph and, best effort, its cover photo.
func (s *DefaultTripService) DeleteTrip(ctx context.Context, userID, tripID string) error {
	if err := checkTripID(tripID); err != nil {
		return err
	}
	coverID, err := s.Repo.Delete(ctx, userID, tripID)
	if err != nil {
		return translateRepoError(err)
	}
	if coverID != "" {
		s.removeAsset(ctx, coverID)
	}
	return nil
}

func translateRepoError(err error) error {
	switch {
	case errors.Is(err, tripRepo.ErrTripNotFound):
		return ErrTripNotFound
	case errors.Is(err, tripRepo.ErrStopNotFound):
		return ErrStopNotFound
	case errors.Is(err, tripRepo.ErrInvalidStopOrder):
		return ErrInvalidStopOrder
	}
	return err
}
