package trip

import (
	"context"

	"tripcraft/models"
	"tripcraft/utils"

	"go.uber.org/zap"
)

// SaveItinerary replaces every stop and activity of the trip with the edited list.
// Sequences and positions follow input order.
func (s *DefaultTripService) SaveItinerary(ctx context.Context, userID, tripID string, inputs []models.StopInput) (*models.Trip, error) {
	trip, err := s.GetTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	stops := make([]models.Stop, 0, len(inputs))
	for i, in := range inputs {
		stop, err := stopFromInput(i, in, trip.StartDate, trip.EndDate)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}

	if err := s.Repo.ReplaceStops(ctx, userID, tripID, stops); err != nil {
		utils.GetLogger().Error("SaveItinerary: failed to replace stops", zap.String("tripID", tripID), zap.Error(err))
		return nil, translateRepoError(err)
	}
	return s.GetTrip(ctx, userID, tripID)
}

// AddStop appends a stop after the trip's current last stop.
func (s *DefaultTripService) AddStop(ctx context.Context, userID, tripID string, in models.StopInput) (*models.Trip, error) {
	trip, err := s.GetTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	stop, err := stopFromInput(len(trip.Stops), in, trip.StartDate, trip.EndDate)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.AppendStop(ctx, userID, tripID, &stop); err != nil {
		return nil, translateRepoError(err)
	}
	return s.GetTrip(ctx, userID, tripID)
}

// RemoveStop deletes one stop; the remaining stops keep a gapless sequence.
func (s *DefaultTripService) RemoveStop(ctx context.Context, userID, tripID, stopID string) (*models.Trip, error) {
	if err := checkTripID(tripID); err != nil {
		return nil, err
	}
	if err := checkStopID(stopID); err != nil {
		return nil, err
	}
	if err := s.Repo.DeleteStop(ctx, userID, tripID, stopID); err != nil {
		return nil, translateRepoError(err)
	}
	return s.GetTrip(ctx, userID, tripID)
}

// ReorderStops sets the display order to stopIDs, which must name every stop once.
func (s *DefaultTripService) ReorderStops(ctx context.Context, userID, tripID string, stopIDs []string) (*models.Trip, error) {
	if err := checkTripID(tripID); err != nil {
		return nil, err
	}
	for _, id := range stopIDs {
		if checkStopID(id) != nil {
			return nil, ErrInvalidStopOrder
		}
	}
	if err := s.Repo.ReorderStops(ctx, userID, tripID, stopIDs); err != nil {
		return nil, translateRepoError(err)
	}
	return s.GetTrip(ctx, userID, tripID)
}
