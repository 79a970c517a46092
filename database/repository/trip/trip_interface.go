package tripRepo

import (
	"context"
	"errors"

	"tripcraft/models"
)

var (
	// ErrTripNotFound covers both missing trips and trips owned by someone else.
	ErrTripNotFound = errors.New("trip not found")
	// ErrStopNotFound is returned when the stop does not belong to the trip.
	ErrStopNotFound = errors.New("stop not found")
	// ErrInvalidStopOrder is returned when a reorder list is not a permutation of the trip's stops.
	ErrInvalidStopOrder = errors.New("stop order must list every stop of the trip exactly once")
)

// TripRepository persists the Trip -> Stops -> Activities graph.
// Every method is scoped to the owning user.
type TripRepository interface {
	// Create writes the trip, its stops and their activities in one transaction.
	// Missing IDs are generated; sequences and positions are taken from slice order.
	Create(ctx context.Context, trip *models.Trip) error
	// GetByIDForUser loads a trip with stops ordered by sequence and activities by position.
	GetByIDForUser(ctx context.Context, userID, tripID string) (*models.Trip, error)
	// ListByUser loads the user's trips, newest first, with their stops and activities.
	ListByUser(ctx context.Context, userID string) ([]models.Trip, error)
	// Update stores the trip's scalar fields and clamps stop dates into the new range.
	Update(ctx context.Context, trip *models.Trip) error
	// Delete removes the trip and, by cascade, its stops and activities.
	// It returns the cover photo asset id, if any.
	Delete(ctx context.Context, userID, tripID string) (string, error)
	// ReplaceStops swaps every stop and activity of the trip for the given ones.
	ReplaceStops(ctx context.Context, userID, tripID string, stops []models.Stop) error
	// AppendStop adds a stop after the trip's last stop.
	AppendStop(ctx context.Context, userID, tripID string, stop *models.Stop) error
	// DeleteStop removes a stop and closes the gap in the sequence.
	DeleteStop(ctx context.Context, userID, tripID, stopID string) error
	// ReorderStops rewrites stop sequences to match the given id order.
	ReorderStops(ctx context.Context, userID, tripID string, stopIDs []string) error
	// SetCoverPhoto stores the cover photo URL and asset id.
	SetCoverPhoto(ctx context.Context, userID, tripID, url, assetID string) error
}
