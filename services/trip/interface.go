package trip

import (
	"context"
	"io"

	tripRepo "tripcraft/database/repository/trip"
	"tripcraft/models"
	ai "tripcraft/services/intelligence"
	"tripcraft/services/storage"
)

// TripService covers trip creation, itinerary editing and derived views.
type TripService interface {
	CreateTrip(ctx context.Context, userID string, req models.CreateTripRequest) (*models.Trip, error)
	GetTrip(ctx context.Context, userID, tripID string) (*models.Trip, error)
	ListTrips(ctx context.Context, userID string) ([]models.Trip, error)
	UpdateTrip(ctx context.Context, userID, tripID string, req models.UpdateTripRequest) (*models.Trip, error)
	DeleteTrip(ctx context.Context, userID, tripID string) error

	SaveItinerary(ctx context.Context, userID, tripID string, stops []models.StopInput) (*models.Trip, error)
	AddStop(ctx context.Context, userID, tripID string, stop models.StopInput) (*models.Trip, error)
	RemoveStop(ctx context.Context, userID, tripID, stopID string) (*models.Trip, error)
	ReorderStops(ctx context.Context, userID, tripID string, stopIDs []string) (*models.Trip, error)

	Budget(ctx context.Context, userID, tripID string) (*models.BudgetSummary, error)
	SetCoverPhoto(ctx context.Context, userID, tripID string, file io.Reader) (*models.Trip, error)
}

// AssetCleaner schedules removal of a stored media asset in the background.
type AssetCleaner interface {
	ScheduleAssetDeletion(ctx context.Context, publicID string) error
}

// DefaultTripService is the production implementation.
type DefaultTripService struct {
	Repo      tripRepo.TripRepository
	Itinerary ai.ItineraryService
	Storage   storage.MediaStorage
	// Cleanup is optional; without it stale assets are deleted inline.
	Cleanup AssetCleaner
	MaxDays int
}
