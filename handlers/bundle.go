package handlers

import (
	userRepo "tripcraft/database/repository/user"
	"tripcraft/utils"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Used by the auth middleware.
	UserRepo  userRepo.UserRepository
	AuthCache utils.AuthCache

	User      *UserHandler
	Trip      *TripHandler
	Itinerary *ItineraryHandler
	Health    *HealthHandler
}
