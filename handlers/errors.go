package handlers

import (
	"errors"
	"net/http"

	ai "tripcraft/services/intelligence"
	"tripcraft/services/storage"
	tripService "tripcraft/services/trip"
	userService "tripcraft/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps service errors to HTTP status codes and a client-facing message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, tripService.ErrInvalidTrip),
		errors.Is(err, tripService.ErrInvalidStopOrder),
		errors.Is(err, userService.ErrInvalidInput),
		errors.Is(err, ai.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, userService.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, tripService.ErrTripNotFound),
		errors.Is(err, tripService.ErrStopNotFound),
		errors.Is(err, userService.ErrUserNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, userService.ErrEmailTaken):
		return http.StatusConflict, err.Error()
	case errors.Is(err, ai.ErrNoItinerary),
		errors.Is(err, ai.ErrMalformedItinerary):
		return http.StatusBadGateway, "Failed to generate itinerary"
	case errors.Is(err, storage.ErrStorageDisabled),
		errors.Is(err, tripService.ErrGenerationOff),
		errors.Is(err, ai.ErrGeneratorUnavailable):
		return http.StatusServiceUnavailable, err.Error()
	}
	return http.StatusInternalServerError, "Internal server error"
}

// respondError writes the mapped error; server-side failures are logged with their cause.
func respondError(c *gin.Context, err error, msg string) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		getLogger(c).Error(msg, zap.Error(err))
	}
	c.JSON(status, gin.H{"error": message})
}
