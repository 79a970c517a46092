package handlers

import (
	"net/http"

	"tripcraft/models"
	tripService "tripcraft/services/trip"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TripHandler serves the trip and itinerary editing endpoints.
type TripHandler struct {
	Service tripService.TripService
}

func NewTripHandler(svc tripService.TripService) *TripHandler {
	return &TripHandler{Service: svc}
}

// CreateTripHandler handles POST /api/trips.
func (h *TripHandler) CreateTripHandler(c *gin.Context) {
	logger := getLogger(c)
	userID, _ := currentUserID(c)

	var req models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create trip request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	trip, err := h.Service.CreateTrip(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create trip")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"trip": trip})
}

// ListTripsHandler handles GET /api/trips and GET /api/trips/fetch.
func (h *TripHandler) ListTripsHandler(c *gin.Context) {
	userID, _ := currentUserID(c)
	trips, err := h.Service.ListTrips(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list trips")
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// GetTripHandler handles GET /api/trips/:id.
func (h *TripHandler) GetTripHandler(c *gin.Context) {
	userID, _ := currentUserID(c)
	trip, err := h.Service.GetTrip(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to load trip")
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

// UpdateTripHandler handles PATCH /api/trips/:id.
func (h *TripHandler) UpdateTripHandler(c *gin.Context) {
	userID, _ := currentUserID(c)

	var req models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	trip, err := h.Service.UpdateTrip(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update trip")
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

// DeleteTripHandler handles DELETE /api/trips/:id.
func (h *TripHandler) DeleteTripHandler(c *gin.Context) {
	userID, _ := currentUserID(c)
	if err := h.Service.DeleteTrip(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete trip")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted"})
}

// BudgetHandler handles GET /api/trips/:id/budget.
func (h *TripHandler) BudgetHandler(c *gin.Context) {
	userID, _ := currentUserID(c)
	budget, err := h.Service.Budget(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to compute budget")
		return
	}
	c.JSON(http.StatusOK, gin.H{"budget": budget})
}
