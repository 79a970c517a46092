package handlers

import (
	"net/http"

	"tripcraft/models"

	"github.com/gin-gonic/gin"
)

type saveItineraryRequest struct {
	Stops []models.StopInput `json:"stops"`
}

type reorderStopsRequest struct {
	StopIDs []string `json:"stopIds" binding:"required"`
}

// SaveItineraryHandler handles PUT /api/trips/:id/itinerary.
func (h *TripHandler) SaveItineraryHandler(c *gin.Context) {
	userID, _ := currentUserID(c)

	var req saveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	trip, err := h.Service.SaveItinerary(c.Request.Context(), userID, c.Param("id"), req.Stops)
	if err != nil {
		respondError(c, err, "Failed to save itinerary")
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

// AddStopHandler handles POST /api/trips/:id/stops.
func (h *TripHandler) AddStopHandler(c *gin.Context) {
	userID, _ := currentUserID(c)

	var req models.StopInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	trip, err := h.Service.AddStop(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to add stop")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"trip": trip})
}

// RemoveStopHandler handles DELETE /api/trips/:id/stops/:stopId.
func (h *TripHandler) RemoveStopHandler(c *gin.Context) {
	userID, _ := currentUserID(c)
	trip, err := h.Service.RemoveStop(c.Request.Context(), userID, c.Param("id"), c.Param("stopId"))
	if err != nil {
		respondError(c, err, "Failed to remove stop")
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

// ReorderStopsHandler handles PUT /api/trips/:id/stops/order.
func (h *TripHandler) ReorderStopsHandler(c *gin.Context) {
	userID, _ := currentUserID(c)

	var req reorderStopsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	trip, err := h.Service.ReorderStops(c.Request.Context(), userID, c.Param("id"), req.StopIDs)
	if err != nil {
		respondError(c, err, "Failed to reorder stops")
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}
