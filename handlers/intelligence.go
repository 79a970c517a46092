package handlers

import (
	"net/http"
	"strconv"

	"tripcraft/models"
	ai "tripcraft/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ItineraryHandler serves AI itinerary generation and the caller's generation history.
type ItineraryHandler struct {
	Service ai.ItineraryService
	History ai.GenerationHistory
}

func NewItineraryHandler(svc ai.ItineraryService, history ai.GenerationHistory) *ItineraryHandler {
	return &ItineraryHandler{Service: svc, History: history}
}

// GenerateHandler handles POST /api/ai/generate.
func (h *ItineraryHandler) GenerateHandler(c *gin.Context) {
	logger := getLogger(c)
	userID, _ := currentUserID(c)

	var req models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid itinerary request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	itinerary, err := h.Service.GenerateItinerary(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Itinerary generation failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"itinerary": itinerary})
}

// GenerationsHandler handles GET /api/ai/generations?limit=N.
func (h *ItineraryHandler) GenerationsHandler(c *gin.Context) {
	userID, _ := currentUserID(c)

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a number"})
		return
	}

	records, err := h.History.RecentGenerations(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err, "Failed to list generations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"generations": records})
}
