package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const maxCoverPhotoBytes = 10 << 20

var allowedCoverTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// UploadCoverHandler handles POST /api/trips/:id/cover with a multipart "file" field.
func (h *TripHandler) UploadCoverHandler(c *gin.Context) {
	userID, _ := currentUserID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}
	if fileHeader.Size > maxCoverPhotoBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "cover photo must be 10MB or smaller"})
		return
	}
	contentType := strings.ToLower(fileHeader.Header.Get("Content-Type"))
	if !allowedCoverTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cover photo must be a JPEG, PNG or WebP image"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	trip, err := h.Service.SetCoverPhoto(c.Request.Context(), userID, c.Param("id"), file)
	if err != nil {
		respondError(c, err, "Failed to set cover photo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}
