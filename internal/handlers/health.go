package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"video-editor-backend/internal/media"
)

type HealthHandler struct {
	mediaClient *media.Client
}

func NewHealthHandler(mediaClient *media.Client) *HealthHandler {
	return &HealthHandler{mediaClient: mediaClient}
}

// Health reports this backend's own liveness plus whether the media
// processing service is reachable. The processing service's raw /health
// endpoint is proxied separately.
func (h *HealthHandler) Health(c *gin.Context) {
	mediaStatus := "ok"
	if _, err := h.mediaClient.Health(); err != nil {
		mediaStatus = "unreachable"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"mediaService": mediaStatus,
	})
}
