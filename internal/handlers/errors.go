package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"video-editor-backend/internal/models"
	"video-editor-backend/internal/storage"
)

// writeStorageError maps storage sentinels onto HTTP status codes. notFoundMsg
// names the entity so 404 bodies read naturally ("project not found").
func writeStorageError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: notFoundMsg})
	case errors.Is(err, storage.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "referenced project does not exist"})
	case errors.Is(err, storage.ErrConflict):
		c.JSON(http.StatusConflict, models.ErrorResponse{Message: "record already exists"})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "storage operation failed"})
	}
}
