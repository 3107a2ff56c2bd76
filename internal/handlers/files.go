package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"video-editor-backend/internal/models"
	"video-editor-backend/internal/storage"
)

type FilesHandler struct {
	store  storage.Storage
	logger zerolog.Logger
}

func NewFilesHandler(store storage.Storage, logger zerolog.Logger) *FilesHandler {
	return &FilesHandler{
		store:  store,
		logger: logger.With().Str("handler", "files").Logger(),
	}
}

func (h *FilesHandler) GetProjectFiles(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid project id"})
		return
	}

	files, err := h.store.GetProjectFiles(projectID)
	if err != nil {
		h.logger.Error().Err(err).Str("project_id", projectID.String()).Msg("failed to list files")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "failed to fetch files"})
		return
	}

	c.JSON(http.StatusOK, files)
}

// CreateFile registers an already-stored asset against a project. The bytes
// themselves arrive through the upload endpoint; this route only records
// metadata, e.g. for assets imported from the content library.
func (h *FilesHandler) CreateFile(c *gin.Context) {
	var req models.CreateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid file data"})
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid project id"})
		return
	}

	if *req.Size < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "file size must not be negative"})
		return
	}

	fileType := models.FileType(req.Type)
	if req.Type == "" || !fileType.Valid() {
		fileType = models.FileTypeOther
	}

	file, err := h.store.CreateFile(models.InsertFile{
		ProjectID: projectID,
		Name:      req.Name,
		Type:      fileType,
		Size:      *req.Size,
		URL:       req.URL,
	})
	if err != nil {
		writeStorageError(c, err, "project not found")
		return
	}

	c.JSON(http.StatusCreated, file)
}

func (h *FilesHandler) DeleteFile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid file id"})
		return
	}

	deleted, err := h.store.DeleteFile(id)
	if err != nil {
		h.logger.Error().Err(err).Str("file_id", id.String()).Msg("failed to delete file")
		writeStorageError(c, err, "file not found")
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "file not found"})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "file deleted successfully"})
}
