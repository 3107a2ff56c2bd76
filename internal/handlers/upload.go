package handlers

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"video-editor-backend/internal/blob"
	"video-editor-backend/internal/metrics"
	"video-editor-backend/internal/models"
	"video-editor-backend/internal/storage"
	"video-editor-backend/internal/supabase"
)

// maxUploadSize bounds multipart form memory, matching the processing
// service's own upload limit.
const maxUploadSize = 512 << 20

type UploadHandler struct {
	store  storage.Storage
	blobs  blob.Store
	events supabase.EventPublisher
	logger zerolog.Logger
}

func NewUploadHandler(store storage.Storage, blobs blob.Store, events supabase.EventPublisher, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		store:  store,
		blobs:  blobs,
		events: events,
		logger: logger.With().Str("handler", "upload").Logger(),
	}
}

// Upload godoc
// @Summary     Upload a media file into a project
// @Description Persists the uploaded bytes and records a file row owned by the project
// @Tags        upload
// @Accept      multipart/form-data
// @Produce     json
// @Param       projectId formData string true "Owning project id"
// @Param       file formData file true "Media, audio or subtitle file"
// @Success     201 {object} models.File
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadSize); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "failed to parse multipart form"})
		return
	}

	projectID, err := uuid.Parse(c.PostForm("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid project id"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "no file uploaded"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "failed to open uploaded file"})
		return
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "failed to read uploaded file"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	fileType := models.FileTypeFromMime(contentType, fileHeader.Filename)

	// Stored under a fresh UUID so concurrent uploads of the same original
	// name never collide; the original name survives on the file record.
	storedName := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	publicURL, err := h.blobs.Save(storedName, data, contentType)
	if err != nil {
		h.logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("failed to persist upload")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "failed to store uploaded file"})
		return
	}

	file, err := h.store.CreateFile(models.InsertFile{
		ProjectID: projectID,
		Name:      fileHeader.Filename,
		Type:      fileType,
		Size:      int64(len(data)),
		URL:       publicURL,
	})
	if err != nil {
		// The record failed, so the stored bytes are unreachable garbage.
		if cleanupErr := h.blobs.Delete(storedName); cleanupErr != nil {
			h.logger.Warn().Err(cleanupErr).Str("stored_name", storedName).Msg("failed to clean up orphaned upload")
		}
		writeStorageError(c, err, "project not found")
		return
	}

	metrics.UploadBytes.Add(float64(len(data)))
	h.events.PublishProjectEvent(projectID, "upload_completed",
		supabase.UploadCompletedPayload(projectID, file.ID, file.Name))

	c.JSON(http.StatusCreated, file)
}
