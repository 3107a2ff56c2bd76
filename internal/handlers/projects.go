package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"video-editor-backend/internal/models"
	"video-editor-backend/internal/storage"
	"video-editor-backend/internal/supabase"
)

type ProjectsHandler struct {
	store  storage.Storage
	events supabase.EventPublisher
	logger zerolog.Logger
}

func NewProjectsHandler(store storage.Storage, events supabase.EventPublisher, logger zerolog.Logger) *ProjectsHandler {
	return &ProjectsHandler{
		store:  store,
		events: events,
		logger: logger.With().Str("handler", "projects").Logger(),
	}
}

// ListProjects godoc
// @Summary     List all projects
// @Description Returns every project ordered by most recently updated first
// @Tags        projects
// @Produce     json
// @Success     200 {array} models.Project
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/projects [get]
func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	projects, err := h.store.GetAllProjects()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list projects")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *ProjectsHandler) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid project id"})
		return
	}

	project, err := h.store.GetProject(id)
	if err != nil {
		writeStorageError(c, err, "project not found")
		return
	}

	c.JSON(http.StatusOK, project)
}

// CreateProject godoc
// @Summary     Create a project
// @Description Creates a project, applying defaults for omitted fields
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       project body models.CreateProjectRequest true "Project fields"
// @Success     201 {object} models.Project
// @Failure     400 {object} models.ErrorResponse
// @Router      /api/projects [post]
func (h *ProjectsHandler) CreateProject(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid project data"})
		return
	}

	status, ok := parseStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid project status"})
		return
	}

	project, err := h.store.CreateProject(models.InsertProject{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Status:      status,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create project")
		writeStorageError(c, err, "project not found")
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *ProjectsHandler) UpdateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid project id"})
		return
	}

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid project data"})
		return
	}

	// A present title must pass the same rule create enforces.
	if req.Title != nil && *req.Title == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "project title must not be empty"})
		return
	}

	status, ok := parseStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid project status"})
		return
	}

	project, err := h.store.UpdateProject(id, models.ProjectUpdate{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Status:      status,
	})
	if err != nil {
		writeStorageError(c, err, "project not found")
		return
	}

	if status != nil {
		h.events.PublishProjectEvent(project.ID, "status_changed",
			supabase.StatusChangedPayload(project.ID, project.Status))
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectsHandler) DeleteProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid project id"})
		return
	}

	deleted, err := h.store.DeleteProject(id)
	if err != nil {
		h.logger.Error().Err(err).Str("project_id", id.String()).Msg("failed to delete project")
		writeStorageError(c, err, "project not found")
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "project not found"})
		return
	}

	h.events.PublishProjectEvent(id, "project_deleted", supabase.ProjectDeletedPayload(id))

	c.JSON(http.StatusOK, models.MessageResponse{Message: "project deleted successfully"})
}

// parseStatus validates an optional status value against the documented
// enum. The status field is a closed set, not a free-form write.
func parseStatus(raw *string) (*models.ProjectStatus, bool) {
	if raw == nil {
		return nil, true
	}
	status := models.ProjectStatus(*raw)
	if !status.Valid() {
		return nil, false
	}
	return &status, true
}
