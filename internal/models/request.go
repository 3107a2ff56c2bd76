package models

type CreateProjectRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Duration    *string `json:"duration"`
	Status      *string `json:"status"`
}

// UpdateProjectRequest accepts any subset of mutable project fields. An
// empty body is a valid no-op update that still refreshes updatedAt.
type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Duration    *string `json:"duration"`
	Status      *string `json:"status"`
}

type CreateFileRequest struct {
	ProjectID string `json:"projectId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Type      string `json:"type"`
	Size      *int64 `json:"size" binding:"required"`
	URL       string `json:"url" binding:"required"`
}
