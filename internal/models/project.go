package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus is the lifecycle state of a project as shown on the dashboard.
type ProjectStatus string

const (
	StatusDraft     ProjectStatus = "draft"
	StatusExporting ProjectStatus = "exporting"
	StatusCompleted ProjectStatus = "completed"
)

// Valid reports whether s is one of the documented statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusExporting, StatusCompleted:
		return true
	}
	return false
}

const DefaultDuration = "0:00"

type Project struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	Duration    string        `json:"duration"`
	Status      ProjectStatus `json:"status"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// InsertProject carries the caller-supplied subset of project fields.
// Server-assigned fields (id, updatedAt) are deliberately absent.
type InsertProject struct {
	Title       string
	Description *string
	Duration    *string
	Status      *ProjectStatus
}

// ProjectUpdate is a partial update: nil fields are left untouched.
type ProjectUpdate struct {
	Title       *string
	Description *string
	Duration    *string
	Status      *ProjectStatus
}
