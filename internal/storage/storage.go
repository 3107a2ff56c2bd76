// Package storage defines the persistence contract shared by the in-memory
// and PostgreSQL backends. Handlers depend only on the Storage interface so
// the backend is chosen once at startup and injected.
package storage

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"video-editor-backend/internal/models"
)

var (
	// ErrNotFound is returned by per-id lookups and updates when no record
	// with that id exists.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a unique field (username) already exists.
	ErrConflict = errors.New("record already exists")

	// ErrInvalidReference is returned when a file references a project that
	// does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")

	// ErrUnavailable is returned when the backend cannot be reached. It is
	// distinct from ErrNotFound so callers never confuse a dead database
	// with a missing record.
	ErrUnavailable = errors.New("storage unavailable")
)

type Storage interface {
	GetUser(id uuid.UUID) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(input models.InsertUser) (*models.User, error)

	GetAllProjects() ([]models.Project, error)
	GetProject(id uuid.UUID) (*models.Project, error)
	CreateProject(input models.InsertProject) (*models.Project, error)
	UpdateProject(id uuid.UUID, update models.ProjectUpdate) (*models.Project, error)
	DeleteProject(id uuid.UUID) (bool, error)

	GetProjectFiles(projectID uuid.UUID) ([]models.File, error)
	GetFile(id uuid.UUID) (*models.File, error)
	CreateFile(input models.InsertFile) (*models.File, error)
	DeleteFile(id uuid.UUID) (bool, error)
}

// HashPassword bcrypt-hashes a raw credential before it is persisted.
// Both backends call this from CreateUser so no store ever sees a plain
// password written to durable state.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a stored hash against a candidate password.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// applyProjectDefaults fills server-side defaults for omitted create fields.
func applyProjectDefaults(input models.InsertProject) (string, *string, string, models.ProjectStatus) {
	duration := models.DefaultDuration
	if input.Duration != nil {
		duration = *input.Duration
	}
	status := models.StatusDraft
	if input.Status != nil {
		status = *input.Status
	}
	return input.Title, input.Description, duration, status
}
