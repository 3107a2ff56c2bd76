package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"video-editor-backend/internal/models"
)

// MemoryStore is a process-lifetime Storage implementation backed by three
// keyed maps. State is lost on restart; that is the accepted trade-off for
// running without a configured database. A single RWMutex guards all three
// maps so cascade deletes observe a consistent view.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]models.User
	projects map[uuid.UUID]models.Project
	files    map[uuid.UUID]models.File
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[uuid.UUID]models.User),
		projects: make(map[uuid.UUID]models.Project),
		files:    make(map[uuid.UUID]models.File),
	}
}

func (s *MemoryStore) GetUser(id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateUser(input models.InsertUser) (*models.User, error) {
	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == input.Username {
			return nil, ErrConflict
		}
	}

	user := models.User{
		ID:       uuid.New(),
		Username: input.Username,
		Password: hash,
	}
	s.users[user.ID] = user
	return &user, nil
}

func (s *MemoryStore) GetAllProjects() ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		projects = append(projects, p)
	}

	// Most recently updated first, id as a stable tie-break.
	sort.Slice(projects, func(i, j int) bool {
		if !projects[i].UpdatedAt.Equal(projects[j].UpdatedAt) {
			return projects[i].UpdatedAt.After(projects[j].UpdatedAt)
		}
		return projects[i].ID.String() < projects[j].ID.String()
	})
	return projects, nil
}

func (s *MemoryStore) GetProject(id uuid.UUID) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &project, nil
}

func (s *MemoryStore) CreateProject(input models.InsertProject) (*models.Project, error) {
	title, description, duration, status := applyProjectDefaults(input)

	s.mu.Lock()
	defer s.mu.Unlock()

	project := models.Project{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Duration:    duration,
		Status:      status,
		UpdatedAt:   time.Now().UTC(),
	}
	s.projects[project.ID] = project
	return &project, nil
}

func (s *MemoryStore) UpdateProject(id uuid.UUID, update models.ProjectUpdate) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
	}

	if update.Title != nil {
		project.Title = *update.Title
	}
	if update.Description != nil {
		project.Description = update.Description
	}
	if update.Duration != nil {
		project.Duration = *update.Duration
	}
	if update.Status != nil {
		project.Status = *update.Status
	}
	// A zero-field update is a valid no-op that still touches updatedAt.
	project.UpdatedAt = time.Now().UTC()

	s.projects[id] = project
	return &project, nil
}

func (s *MemoryStore) DeleteProject(id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return false, nil
	}
	delete(s.projects, id)

	// Cascade: a project owns its files, none may survive it.
	for fileID, file := range s.files {
		if file.ProjectID == id {
			delete(s.files, fileID)
		}
	}
	return true, nil
}

func (s *MemoryStore) GetProjectFiles(projectID uuid.UUID) ([]models.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files := make([]models.File, 0)
	for _, file := range s.files {
		if file.ProjectID == projectID {
			files = append(files, file)
		}
	}
	return files, nil
}

func (s *MemoryStore) GetFile(id uuid.UUID) (*models.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, ok := s.files[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &file, nil
}

func (s *MemoryStore) CreateFile(input models.InsertFile) (*models.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The relational backend gets this from its foreign key; enforce the
	// same rule here to keep the backends interchangeable.
	if _, ok := s.projects[input.ProjectID]; !ok {
		return nil, ErrInvalidReference
	}

	file := models.File{
		ID:        uuid.New(),
		ProjectID: input.ProjectID,
		Name:      input.Name,
		Type:      input.Type,
		Size:      input.Size,
		URL:       input.URL,
	}
	s.files[file.ID] = file
	return &file, nil
}

func (s *MemoryStore) DeleteFile(id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[id]; !ok {
		return false, nil
	}
	delete(s.files, id)
	return true, nil
}
