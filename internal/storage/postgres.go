package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"video-editor-backend/internal/models"
)

// PostgresStore is the durable Storage implementation. Every operation is a
// single parameterized statement except DeleteProject, which wraps the file
// cascade and the project delete in one transaction so concurrent readers
// never observe orphaned files.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// translateError maps database failures onto the storage sentinels so the
// route layer never inspects driver errors directly.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return ErrConflict
		case "23503": // foreign_key_violation
			return ErrInvalidReference
		}
		if pqErr.Code.Class() == "08" { // connection exception
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return err
	}

	// Failures without a SQLSTATE are driver or network level: the
	// database could not be reached at all.
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func (s *PostgresStore) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(`
		SELECT id, username, password
		FROM users
		WHERE id = $1
	`, id).Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (s *PostgresStore) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(`
		SELECT id, username, password
		FROM users
		WHERE username = $1
	`, username).Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (s *PostgresStore) CreateUser(input models.InsertUser) (*models.User, error) {
	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = s.db.QueryRow(`
		INSERT INTO users (id, username, password)
		VALUES ($1, $2, $3)
		RETURNING id, username, password
	`, uuid.New(), input.Username, hash).Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	var (
		project     models.Project
		description sql.NullString
		status      string
	)
	err := row.Scan(&project.ID, &project.Title, &description, &project.Duration, &status, &project.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if description.Valid {
		project.Description = &description.String
	}
	project.Status = models.ProjectStatus(status)
	return &project, nil
}

func (s *PostgresStore) GetAllProjects() ([]models.Project, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, duration, status, updated_at
		FROM projects
		ORDER BY updated_at DESC, id ASC
	`)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	return projects, nil
}

func (s *PostgresStore) GetProject(id uuid.UUID) (*models.Project, error) {
	project, err := scanProject(s.db.QueryRow(`
		SELECT id, title, description, duration, status, updated_at
		FROM projects
		WHERE id = $1
	`, id))
	if err != nil {
		return nil, translateError(err)
	}
	return project, nil
}

func (s *PostgresStore) CreateProject(input models.InsertProject) (*models.Project, error) {
	title, description, duration, status := applyProjectDefaults(input)

	var desc sql.NullString
	if description != nil {
		desc = sql.NullString{String: *description, Valid: true}
	}

	project, err := scanProject(s.db.QueryRow(`
		INSERT INTO projects (id, title, description, duration, status, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, title, description, duration, status, updated_at
	`, uuid.New(), title, desc, duration, string(status)))
	if err != nil {
		return nil, translateError(err)
	}
	return project, nil
}

func (s *PostgresStore) UpdateProject(id uuid.UUID, update models.ProjectUpdate) (*models.Project, error) {
	toNull := func(v *string) sql.NullString {
		if v == nil {
			return sql.NullString{}
		}
		return sql.NullString{String: *v, Valid: true}
	}
	var status sql.NullString
	if update.Status != nil {
		status = sql.NullString{String: string(*update.Status), Valid: true}
	}

	project, err := scanProject(s.db.QueryRow(`
		UPDATE projects
		SET title       = COALESCE($2, title),
		    description = COALESCE($3, description),
		    duration    = COALESCE($4, duration),
		    status      = COALESCE($5, status),
		    updated_at  = NOW()
		WHERE id = $1
		RETURNING id, title, description, duration, status, updated_at
	`, id, toNull(update.Title), toNull(update.Description), toNull(update.Duration), status))
	if err != nil {
		return nil, translateError(err)
	}
	return project, nil
}

func (s *PostgresStore) DeleteProject(id uuid.UUID) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, translateError(err)
	}

	if _, err := tx.Exec(`DELETE FROM files WHERE project_id = $1`, id); err != nil {
		tx.Rollback()
		return false, translateError(err)
	}

	result, err := tx.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		tx.Rollback()
		return false, translateError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return false, translateError(err)
	}

	if err := tx.Commit(); err != nil {
		return false, translateError(err)
	}
	return affected > 0, nil
}

func (s *PostgresStore) GetProjectFiles(projectID uuid.UUID) ([]models.File, error) {
	rows, err := s.db.Query(`
		SELECT id, project_id, name, type, size, url
		FROM files
		WHERE project_id = $1
	`, projectID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	files := make([]models.File, 0)
	for rows.Next() {
		var file models.File
		if err := rows.Scan(&file.ID, &file.ProjectID, &file.Name, &file.Type, &file.Size, &file.URL); err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	return files, nil
}

func (s *PostgresStore) GetFile(id uuid.UUID) (*models.File, error) {
	var file models.File
	err := s.db.QueryRow(`
		SELECT id, project_id, name, type, size, url
		FROM files
		WHERE id = $1
	`, id).Scan(&file.ID, &file.ProjectID, &file.Name, &file.Type, &file.Size, &file.URL)
	if err != nil {
		return nil, translateError(err)
	}
	return &file, nil
}

func (s *PostgresStore) CreateFile(input models.InsertFile) (*models.File, error) {
	var file models.File
	err := s.db.QueryRow(`
		INSERT INTO files (id, project_id, name, type, size, url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, project_id, name, type, size, url
	`, uuid.New(), input.ProjectID, input.Name, string(input.Type), input.Size, input.URL).Scan(
		&file.ID, &file.ProjectID, &file.Name, &file.Type, &file.Size, &file.URL,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &file, nil
}

func (s *PostgresStore) DeleteFile(id uuid.UUID) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM files WHERE id = $1`, id)
	if err != nil {
		return false, translateError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, translateError(err)
	}
	return affected > 0, nil
}
