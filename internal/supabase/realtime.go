package supabase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/supabase-go"

	"video-editor-backend/internal/models"
)

// EventPublisher notifies the dashboard of project lifecycle changes.
// Handlers treat publishing as best effort: a failed publish never fails
// the request that triggered it.
type EventPublisher interface {
	PublishProjectEvent(projectID uuid.UUID, event string, payload map[string]interface{}) error
}

// NopPublisher is used when Supabase is not configured.
type NopPublisher struct{}

func (NopPublisher) PublishProjectEvent(uuid.UUID, string, map[string]interface{}) error {
	return nil
}

type RealtimeClient struct {
	client *supabase.Client
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		client: client,
	}
}

func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	// The Supabase Go client has no direct Realtime publish; dashboard
	// clients subscribe to postgres_changes on the projects table, which
	// fire on the database writes themselves. This hook exists for
	// explicit broadcast events once the REST publish API is wired up.
	return nil
}

func (r *RealtimeClient) PublishProjectEvent(projectID uuid.UUID, event string, payload map[string]interface{}) error {
	channel := fmt.Sprintf("project:%s", projectID.String())
	return r.PublishEvent(channel, event, payload)
}

// Event payloads

func StatusChangedPayload(projectID uuid.UUID, status models.ProjectStatus) map[string]interface{} {
	return map[string]interface{}{
		"project_id": projectID.String(),
		"status":     string(status),
	}
}

func UploadCompletedPayload(projectID uuid.UUID, fileID uuid.UUID, name string) map[string]interface{} {
	return map[string]interface{}{
		"project_id": projectID.String(),
		"file_id":    fileID.String(),
		"name":       name,
	}
}

func ProjectDeletedPayload(projectID uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"project_id": projectID.String(),
		"deleted":    true,
	}
}
