package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"video-editor-backend/internal/handlers"
	"video-editor-backend/internal/storage"
	"video-editor-backend/internal/supabase"
)

// newTestRouter wires the project and file handlers against an in-memory
// store, mirroring the route table the server registers.
func newTestRouter(store storage.Storage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zerolog.Nop()

	projectsHandler := handlers.NewProjectsHandler(store, supabase.NopPublisher{}, logger)
	filesHandler := handlers.NewFilesHandler(store, logger)

	router := gin.New()
	router.GET("/api/projects", projectsHandler.ListProjects)
	router.GET("/api/projects/:id", projectsHandler.GetProject)
	router.POST("/api/projects", projectsHandler.CreateProject)
	router.PATCH("/api/projects/:id", projectsHandler.UpdateProject)
	router.DELETE("/api/projects/:id", projectsHandler.DeleteProject)
	router.GET("/api/projects/:id/files", filesHandler.GetProjectFiles)
	router.POST("/api/files", filesHandler.CreateFile)
	router.DELETE("/api/files/:id", filesHandler.DeleteFile)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
