package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-editor-backend/internal/handlers"
	"video-editor-backend/internal/media"
)

func newHealthRouter(target string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	healthHandler := handlers.NewHealthHandler(media.NewClient(target))
	router := gin.New()
	router.GET("/api/health", healthHandler.Health)
	return router
}

func TestHealth_MediaServiceUp(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","ffmpeg_installed":true}`))
	}))
	defer backend.Close()

	router := newHealthRouter(backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ok", body["mediaService"])
}

func TestHealth_MediaServiceDown(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	router := newHealthRouter(backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "unreachable", body["mediaService"])
}
