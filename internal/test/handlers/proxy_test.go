package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-editor-backend/internal/handlers"
	"video-editor-backend/internal/models"
)

// closeNotifyRecorder adds the http.CloseNotifier method that
// httputil.ReverseProxy expects when the request context is not cancellable;
// httptest.ResponseRecorder alone panics inside gin's ResponseWriter.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
}

func (closeNotifyRecorder) CloseNotify() <-chan bool {
	return make(chan bool)
}

func newProxyRouter(t *testing.T, target string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	targetURL, err := url.Parse(target)
	require.NoError(t, err)

	proxyHandler := handlers.NewProxyHandler(targetURL, zerolog.Nop())
	router := gin.New()
	for _, prefix := range []string{"video", "audio", "subtitle", "export", "effects", "download"} {
		router.Any("/api/"+prefix+"/*path", proxyHandler.Forward)
	}
	router.Any("/health", proxyHandler.Forward)
	return router
}

func TestProxy_ForwardsPathAndQuery(t *testing.T) {
	var gotPath, gotQuery, gotMethod string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"job":"queued"}`))
	}))
	defer backend.Close()

	router := newProxyRouter(t, backend.URL)

	req := httptest.NewRequest(http.MethodPost, "/api/video/trim?start=0&end=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(closeNotifyRecorder{rec}, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/api/video/trim", gotPath)
	assert.Equal(t, "start=0&end=5", gotQuery)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.JSONEq(t, `{"job":"queued"}`, rec.Body.String())
}

func TestProxy_ForwardsProcessingHealth(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","ffmpeg_installed":true}`))
	}))
	defer backend.Close()

	router := newProxyRouter(t, backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(closeNotifyRecorder{rec}, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","ffmpeg_installed":true}`, rec.Body.String())
}

func TestProxy_BackendUnreachable(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	router := newProxyRouter(t, backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/export/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(closeNotifyRecorder{rec}, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	body := decodeBody[models.ErrorResponse](t, rec)
	assert.NotEmpty(t, body.Message)
}
