package media_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-editor-backend/internal/media"
)

func TestHealth(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","ffmpeg_installed":true}`))
	}))
	defer backend.Close()

	client := media.NewClient(backend.URL)
	resp, err := client.Health()
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.FFmpegInstalled)
}

func TestHealth_TrimsTrailingSlash(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Write([]byte(`{"status":"ok","ffmpeg_installed":false}`))
	}))
	defer backend.Close()

	client := media.NewClient(backend.URL + "/")
	assert.Equal(t, backend.URL, client.BaseURL())

	resp, err := client.Health()
	require.NoError(t, err)
	assert.False(t, resp.FFmpegInstalled)
}

func TestHealth_Non200(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer backend.Close()

	client := media.NewClient(backend.URL)
	_, err := client.Health()
	assert.Error(t, err)
}

func TestRetryWithBackoff_SucceedsFirstTry(t *testing.T) {
	client := media.NewClient("http://localhost:8000")

	calls := 0
	err := client.RetryWithBackoff(func() error {
		calls++
		return nil
	}, 3)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryWithBackoff_ExhaustsRetries(t *testing.T) {
	client := media.NewClient("http://localhost:8000")

	boom := errors.New("boom")
	calls := 0
	err := client.RetryWithBackoff(func() error {
		calls++
		return boom
	}, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}
