package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"video-editor-backend/internal/models"
)

func TestFileTypeFromMime(t *testing.T) {
	tests := []struct {
		name     string
		mime     string
		filename string
		want     models.FileType
	}{
		{"video mime", "video/mp4", "clip.mp4", models.FileTypeVideo},
		{"audio mime", "audio/mpeg", "voice.mp3", models.FileTypeAudio},
		{"vtt mime", "text/vtt", "captions.vtt", models.FileTypeSubtitle},
		{"srt mime", "application/x-subrip", "dialogue.srt", models.FileTypeSubtitle},
		{"srt extension with generic mime", "application/octet-stream", "dialogue.srt", models.FileTypeSubtitle},
		{"vtt extension with generic mime", "application/octet-stream", "captions.vtt", models.FileTypeSubtitle},
		{"ass extension", "application/octet-stream", "styled.ass", models.FileTypeSubtitle},
		{"unknown", "application/pdf", "script.pdf", models.FileTypeOther},
		{"empty", "", "mystery", models.FileTypeOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.FileTypeFromMime(tt.mime, tt.filename))
		})
	}
}

func TestFileTypeValid(t *testing.T) {
	assert.True(t, models.FileTypeVideo.Valid())
	assert.True(t, models.FileTypeOther.Valid())
	assert.False(t, models.FileType("spreadsheet").Valid())
}

func TestProjectStatusValid(t *testing.T) {
	assert.True(t, models.StatusDraft.Valid())
	assert.True(t, models.StatusExporting.Valid())
	assert.True(t, models.StatusCompleted.Valid())
	assert.False(t, models.ProjectStatus("archived").Valid())
}
