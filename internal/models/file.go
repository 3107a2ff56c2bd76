package models

import (
	"strings"

	"github.com/google/uuid"
)

// FileType classifies an uploaded asset. Unknown MIME types fall back to
// FileTypeOther rather than being rejected.
type FileType string

const (
	FileTypeVideo    FileType = "video"
	FileTypeAudio    FileType = "audio"
	FileTypeSubtitle FileType = "subtitle"
	FileTypeOther    FileType = "file"
)

func (t FileType) Valid() bool {
	switch t {
	case FileTypeVideo, FileTypeAudio, FileTypeSubtitle, FileTypeOther:
		return true
	}
	return false
}

// FileTypeFromMime derives a FileType from a MIME type prefix. Subtitle
// formats hide behind text/* and application/* types, so known subtitle
// extensions are checked against the filename as well.
func FileTypeFromMime(mimeType, filename string) FileType {
	switch {
	case strings.HasPrefix(mimeType, "video/"):
		return FileTypeVideo
	case strings.HasPrefix(mimeType, "audio/"):
		return FileTypeAudio
	case mimeType == "text/vtt" || mimeType == "application/x-subrip":
		return FileTypeSubtitle
	}

	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".srt") || strings.HasSuffix(lower, ".vtt") || strings.HasSuffix(lower, ".ass") {
		return FileTypeSubtitle
	}
	return FileTypeOther
}

type File struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"projectId"`
	Name      string    `json:"name"`
	Type      FileType  `json:"type"`
	Size      int64     `json:"size"`
	URL       string    `json:"url"`
}

type InsertFile struct {
	ProjectID uuid.UUID
	Name      string
	Type      FileType
	Size      int64
	URL       string
}
