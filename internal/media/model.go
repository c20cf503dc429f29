package media

import (
	"net/http"
	"time"

	"github.com/stayflow/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "media not found")
	ErrFileTooLarge    = apperror.New(http.StatusRequestEntityTooLarge, "file exceeds the maximum allowed size")
	ErrUnsupportedType = apperror.New(http.StatusUnsupportedMediaType, "unsupported content type")
	ErrNoThumbnail     = apperror.New(http.StatusNotFound, "no thumbnail available")
)

// Media represents an uploaded file, typically a room photo.
type Media struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"-"` // Internal path
	ThumbnailPath *string   `json:"-"` // Internal path
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	CreatedAt     time.Time `json:"created_at"`
}

// URL returns the public URL for accessing a media object by its ID.
func URL(id string) string {
	return "/v1/media/" + id
}

// ThumbnailURL returns the public URL for a media object's thumbnail.
func ThumbnailURL(id string) string {
	return "/v1/media/" + id + "/thumbnail"
}
