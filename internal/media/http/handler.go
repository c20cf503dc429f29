package http

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stayflow/hotel-booking-backend/internal/auth"
	"github.com/stayflow/hotel-booking-backend/internal/media"
	"github.com/stayflow/hotel-booking-backend/internal/pkg/response"
)

type Handler struct {
	mediaService media.Service
}

func NewHandler(mediaService media.Service) *Handler {
	return &Handler{
		mediaService: mediaService,
	}
}

// UploadConfig defines per-endpoint constraints for media uploads.
type UploadConfig struct {
	FormFieldName string                                          // The name of the form field containing the file (default: "file")
	MaxSizeBytes  int64                                           // The maximum file size in bytes (0 = no limit)
	AllowedTypes  []string                                        // The list of allowed MIME types (empty = allow all)
	AfterUpload   func(ctx context.Context, mediaID string) error // Called after successful upload (optional)
}

// HandleUpload is a reusable handler for media uploads. If the AfterUpload
// hook fails, the stored media is rolled back.
func (h *Handler) HandleUpload(c *gin.Context, config UploadConfig) {
	userID := auth.GetUserID(c)

	fieldName := config.FormFieldName
	if fieldName == "" {
		fieldName = "file"
	}

	fileHeader, err := c.FormFile(fieldName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fieldName + " is required"})
		return
	}

	m, err := h.mediaService.Upload(c.Request.Context(), media.UploadInput{
		FileHeader:   fileHeader,
		UserID:       userID,
		MaxSizeBytes: config.MaxSizeBytes,
		AllowedTypes: config.AllowedTypes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if config.AfterUpload != nil {
		if err := config.AfterUpload(c.Request.Context(), m.ID); err != nil {
			// Rollback: delete media from storage and DB
			_ = h.mediaService.Delete(c.Request.Context(), m.ID)
			response.Error(c, err)
			return
		}
	}

	var thumbURL *string
	if m.ThumbnailPath != nil {
		t := media.ThumbnailURL(m.ID)
		thumbURL = &t
	}

	c.JSON(http.StatusOK, UploadResponse{
		Message:      "file uploaded successfully",
		MediaID:      m.ID,
		URL:          media.URL(m.ID),
		ThumbnailURL: thumbURL,
	})
}

// ServeFile serves the media content by ID.
func (h *Handler) ServeFile(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "media ID is required"})
		return
	}

	stream, m, err := h.mediaService.Download(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", m.ContentType)
	c.Header("Content-Disposition", "inline; filename=\""+m.Filename+"\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		// Response already started, nothing useful to send
		return
	}
}

// ServeThumbnail serves the thumbnail image by media ID.
func (h *Handler) ServeThumbnail(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "media ID is required"})
		return
	}

	stream, m, err := h.mediaService.DownloadThumbnail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	// Thumbnails are always JPEG
	c.Header("Content-Type", "image/jpeg")
	c.Header("Content-Disposition", "inline; filename=\""+m.Filename+"_thumb.jpg\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		return
	}
}
