package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dspfilms/studio-go/internal/application/services"
	"github.com/dspfilms/studio-go/internal/infrastructure/media"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/performance"
	"github.com/dspfilms/studio-go/internal/presentation/http/middleware"
	"github.com/dspfilms/studio-go/pkg/config"
)

// MediaHandlers contains upload HTTP handlers.
type MediaHandlers struct {
	processor   *media.ImageProcessor
	activity    *services.ActivityService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewMediaHandlers creates media handlers with injected dependencies.
func NewMediaHandlers(processor *media.ImageProcessor, activity *services.ActivityService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *MediaHandlers {
	return &MediaHandlers{
		processor:   processor,
		activity:    activity,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// Upload accepts a multipart image upload, processes it, and returns the
// public URL. The admin portal stages the URL as an image-kind content
// change; the file itself is live immediately.
func (h *MediaHandlers) Upload(c *gin.Context) {
	start := time.Now()
	h.logger.Media().Debug("Received media upload", "method", c.Request.Method, "path", c.Request.URL.Path)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}
	if fileHeader.Size > config.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload exceeds size limit"})
		return
	}

	marker := h.perfTracker.StartOperation("media_upload_request")
	defer marker.Complete()

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, config.MaxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload"})
		return
	}
	if int64(len(data)) > config.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload exceeds size limit"})
		return
	}

	url, err := h.processor.SaveUpload(data, fileHeader.Filename)
	if err != nil {
		h.logger.Media().Error("Upload processing failed", "filename", fileHeader.Filename, "error", err.Error())
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "upload", "media", url)
	}

	marker.SetSuccess(true)
	h.logger.Media().Info("Upload processed", "url", url, "bytes", len(data), "duration", time.Since(start))
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
