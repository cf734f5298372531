// Package handlers provides the HTTP handlers for the public site API and
// the admin portal.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dspfilms/studio-go/internal/application/services"
	"github.com/dspfilms/studio-go/internal/domain/entities/sitecontent"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/performance"
	"github.com/dspfilms/studio-go/internal/presentation/http/middleware"
)

// BatchUpdateRequest is the admin portal's save payload: the staged changes
// in the order the editor made them.
type BatchUpdateRequest struct {
	Updates []sitecontent.PendingChange `json:"updates" binding:"required"`
}

// ContentHandlers contains the site-content HTTP handlers.
type ContentHandlers struct {
	contentService *services.SiteContentService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewContentHandlers creates content handlers with injected dependencies.
func NewContentHandlers(contentService *services.SiteContentService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ContentHandlers {
	return &ContentHandlers{
		contentService: contentService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// GetContent returns the effective site content: stored overrides plus
// defaults for every unshadowed address.
func (h *ContentHandlers) GetContent(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get content request", "method", c.Request.Method, "path", c.Request.URL.Path)

	marker := h.perfTracker.StartOperation("get_content_request")
	defer marker.Complete()

	items := h.contentService.GetResolvedItems()

	marker.SetSuccess(true)
	h.logger.Content().Info("Get content request completed", "count", len(items), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"content": items,
		"count":   len(items),
	})
}

// GetContentSection returns the merged content for one section keyed by bare
// field key.
func (h *ContentHandlers) GetContentSection(c *gin.Context) {
	section := c.Param("section")
	if section == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "section is required"})
		return
	}

	fields := h.contentService.GetEffectiveSection(section)
	c.JSON(http.StatusOK, gin.H{
		"section": section,
		"fields":  fields,
	})
}

// BatchUpdate applies a batch of content changes for the authenticated
// editor. Changes are validated independently; the response reports what
// applied and what failed.
func (h *ContentHandlers) BatchUpdate(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received batch update request", "method", c.Request.Method, "path", c.Request.URL.Path)

	editor, ok := middleware.GetCurrentEditor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req BatchUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	marker := h.perfTracker.StartOperation("batch_update_request")
	defer marker.Complete()

	result, err := h.contentService.ApplyBatch(editor.ID, req.Updates)
	if err != nil {
		if _, unauthorized := err.(*sitecontent.AuthorizationError); unauthorized {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	marker.SetSuccess(len(result.Failures) == 0)
	h.logger.Content().Info("Batch update request completed",
		"editorId", editor.ID,
		"applied", result.AppliedCount,
		"failed", len(result.Failures),
		"duration", time.Since(start))

	status := http.StatusOK
	if len(result.Failures) > 0 && result.AppliedCount == 0 {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, result)
}

// GetOverrides returns the raw stored overrides for the admin portal, without
// default synthesis.
func (h *ContentHandlers) GetOverrides(c *gin.Context) {
	overrides, err := h.contentService.GetOverrides()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"overrides": overrides,
		"count":     len(overrides),
	})
}
