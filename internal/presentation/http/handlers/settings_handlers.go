package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dspfilms/studio-go/internal/application/services"
	"github.com/dspfilms/studio-go/internal/domain/entities/admin"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
	"github.com/dspfilms/studio-go/internal/presentation/http/middleware"
)

// SettingsRequest is the admin payload for the singleton settings document.
type SettingsRequest struct {
	FacebookPixelID       string `json:"facebookPixelId"`
	GoogleAnalyticsID     string `json:"googleAnalyticsId"`
	GoogleTagManagerID    string `json:"googleTagManagerId"`
	EnableFacebookPixel   bool   `json:"enableFacebookPixel"`
	EnableGoogleAnalytics bool   `json:"enableGoogleAnalytics"`
	EnableGoogleTagMgr    bool   `json:"enableGoogleTagManager"`
}

// SettingsHandlers contains settings HTTP handlers.
type SettingsHandlers struct {
	settingsService *services.SettingsService
	activity        *services.ActivityService
	logger          *logging.ChanneledLogger
}

// NewSettingsHandlers creates settings handlers with injected dependencies.
func NewSettingsHandlers(settingsService *services.SettingsService, activity *services.ActivityService, logger *logging.ChanneledLogger) *SettingsHandlers {
	return &SettingsHandlers{
		settingsService: settingsService,
		activity:        activity,
		logger:          logger,
	}
}

// GetPixels returns the public marketing pixel configuration.
func (h *SettingsHandlers) GetPixels(c *gin.Context) {
	pixels, err := h.settingsService.GetPixelConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pixels)
}

// GetSettings returns the full settings document (admin only).
func (h *SettingsHandlers) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings replaces the settings document (admin only).
func (h *SettingsHandlers) UpdateSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	settings := &admin.Settings{
		FacebookPixelID:       req.FacebookPixelID,
		GoogleAnalyticsID:     req.GoogleAnalyticsID,
		GoogleTagManagerID:    req.GoogleTagManagerID,
		EnableFacebookPixel:   req.EnableFacebookPixel,
		EnableGoogleAnalytics: req.EnableGoogleAnalytics,
		EnableGoogleTagMgr:    req.EnableGoogleTagMgr,
	}
	if err := h.settingsService.Save(settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "update", "settings", "")
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
