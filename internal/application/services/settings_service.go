package services

import (
	"github.com/dspfilms/studio-go/internal/domain/entities/admin"
	"github.com/dspfilms/studio-go/internal/domain/repositories"
)

// SettingsService manages the singleton site settings.
type SettingsService struct {
	repo repositories.SettingsRepository
}

func NewSettingsService(repo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the stored settings.
func (s *SettingsService) Get() (*admin.Settings, error) {
	return s.repo.Get()
}

// Save replaces the settings document.
func (s *SettingsService) Save(settings *admin.Settings) error {
	return s.repo.Upsert(settings)
}

// PixelConfig is the public subset of settings exposed to the site: which
// marketing pixels to load. IDs for disabled pixels are withheld.
type PixelConfig struct {
	FacebookPixelID    string `json:"facebookPixelId,omitempty"`
	GoogleAnalyticsID  string `json:"googleAnalyticsId,omitempty"`
	GoogleTagManagerID string `json:"googleTagManagerId,omitempty"`
}

// GetPixelConfig returns the public pixel configuration.
func (s *SettingsService) GetPixelConfig() (*PixelConfig, error) {
	settings, err := s.repo.Get()
	if err != nil {
		return nil, err
	}

	pixels := &PixelConfig{}
	if settings.EnableFacebookPixel {
		pixels.FacebookPixelID = settings.FacebookPixelID
	}
	if settings.EnableGoogleAnalytics {
		pixels.GoogleAnalyticsID = settings.GoogleAnalyticsID
	}
	if settings.EnableGoogleTagMgr {
		pixels.GoogleTagManagerID = settings.GoogleTagManagerID
	}
	return pixels, nil
}
