package adminstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/admin"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
)

// SettingsRepository persists the singleton settings row (id fixed at 1).
type SettingsRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewSettingsRepository(db *sql.DB, logger *logging.ChanneledLogger) *SettingsRepository {
	return &SettingsRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the stored settings, or zero-value settings if none were ever
// saved.
func (r *SettingsRepository) Get() (*admin.Settings, error) {
	row := r.db.QueryRow(
		`SELECT facebook_pixel_id, google_analytics_id, google_tag_manager_id,
		        enable_facebook_pixel, enable_google_analytics, enable_google_tag_manager, changed
		 FROM settings WHERE id = 1`,
	)

	var settings admin.Settings
	err := row.Scan(&settings.FacebookPixelID, &settings.GoogleAnalyticsID, &settings.GoogleTagManagerID,
		&settings.EnableFacebookPixel, &settings.EnableGoogleAnalytics, &settings.EnableGoogleTagMgr,
		&settings.Changed)
	if err == sql.ErrNoRows {
		return &admin.Settings{}, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan settings", "error", err.Error())
		return nil, fmt.Errorf("failed to scan settings: %w", err)
	}
	return &settings, nil
}

func (r *SettingsRepository) Upsert(settings *admin.Settings) error {
	query := `INSERT INTO settings (id, facebook_pixel_id, google_analytics_id, google_tag_manager_id,
	              enable_facebook_pixel, enable_google_analytics, enable_google_tag_manager, changed)
	          VALUES (1, ?, ?, ?, ?, ?, ?, ?)
	          ON CONFLICT(id) DO UPDATE SET
	              facebook_pixel_id = excluded.facebook_pixel_id,
	              google_analytics_id = excluded.google_analytics_id,
	              google_tag_manager_id = excluded.google_tag_manager_id,
	              enable_facebook_pixel = excluded.enable_facebook_pixel,
	              enable_google_analytics = excluded.enable_google_analytics,
	              enable_google_tag_manager = excluded.enable_google_tag_manager,
	              changed = excluded.changed`

	now := time.Now().UTC()
	settings.Changed = &now
	_, err := r.db.Exec(query, settings.FacebookPixelID, settings.GoogleAnalyticsID, settings.GoogleTagManagerID,
		settings.EnableFacebookPixel, settings.EnableGoogleAnalytics, settings.EnableGoogleTagMgr, settings.Changed)
	if err != nil {
		r.logger.Database().Error("Settings upsert failed", "error", err.Error())
		return fmt.Errorf("failed to upsert settings: %w", err)
	}
	return nil
}
