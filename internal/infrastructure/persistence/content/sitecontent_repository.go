// Package content provides the SQL-backed repositories for the public site's
// editable content and collections.
package content

import (
	"database/sql"
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/sitecontent"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
	"github.com/dspfilms/studio-go/pkg/config"
)

// SiteContentRepository persists content overrides keyed by (section, key).
// The table's composite primary key backs the upsert; a write for an existing
// address replaces the stored value.
type SiteContentRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewSiteContentRepository(db *sql.DB, logger *logging.ChanneledLogger) *SiteContentRepository {
	return &SiteContentRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll returns every stored override in insertion order.
func (r *SiteContentRepository) GetAll() ([]sitecontent.ContentItem, error) {
	query := `SELECT section, key, value, updated_at, updated_by FROM site_content ORDER BY rowid`

	start := time.Now()
	r.logger.Database().Debug("Loading all content overrides")

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Database().Error("Failed to query content overrides", "error", err.Error())
		return nil, &sitecontent.StorageUnavailableError{Op: "get all content", Err: err}
	}
	defer rows.Close()

	items, err := scanContentItems(rows)
	if err != nil {
		r.logger.Database().Error("Failed to scan content overrides", "error", err.Error())
		return nil, &sitecontent.StorageUnavailableError{Op: "get all content", Err: err}
	}

	r.logger.Database().Info("Loaded content overrides", "count", len(items), "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return items, nil
}

// GetBySection returns the stored overrides for one section in insertion order.
func (r *SiteContentRepository) GetBySection(section string) ([]sitecontent.ContentItem, error) {
	if section == "" {
		return nil, &sitecontent.ValidationError{Reason: "section must not be empty"}
	}

	query := `SELECT section, key, value, updated_at, updated_by FROM site_content WHERE section = ? ORDER BY rowid`

	start := time.Now()
	r.logger.Database().Debug("Loading content overrides for section", "section", section)

	rows, err := r.db.Query(query, section)
	if err != nil {
		r.logger.Database().Error("Failed to query section overrides", "error", err.Error(), "section", section)
		return nil, &sitecontent.StorageUnavailableError{Op: "get section content", Err: err}
	}
	defer rows.Close()

	items, err := scanContentItems(rows)
	if err != nil {
		r.logger.Database().Error("Failed to scan section overrides", "error", err.Error(), "section", section)
		return nil, &sitecontent.StorageUnavailableError{Op: "get section content", Err: err}
	}

	r.logger.Database().Info("Loaded section overrides", "section", section, "count", len(items), "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return items, nil
}

// Upsert stores an override for the address, replacing any existing value,
// and returns the persisted item.
func (r *SiteContentRepository) Upsert(section, key, value, editorID string) (*sitecontent.ContentItem, error) {
	addr := sitecontent.Address{Section: section, Key: key}
	if !addr.Valid() {
		return nil, &sitecontent.ValidationError{Address: addr, Reason: "section and key must not be empty"}
	}

	query := `INSERT INTO site_content (section, key, value, updated_at, updated_by)
	          VALUES (?, ?, ?, ?, ?)
	          ON CONFLICT(section, key) DO UPDATE SET
	              value = excluded.value,
	              updated_at = excluded.updated_at,
	              updated_by = excluded.updated_by`

	start := time.Now()
	now := time.Now().UTC()
	r.logger.Database().Debug("Executing content upsert", "address", addr.String())

	_, err := r.db.Exec(query, section, key, value, now, editorID)
	if err != nil {
		r.logger.Database().Error("Content upsert failed", "error", err.Error(), "address", addr.String())
		return nil, &sitecontent.StorageUnavailableError{Op: "upsert content", Err: err}
	}

	r.logger.Database().Info("Content upsert completed", "address", addr.String(), "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}

	return &sitecontent.ContentItem{
		Section:   section,
		Key:       key,
		Value:     value,
		UpdatedAt: now,
		UpdatedBy: editorID,
	}, nil
}

func scanContentItems(rows *sql.Rows) ([]sitecontent.ContentItem, error) {
	items := []sitecontent.ContentItem{}
	for rows.Next() {
		var item sitecontent.ContentItem
		if err := rows.Scan(&item.Section, &item.Key, &item.Value, &item.UpdatedAt, &item.UpdatedBy); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
