package content

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/catalog"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
	"github.com/dspfilms/studio-go/pkg/config"
)

type GalleryRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewGalleryRepository(db *sql.DB, logger *logging.ChanneledLogger) *GalleryRepository {
	return &GalleryRepository{
		db:     db,
		logger: logger,
	}
}

const galleryColumns = `id, title, category, image, description, sort_order, is_active, created, changed`

func (r *GalleryRepository) FindAll() ([]*catalog.GalleryItem, error) {
	return r.query(`SELECT `+galleryColumns+` FROM galleries ORDER BY sort_order, created`, nil)
}

func (r *GalleryRepository) FindActive() ([]*catalog.GalleryItem, error) {
	return r.query(`SELECT `+galleryColumns+` FROM galleries WHERE is_active = 1 ORDER BY sort_order, created`, nil)
}

func (r *GalleryRepository) FindByCategory(category string) ([]*catalog.GalleryItem, error) {
	return r.query(`SELECT `+galleryColumns+` FROM galleries WHERE is_active = 1 AND category = ? ORDER BY sort_order, created`, []any{category})
}

func (r *GalleryRepository) FindByID(id string) (*catalog.GalleryItem, error) {
	row := r.db.QueryRow(`SELECT `+galleryColumns+` FROM galleries WHERE id = ?`, id)

	item, err := scanGalleryRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan gallery item", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan gallery item: %w", err)
	}
	return item, nil
}

func (r *GalleryRepository) Store(item *catalog.GalleryItem) error {
	query := `INSERT INTO galleries (` + galleryColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing gallery insert", "id", item.ID)

	_, err := r.db.Exec(query, item.ID, item.Title, item.Category, item.Image, item.Description,
		item.Order, item.IsActive, item.Created, item.Changed)
	if err != nil {
		r.logger.Database().Error("Gallery insert failed", "error", err.Error(), "id", item.ID)
		return fmt.Errorf("failed to insert gallery item: %w", err)
	}

	r.logger.Database().Info("Gallery insert completed", "id", item.ID, "duration", time.Since(start))
	return nil
}

func (r *GalleryRepository) Update(item *catalog.GalleryItem) error {
	query := `UPDATE galleries SET title = ?, category = ?, image = ?, description = ?,
	          sort_order = ?, is_active = ?, changed = ? WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing gallery update", "id", item.ID)

	now := time.Now().UTC()
	item.Changed = &now
	_, err := r.db.Exec(query, item.Title, item.Category, item.Image, item.Description,
		item.Order, item.IsActive, item.Changed, item.ID)
	if err != nil {
		r.logger.Database().Error("Gallery update failed", "error", err.Error(), "id", item.ID)
		return fmt.Errorf("failed to update gallery item: %w", err)
	}

	r.logger.Database().Info("Gallery update completed", "id", item.ID, "duration", time.Since(start))
	return nil
}

func (r *GalleryRepository) Deactivate(id string) error {
	_, err := r.db.Exec(`UPDATE galleries SET is_active = 0, changed = ? WHERE id = ?`, time.Now().UTC(), id)
	if err != nil {
		r.logger.Database().Error("Gallery deactivate failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to deactivate gallery item: %w", err)
	}
	return nil
}

func (r *GalleryRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM galleries WHERE is_active = 1`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count gallery items: %w", err)
	}
	return count, nil
}

func (r *GalleryRepository) query(query string, args []any) ([]*catalog.GalleryItem, error) {
	start := time.Now()

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Database().Error("Failed to query gallery items", "error", err.Error())
		return nil, fmt.Errorf("failed to query gallery items: %w", err)
	}
	defer rows.Close()

	var items []*catalog.GalleryItem
	for rows.Next() {
		item, err := scanGalleryRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gallery item: %w", err)
		}
		items = append(items, item)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return items, rows.Err()
}

func scanGalleryRow(scan func(dest ...any) error) (*catalog.GalleryItem, error) {
	var item catalog.GalleryItem
	err := scan(&item.ID, &item.Title, &item.Category, &item.Image, &item.Description,
		&item.Order, &item.IsActive, &item.Created, &item.Changed)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
