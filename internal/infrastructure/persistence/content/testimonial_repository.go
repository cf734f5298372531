package content

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/catalog"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
)

type TestimonialRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewTestimonialRepository(db *sql.DB, logger *logging.ChanneledLogger) *TestimonialRepository {
	return &TestimonialRepository{
		db:     db,
		logger: logger,
	}
}

const testimonialColumns = `id, name, event, rating, text, image, location, sort_order, is_active, created, changed`

func (r *TestimonialRepository) FindActive() ([]*catalog.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE is_active = 1 ORDER BY sort_order, created`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Database().Error("Failed to query testimonials", "error", err.Error())
		return nil, fmt.Errorf("failed to query testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []*catalog.Testimonial
	for rows.Next() {
		t, err := scanTestimonialRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

func (r *TestimonialRepository) FindByID(id string) (*catalog.Testimonial, error) {
	row := r.db.QueryRow(`SELECT `+testimonialColumns+` FROM testimonials WHERE id = ?`, id)

	t, err := scanTestimonialRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan testimonial", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan testimonial: %w", err)
	}
	return t, nil
}

func (r *TestimonialRepository) Store(t *catalog.Testimonial) error {
	query := `INSERT INTO testimonials (` + testimonialColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing testimonial insert", "id", t.ID)

	_, err := r.db.Exec(query, t.ID, t.Name, t.Event, t.Rating, t.Text, t.Image, t.Location,
		t.Order, t.IsActive, t.Created, t.Changed)
	if err != nil {
		r.logger.Database().Error("Testimonial insert failed", "error", err.Error(), "id", t.ID)
		return fmt.Errorf("failed to insert testimonial: %w", err)
	}

	r.logger.Database().Info("Testimonial insert completed", "id", t.ID, "duration", time.Since(start))
	return nil
}

func (r *TestimonialRepository) Update(t *catalog.Testimonial) error {
	query := `UPDATE testimonials SET name = ?, event = ?, rating = ?, text = ?, image = ?,
	          location = ?, sort_order = ?, is_active = ?, changed = ? WHERE id = ?`

	now := time.Now().UTC()
	t.Changed = &now
	_, err := r.db.Exec(query, t.Name, t.Event, t.Rating, t.Text, t.Image, t.Location,
		t.Order, t.IsActive, t.Changed, t.ID)
	if err != nil {
		r.logger.Database().Error("Testimonial update failed", "error", err.Error(), "id", t.ID)
		return fmt.Errorf("failed to update testimonial: %w", err)
	}
	return nil
}

func (r *TestimonialRepository) Deactivate(id string) error {
	_, err := r.db.Exec(`UPDATE testimonials SET is_active = 0, changed = ? WHERE id = ?`, time.Now().UTC(), id)
	if err != nil {
		r.logger.Database().Error("Testimonial deactivate failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to deactivate testimonial: %w", err)
	}
	return nil
}

func (r *TestimonialRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM testimonials WHERE is_active = 1`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count testimonials: %w", err)
	}
	return count, nil
}

func scanTestimonialRow(scan func(dest ...any) error) (*catalog.Testimonial, error) {
	var t catalog.Testimonial
	err := scan(&t.ID, &t.Name, &t.Event, &t.Rating, &t.Text, &t.Image, &t.Location,
		&t.Order, &t.IsActive, &t.Created, &t.Changed)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
