package content

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/catalog"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
)

type InquiryRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewInquiryRepository(db *sql.DB, logger *logging.ChanneledLogger) *InquiryRepository {
	return &InquiryRepository{
		db:     db,
		logger: logger,
	}
}

const inquiryColumns = `id, name, email, phone, event_type, event_date, message, status, created, changed`

func (r *InquiryRepository) FindAll() ([]*catalog.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries ORDER BY created DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Database().Error("Failed to query inquiries", "error", err.Error())
		return nil, fmt.Errorf("failed to query inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []*catalog.Inquiry
	for rows.Next() {
		inquiry, err := scanInquiryRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, inquiry)
	}
	return inquiries, rows.Err()
}

func (r *InquiryRepository) FindByID(id string) (*catalog.Inquiry, error) {
	row := r.db.QueryRow(`SELECT `+inquiryColumns+` FROM inquiries WHERE id = ?`, id)

	inquiry, err := scanInquiryRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan inquiry", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan inquiry: %w", err)
	}
	return inquiry, nil
}

func (r *InquiryRepository) Store(inquiry *catalog.Inquiry) error {
	query := `INSERT INTO inquiries (` + inquiryColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing inquiry insert", "id", inquiry.ID)

	_, err := r.db.Exec(query, inquiry.ID, inquiry.Name, inquiry.Email, inquiry.Phone,
		inquiry.EventType, inquiry.EventDate, inquiry.Message, inquiry.Status,
		inquiry.Created, inquiry.Changed)
	if err != nil {
		r.logger.Database().Error("Inquiry insert failed", "error", err.Error(), "id", inquiry.ID)
		return fmt.Errorf("failed to insert inquiry: %w", err)
	}

	r.logger.Database().Info("Inquiry insert completed", "id", inquiry.ID, "duration", time.Since(start))
	return nil
}

func (r *InquiryRepository) UpdateStatus(id string, status catalog.InquiryStatus) error {
	_, err := r.db.Exec(`UPDATE inquiries SET status = ?, changed = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	if err != nil {
		r.logger.Database().Error("Inquiry status update failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to update inquiry status: %w", err)
	}
	return nil
}

func (r *InquiryRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM inquiries WHERE id = ?`, id)
	if err != nil {
		r.logger.Database().Error("Inquiry delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}
	return nil
}

func (r *InquiryRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM inquiries`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}
	return count, nil
}

func (r *InquiryRepository) CountByStatus(status catalog.InquiryStatus) (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM inquiries WHERE status = ?`, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count inquiries by status: %w", err)
	}
	return count, nil
}

func scanInquiryRow(scan func(dest ...any) error) (*catalog.Inquiry, error) {
	var inquiry catalog.Inquiry
	err := scan(&inquiry.ID, &inquiry.Name, &inquiry.Email, &inquiry.Phone, &inquiry.EventType,
		&inquiry.EventDate, &inquiry.Message, &inquiry.Status, &inquiry.Created, &inquiry.Changed)
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}
