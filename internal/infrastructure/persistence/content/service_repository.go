package content

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/catalog"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
)

type ServiceOfferingRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewServiceOfferingRepository(db *sql.DB, logger *logging.ChanneledLogger) *ServiceOfferingRepository {
	return &ServiceOfferingRepository{
		db:     db,
		logger: logger,
	}
}

const serviceColumns = `id, title, description, features, image, icon, color, sort_order, is_active, created, changed`

func (r *ServiceOfferingRepository) FindActive() ([]*catalog.ServiceOffering, error) {
	query := `SELECT ` + serviceColumns + ` FROM service_offerings WHERE is_active = 1 ORDER BY sort_order, created`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Database().Error("Failed to query service offerings", "error", err.Error())
		return nil, fmt.Errorf("failed to query service offerings: %w", err)
	}
	defer rows.Close()

	var offerings []*catalog.ServiceOffering
	for rows.Next() {
		offering, err := scanServiceRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service offering: %w", err)
		}
		offerings = append(offerings, offering)
	}
	return offerings, rows.Err()
}

func (r *ServiceOfferingRepository) FindByID(id string) (*catalog.ServiceOffering, error) {
	row := r.db.QueryRow(`SELECT `+serviceColumns+` FROM service_offerings WHERE id = ?`, id)

	offering, err := scanServiceRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan service offering", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan service offering: %w", err)
	}
	return offering, nil
}

func (r *ServiceOfferingRepository) Store(offering *catalog.ServiceOffering) error {
	featuresJSON, _ := json.Marshal(offering.Features)

	query := `INSERT INTO service_offerings (` + serviceColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing service offering insert", "id", offering.ID)

	_, err := r.db.Exec(query, offering.ID, offering.Title, offering.Description, string(featuresJSON),
		offering.Image, offering.Icon, offering.Color, offering.Order, offering.IsActive,
		offering.Created, offering.Changed)
	if err != nil {
		r.logger.Database().Error("Service offering insert failed", "error", err.Error(), "id", offering.ID)
		return fmt.Errorf("failed to insert service offering: %w", err)
	}

	r.logger.Database().Info("Service offering insert completed", "id", offering.ID, "duration", time.Since(start))
	return nil
}

func (r *ServiceOfferingRepository) Update(offering *catalog.ServiceOffering) error {
	featuresJSON, _ := json.Marshal(offering.Features)

	query := `UPDATE service_offerings SET title = ?, description = ?, features = ?, image = ?,
	          icon = ?, color = ?, sort_order = ?, is_active = ?, changed = ? WHERE id = ?`

	now := time.Now().UTC()
	offering.Changed = &now
	_, err := r.db.Exec(query, offering.Title, offering.Description, string(featuresJSON),
		offering.Image, offering.Icon, offering.Color, offering.Order, offering.IsActive,
		offering.Changed, offering.ID)
	if err != nil {
		r.logger.Database().Error("Service offering update failed", "error", err.Error(), "id", offering.ID)
		return fmt.Errorf("failed to update service offering: %w", err)
	}
	return nil
}

func (r *ServiceOfferingRepository) Deactivate(id string) error {
	_, err := r.db.Exec(`UPDATE service_offerings SET is_active = 0, changed = ? WHERE id = ?`, time.Now().UTC(), id)
	if err != nil {
		r.logger.Database().Error("Service offering deactivate failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to deactivate service offering: %w", err)
	}
	return nil
}

func scanServiceRow(scan func(dest ...any) error) (*catalog.ServiceOffering, error) {
	var offering catalog.ServiceOffering
	var featuresStr string
	err := scan(&offering.ID, &offering.Title, &offering.Description, &featuresStr,
		&offering.Image, &offering.Icon, &offering.Color, &offering.Order, &offering.IsActive,
		&offering.Created, &offering.Changed)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(featuresStr), &offering.Features); err != nil {
		offering.Features = []string{}
	}
	return &offering, nil
}
