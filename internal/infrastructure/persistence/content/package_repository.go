package content

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/catalog"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
)

type PackageRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewPackageRepository(db *sql.DB, logger *logging.ChanneledLogger) *PackageRepository {
	return &PackageRepository{
		db:     db,
		logger: logger,
	}
}

const packageColumns = `id, name, price, duration, category, features, popular, color, sort_order, is_active, created, changed`

func (r *PackageRepository) FindActive() ([]*catalog.Package, error) {
	return r.query(`SELECT `+packageColumns+` FROM packages WHERE is_active = 1 ORDER BY sort_order, created`, nil)
}

func (r *PackageRepository) FindByCategory(category string) ([]*catalog.Package, error) {
	return r.query(`SELECT `+packageColumns+` FROM packages WHERE is_active = 1 AND category = ? ORDER BY sort_order, created`, []any{category})
}

func (r *PackageRepository) FindByID(id string) (*catalog.Package, error) {
	row := r.db.QueryRow(`SELECT `+packageColumns+` FROM packages WHERE id = ?`, id)

	pkg, err := scanPackageRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan package", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan package: %w", err)
	}
	return pkg, nil
}

func (r *PackageRepository) Store(pkg *catalog.Package) error {
	featuresJSON, _ := json.Marshal(pkg.Features)

	query := `INSERT INTO packages (` + packageColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing package insert", "id", pkg.ID)

	_, err := r.db.Exec(query, pkg.ID, pkg.Name, pkg.Price, pkg.Duration, pkg.Category,
		string(featuresJSON), pkg.Popular, pkg.Color, pkg.Order, pkg.IsActive, pkg.Created, pkg.Changed)
	if err != nil {
		r.logger.Database().Error("Package insert failed", "error", err.Error(), "id", pkg.ID)
		return fmt.Errorf("failed to insert package: %w", err)
	}

	r.logger.Database().Info("Package insert completed", "id", pkg.ID, "duration", time.Since(start))
	return nil
}

func (r *PackageRepository) Update(pkg *catalog.Package) error {
	featuresJSON, _ := json.Marshal(pkg.Features)

	query := `UPDATE packages SET name = ?, price = ?, duration = ?, category = ?, features = ?,
	          popular = ?, color = ?, sort_order = ?, is_active = ?, changed = ? WHERE id = ?`

	now := time.Now().UTC()
	pkg.Changed = &now
	_, err := r.db.Exec(query, pkg.Name, pkg.Price, pkg.Duration, pkg.Category, string(featuresJSON),
		pkg.Popular, pkg.Color, pkg.Order, pkg.IsActive, pkg.Changed, pkg.ID)
	if err != nil {
		r.logger.Database().Error("Package update failed", "error", err.Error(), "id", pkg.ID)
		return fmt.Errorf("failed to update package: %w", err)
	}
	return nil
}

func (r *PackageRepository) Deactivate(id string) error {
	_, err := r.db.Exec(`UPDATE packages SET is_active = 0, changed = ? WHERE id = ?`, time.Now().UTC(), id)
	if err != nil {
		r.logger.Database().Error("Package deactivate failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to deactivate package: %w", err)
	}
	return nil
}

func (r *PackageRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM packages WHERE is_active = 1`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count packages: %w", err)
	}
	return count, nil
}

func (r *PackageRepository) query(query string, args []any) ([]*catalog.Package, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Database().Error("Failed to query packages", "error", err.Error())
		return nil, fmt.Errorf("failed to query packages: %w", err)
	}
	defer rows.Close()

	var packages []*catalog.Package
	for rows.Next() {
		pkg, err := scanPackageRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan package: %w", err)
		}
		packages = append(packages, pkg)
	}
	return packages, rows.Err()
}

func scanPackageRow(scan func(dest ...any) error) (*catalog.Package, error) {
	var pkg catalog.Package
	var featuresStr string
	err := scan(&pkg.ID, &pkg.Name, &pkg.Price, &pkg.Duration, &pkg.Category, &featuresStr,
		&pkg.Popular, &pkg.Color, &pkg.Order, &pkg.IsActive, &pkg.Created, &pkg.Changed)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(featuresStr), &pkg.Features); err != nil {
		pkg.Features = []string{}
	}
	return &pkg, nil
}
