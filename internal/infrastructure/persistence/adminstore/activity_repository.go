package adminstore

import (
	"database/sql"
	"fmt"

	"github.com/dspfilms/studio-go/internal/domain/entities/admin"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
)

type ActivityRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewActivityRepository(db *sql.DB, logger *logging.ChanneledLogger) *ActivityRepository {
	return &ActivityRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ActivityRepository) Record(entry *admin.ActivityEntry) error {
	_, err := r.db.Exec(
		`INSERT INTO activity_log (id, user_id, action, resource, resource_id, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.UserID, entry.Action, entry.Resource, entry.ResourceID, entry.Timestamp,
	)
	if err != nil {
		r.logger.Database().Error("Activity insert failed", "error", err.Error(), "action", entry.Action)
		return fmt.Errorf("failed to insert activity entry: %w", err)
	}
	return nil
}

func (r *ActivityRepository) FindRecent(limit int) ([]*admin.ActivityEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, user_id, action, resource, resource_id, timestamp
		 FROM activity_log ORDER BY timestamp DESC LIMIT ?`, limit,
	)
	if err != nil {
		r.logger.Database().Error("Failed to query activity log", "error", err.Error())
		return nil, fmt.Errorf("failed to query activity log: %w", err)
	}
	defer rows.Close()

	var entries []*admin.ActivityEntry
	for rows.Next() {
		var entry admin.ActivityEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Action, &entry.Resource,
			&entry.ResourceID, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}
