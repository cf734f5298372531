package content

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/catalog"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
)

type VideoRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewVideoRepository(db *sql.DB, logger *logging.ChanneledLogger) *VideoRepository {
	return &VideoRepository{
		db:     db,
		logger: logger,
	}
}

const videoColumns = `id, title, url, thumb, sort_order, is_active, created, changed`

func (r *VideoRepository) FindAll() ([]*catalog.Video, error) {
	return r.query(`SELECT ` + videoColumns + ` FROM videos ORDER BY sort_order, created`)
}

func (r *VideoRepository) FindActive() ([]*catalog.Video, error) {
	return r.query(`SELECT ` + videoColumns + ` FROM videos WHERE is_active = 1 ORDER BY sort_order, created`)
}

func (r *VideoRepository) FindByID(id string) (*catalog.Video, error) {
	row := r.db.QueryRow(`SELECT `+videoColumns+` FROM videos WHERE id = ?`, id)

	video, err := scanVideoRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan video", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan video: %w", err)
	}
	return video, nil
}

func (r *VideoRepository) Store(video *catalog.Video) error {
	query := `INSERT INTO videos (` + videoColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing video insert", "id", video.ID)

	_, err := r.db.Exec(query, video.ID, video.Title, video.URL, video.Thumb,
		video.Order, video.IsActive, video.Created, video.Changed)
	if err != nil {
		r.logger.Database().Error("Video insert failed", "error", err.Error(), "id", video.ID)
		return fmt.Errorf("failed to insert video: %w", err)
	}

	r.logger.Database().Info("Video insert completed", "id", video.ID, "duration", time.Since(start))
	return nil
}

func (r *VideoRepository) Update(video *catalog.Video) error {
	query := `UPDATE videos SET title = ?, url = ?, thumb = ?, sort_order = ?, is_active = ?,
	          changed = ? WHERE id = ?`

	now := time.Now().UTC()
	video.Changed = &now
	_, err := r.db.Exec(query, video.Title, video.URL, video.Thumb, video.Order,
		video.IsActive, video.Changed, video.ID)
	if err != nil {
		r.logger.Database().Error("Video update failed", "error", err.Error(), "id", video.ID)
		return fmt.Errorf("failed to update video: %w", err)
	}
	return nil
}

func (r *VideoRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM videos WHERE id = ?`, id)
	if err != nil {
		r.logger.Database().Error("Video delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete video: %w", err)
	}
	return nil
}

func (r *VideoRepository) query(query string) ([]*catalog.Video, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Database().Error("Failed to query videos", "error", err.Error())
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer rows.Close()

	var videos []*catalog.Video
	for rows.Next() {
		video, err := scanVideoRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, video)
	}
	return videos, rows.Err()
}

func scanVideoRow(scan func(dest ...any) error) (*catalog.Video, error) {
	var video catalog.Video
	err := scan(&video.ID, &video.Title, &video.URL, &video.Thumb, &video.Order,
		&video.IsActive, &video.Created, &video.Changed)
	if err != nil {
		return nil, err
	}
	return &video, nil
}
