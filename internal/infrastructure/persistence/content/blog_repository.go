package content

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/catalog"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
)

type BlogRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewBlogRepository(db *sql.DB, logger *logging.ChanneledLogger) *BlogRepository {
	return &BlogRepository{
		db:     db,
		logger: logger,
	}
}

const blogColumns = `id, title, slug, excerpt, body, image, is_active, created, changed`

func (r *BlogRepository) FindAll() ([]*catalog.BlogPost, error) {
	return r.query(`SELECT ` + blogColumns + ` FROM blog_posts ORDER BY created DESC`)
}

func (r *BlogRepository) FindActive() ([]*catalog.BlogPost, error) {
	return r.query(`SELECT ` + blogColumns + ` FROM blog_posts WHERE is_active = 1 ORDER BY created DESC`)
}

func (r *BlogRepository) FindByID(id string) (*catalog.BlogPost, error) {
	row := r.db.QueryRow(`SELECT `+blogColumns+` FROM blog_posts WHERE id = ?`, id)

	post, err := scanBlogRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan blog post", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan blog post: %w", err)
	}
	return post, nil
}

func (r *BlogRepository) Store(post *catalog.BlogPost) error {
	query := `INSERT INTO blog_posts (` + blogColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing blog post insert", "id", post.ID)

	_, err := r.db.Exec(query, post.ID, post.Title, post.Slug, post.Excerpt, post.Body,
		post.Image, post.IsActive, post.Created, post.Changed)
	if err != nil {
		r.logger.Database().Error("Blog post insert failed", "error", err.Error(), "id", post.ID)
		return fmt.Errorf("failed to insert blog post: %w", err)
	}

	r.logger.Database().Info("Blog post insert completed", "id", post.ID, "duration", time.Since(start))
	return nil
}

func (r *BlogRepository) Update(post *catalog.BlogPost) error {
	query := `UPDATE blog_posts SET title = ?, slug = ?, excerpt = ?, body = ?, image = ?,
	          is_active = ?, changed = ? WHERE id = ?`

	now := time.Now().UTC()
	post.Changed = &now
	_, err := r.db.Exec(query, post.Title, post.Slug, post.Excerpt, post.Body, post.Image,
		post.IsActive, post.Changed, post.ID)
	if err != nil {
		r.logger.Database().Error("Blog post update failed", "error", err.Error(), "id", post.ID)
		return fmt.Errorf("failed to update blog post: %w", err)
	}
	return nil
}

func (r *BlogRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM blog_posts WHERE id = ?`, id)
	if err != nil {
		r.logger.Database().Error("Blog post delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	return nil
}

func (r *BlogRepository) query(query string) ([]*catalog.BlogPost, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Database().Error("Failed to query blog posts", "error", err.Error())
		return nil, fmt.Errorf("failed to query blog posts: %w", err)
	}
	defer rows.Close()

	var posts []*catalog.BlogPost
	for rows.Next() {
		post, err := scanBlogRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func scanBlogRow(scan func(dest ...any) error) (*catalog.BlogPost, error) {
	var post catalog.BlogPost
	err := scan(&post.ID, &post.Title, &post.Slug, &post.Excerpt, &post.Body, &post.Image,
		&post.IsActive, &post.Created, &post.Changed)
	if err != nil {
		return nil, err
	}
	return &post, nil
}
