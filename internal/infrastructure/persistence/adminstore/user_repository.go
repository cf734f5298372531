// Package adminstore provides the SQL-backed repositories for editor
// accounts, sessions, site settings, and the activity log.
package adminstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/admin"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
)

type UserRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewUserRepository(db *sql.DB, logger *logging.ChanneledLogger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

const userColumns = `id, email, name, password_hash, role, is_active, created, last_login`

func (r *UserRepository) FindByEmail(email string) (*admin.User, error) {
	row := r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return r.scanUser(row.Scan)
}

func (r *UserRepository) FindByID(id string) (*admin.User, error) {
	row := r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return r.scanUser(row.Scan)
}

func (r *UserRepository) FindAll() ([]*admin.User, error) {
	rows, err := r.db.Query(`SELECT ` + userColumns + ` FROM users ORDER BY created`)
	if err != nil {
		r.logger.Database().Error("Failed to query users", "error", err.Error())
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []*admin.User
	for rows.Next() {
		user, err := r.scanUser(rows.Scan)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) Store(user *admin.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing user insert", "id", user.ID)

	_, err := r.db.Exec(query, user.ID, user.Email, user.Name, user.PasswordHash,
		user.Role, user.IsActive, user.Created, user.LastLogin)
	if err != nil {
		r.logger.Database().Error("User insert failed", "error", err.Error(), "id", user.ID)
		return fmt.Errorf("failed to insert user: %w", err)
	}

	r.logger.Database().Info("User insert completed", "id", user.ID, "duration", time.Since(start))
	return nil
}

func (r *UserRepository) UpdateLastLogin(id string) error {
	_, err := r.db.Exec(`UPDATE users SET last_login = ? WHERE id = ?`, time.Now().UTC(), id)
	if err != nil {
		r.logger.Database().Error("User last-login update failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

func (r *UserRepository) scanUser(scan func(dest ...any) error) (*admin.User, error) {
	var user admin.User
	err := scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.Role,
		&user.IsActive, &user.Created, &user.LastLogin)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan user", "error", err.Error())
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}
