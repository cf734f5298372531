package adminstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/admin"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
)

type SessionRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewSessionRepository(db *sql.DB, logger *logging.ChanneledLogger) *SessionRepository {
	return &SessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SessionRepository) FindByTokenHash(tokenHash string) (*admin.Session, error) {
	row := r.db.QueryRow(
		`SELECT token_hash, user_id, created, expires_at FROM sessions WHERE token_hash = ?`,
		tokenHash,
	)

	var session admin.Session
	err := row.Scan(&session.TokenHash, &session.UserID, &session.Created, &session.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan session", "error", err.Error())
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}
	return &session, nil
}

func (r *SessionRepository) Store(session *admin.Session) error {
	_, err := r.db.Exec(
		`INSERT INTO sessions (token_hash, user_id, created, expires_at) VALUES (?, ?, ?, ?)`,
		session.TokenHash, session.UserID, session.Created, session.ExpiresAt,
	)
	if err != nil {
		r.logger.Database().Error("Session insert failed", "error", err.Error(), "userId", session.UserID)
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(tokenHash string) error {
	_, err := r.db.Exec(`DELETE FROM sessions WHERE token_hash = ?`, tokenHash)
	if err != nil {
		r.logger.Database().Error("Session delete failed", "error", err.Error())
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpired removes sessions past their expiry. Called opportunistically
// during login so the table does not grow without bound.
func (r *SessionRepository) DeleteExpired() error {
	start := time.Now()
	result, err := r.db.Exec(`DELETE FROM sessions WHERE expires_at < ?`, time.Now().UTC())
	if err != nil {
		r.logger.Database().Error("Expired session cleanup failed", "error", err.Error())
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	if removed, err := result.RowsAffected(); err == nil && removed > 0 {
		r.logger.Database().Info("Removed expired sessions", "count", removed, "duration", time.Since(start))
	}
	return nil
}
