package services

import (
	"errors"
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/admin"
	"github.com/dspfilms/studio-go/internal/domain/repositories"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
	"github.com/dspfilms/studio-go/internal/infrastructure/security"
	"github.com/dspfilms/studio-go/pkg/config"
)

// ErrInvalidCredentials is returned for a wrong email or password. The two
// cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService handles editor login, logout, and session resolution. Sessions
// are opaque random tokens; only their SHA-256 hash is persisted.
type AuthService struct {
	users    repositories.UserRepository
	sessions repositories.SessionRepository
	logger   *logging.ChanneledLogger
}

// NewAuthService creates a new authentication application service.
func NewAuthService(users repositories.UserRepository, sessions repositories.SessionRepository, logger *logging.ChanneledLogger) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		logger:   logger,
	}
}

// Login verifies credentials and creates a session, returning the opaque
// token for the cookie along with the authenticated user.
func (s *AuthService) Login(email, password string, rememberMe bool) (string, *admin.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !user.IsActive || !security.CheckPassword(user.PasswordHash, password) {
		s.logger.LogAuthOperation("login", email, false)
		return "", nil, ErrInvalidCredentials
	}

	token, err := security.GenerateSecureToken(32)
	if err != nil {
		return "", nil, err
	}

	ttl := config.SessionTTL
	if rememberMe {
		ttl = config.SessionTTLExtended
	}

	now := time.Now().UTC()
	session := &admin.Session{
		TokenHash: security.HashToken(token),
		UserID:    user.ID,
		Created:   now,
		ExpiresAt: now.Add(ttl),
	}
	if err := s.sessions.Store(session); err != nil {
		return "", nil, err
	}

	if err := s.users.UpdateLastLogin(user.ID); err != nil {
		s.logger.Auth().Error("Failed to record last login", "userId", user.ID, "error", err.Error())
	}

	// Expired rows from older logins are swept here rather than on a timer.
	if err := s.sessions.DeleteExpired(); err != nil {
		s.logger.Auth().Error("Failed to sweep expired sessions", "error", err.Error())
	}

	s.logger.LogAuthOperation("login", user.ID, true)
	return token, user, nil
}

// Logout deletes the session for the given token. Unknown tokens are not an
// error.
func (s *AuthService) Logout(token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(security.HashToken(token))
}

// CurrentEditor resolves a session token to its active user, or nil when the
// token is unknown, expired, or belongs to a deactivated account.
func (s *AuthService) CurrentEditor(token string) (*admin.User, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.sessions.FindByTokenHash(security.HashToken(token))
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	if session.Expired(time.Now().UTC()) {
		if err := s.sessions.Delete(session.TokenHash); err != nil {
			s.logger.Auth().Error("Failed to delete expired session", "error", err.Error())
		}
		return nil, nil
	}

	user, err := s.users.FindByID(session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, nil
	}
	return user, nil
}

// IssueBearerToken signs a JWT carrying the editor's identity for API
// clients that cannot hold the session cookie. Requires JWT_SECRET.
func (s *AuthService) IssueBearerToken(user *admin.User, rememberMe bool) (string, error) {
	if config.JWTSecret == "" {
		return "", nil
	}
	ttl := config.SessionTTL
	if rememberMe {
		ttl = config.SessionTTLExtended
	}
	return security.GenerateEditorToken(user.ID, string(user.Role), config.JWTSecret, ttl)
}

// EditorFromBearerToken validates a signed bearer token and resolves its
// editor, or nil when the token is invalid or the account is gone.
func (s *AuthService) EditorFromBearerToken(token string) (*admin.User, error) {
	if config.JWTSecret == "" {
		return nil, nil
	}

	claims, err := security.ValidateEditorToken(token, config.JWTSecret)
	if err != nil {
		s.logger.Auth().Debug("Bearer token rejected", "error", err.Error())
		return nil, nil
	}

	user, err := s.users.FindByID(claims.EditorID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, nil
	}
	return user, nil
}

// CreateUser registers a new editor account. Only admins reach this path;
// the handler enforces the role check.
func (s *AuthService) CreateUser(email, name, password string, role admin.Role) (*admin.User, error) {
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("a user with this email already exists")
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &admin.User{
		ID:           security.GenerateULID(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		Created:      time.Now().UTC(),
	}
	if err := s.users.Store(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns all editor accounts.
func (s *AuthService) ListUsers() ([]*admin.User, error) {
	return s.users.FindAll()
}
