package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dspfilms/studio-go/internal/application/services"
	"github.com/dspfilms/studio-go/internal/domain/entities/admin"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/performance"
	"github.com/dspfilms/studio-go/internal/infrastructure/security"
	"github.com/dspfilms/studio-go/internal/presentation/http/middleware"
)

type fakeUserRepo struct {
	users []*admin.User
}

func (f *fakeUserRepo) FindByEmail(email string) (*admin.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(id string) (*admin.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll() ([]*admin.User, error) {
	return append([]*admin.User(nil), f.users...), nil
}

func (f *fakeUserRepo) Store(user *admin.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(id string) error {
	now := time.Now().UTC()
	for _, u := range f.users {
		if u.ID == id {
			u.LastLogin = &now
		}
	}
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*admin.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*admin.Session)}
}

func (f *fakeSessionRepo) FindByTokenHash(tokenHash string) (*admin.Session, error) {
	return f.sessions[tokenHash], nil
}

func (f *fakeSessionRepo) Store(session *admin.Session) error {
	f.sessions[session.TokenHash] = session
	return nil
}

func (f *fakeSessionRepo) Delete(tokenHash string) error {
	delete(f.sessions, tokenHash)
	return nil
}

func (f *fakeSessionRepo) DeleteExpired() error {
	now := time.Now().UTC()
	for hash, s := range f.sessions {
		if s.Expired(now) {
			delete(f.sessions, hash)
		}
	}
	return nil
}

type fakeActivityRepo struct {
	entries []*admin.ActivityEntry
}

func (f *fakeActivityRepo) Record(entry *admin.ActivityEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeActivityRepo) FindRecent(limit int) ([]*admin.ActivityEntry, error) {
	if limit > len(f.entries) {
		limit = len(f.entries)
	}
	return f.entries[:limit], nil
}

func quietLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToConsole: true,
		JSONFormat:      true,
		DefaultLevel:    slog.LevelError,
		ChannelLevels:   make(map[logging.Channel]slog.Level),
	})
	require.NoError(t, err)
	return logger
}

// authEnv wires fake repositories into a real AuthService plus the handlers
// and router slice the auth tests exercise.
type authEnv struct {
	users       *fakeUserRepo
	sessions    *fakeSessionRepo
	authService *services.AuthService
	router      *gin.Engine
}

const (
	testAdminEmail    = "owner@dspfilms.in"
	testAdminPassword = "correct-horse-battery"
)

func newAuthEnv(t *testing.T) *authEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := security.HashPassword(testAdminPassword)
	require.NoError(t, err)

	users := &fakeUserRepo{users: []*admin.User{
		{
			ID:           "user-admin",
			Email:        testAdminEmail,
			Name:         "Owner",
			PasswordHash: hash,
			Role:         admin.RoleAdmin,
			IsActive:     true,
			Created:      time.Now().UTC(),
		},
		{
			ID:           "user-editor",
			Email:        "editor@dspfilms.in",
			Name:         "Editor",
			PasswordHash: hash,
			Role:         admin.RoleEditor,
			IsActive:     true,
			Created:      time.Now().UTC(),
		},
	}}
	sessions := newFakeSessionRepo()

	logger := quietLogger(t)
	authService := services.NewAuthService(users, sessions, logger)
	activity := services.NewActivityService(&fakeActivityRepo{}, logger)
	authHandlers := NewAuthHandlers(authService, activity, logger, performance.NewTracker(nil))

	router := gin.New()
	router.POST("/api/v1/admin/auth/login", authHandlers.Login)
	router.POST("/api/v1/admin/auth/logout", authHandlers.Logout)

	authed := router.Group("/api/v1/admin", middleware.RequireEditor(authService))
	authed.GET("/auth/me", authHandlers.Me)
	authed.GET("/users", middleware.RequirePermission("manage_users"), authHandlers.ListUsers)

	return &authEnv{users: users, sessions: sessions, authService: authService, router: router}
}

func (e *authEnv) login(t *testing.T, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(LoginRequest{Email: email, Password: password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	env := newAuthEnv(t)

	w := env.login(t, testAdminEmail, testAdminPassword)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	var body struct {
		User admin.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, testAdminEmail, body.User.Email)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	env := newAuthEnv(t)

	w := env.login(t, testAdminEmail, "not-the-password")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, env.sessions.sessions)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	env := newAuthEnv(t)

	w := env.login(t, "stranger@example.com", testAdminPassword)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsMalformedPayload(t *testing.T) {
	env := newAuthEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/auth/login", bytes.NewReader([]byte(`{"email": "x"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeRequiresSession(t *testing.T) {
	env := newAuthEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/auth/me", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeReturnsEditorForValidCookie(t *testing.T) {
	env := newAuthEnv(t)
	cookie := sessionCookie(t, env.login(t, testAdminEmail, testAdminPassword))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/auth/me", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		User admin.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user-admin", body.User.ID)
}

func TestMeRejectsGarbageCookie(t *testing.T) {
	env := newAuthEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "not-a-real-token"})
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	env := newAuthEnv(t)
	cookie := sessionCookie(t, env.login(t, testAdminEmail, testAdminPassword))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/auth/logout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// The same cookie no longer resolves.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/auth/me", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListUsersRequiresAdminRole(t *testing.T) {
	env := newAuthEnv(t)
	editorCookie := sessionCookie(t, env.login(t, "editor@dspfilms.in", testAdminPassword))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	req.AddCookie(editorCookie)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminCookie := sessionCookie(t, env.login(t, testAdminEmail, testAdminPassword))
	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	req.AddCookie(adminCookie)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExpiredSessionRejected(t *testing.T) {
	env := newAuthEnv(t)
	cookie := sessionCookie(t, env.login(t, testAdminEmail, testAdminPassword))

	// Force-expire every stored session.
	for _, s := range env.sessions.sessions {
		s.ExpiresAt = time.Now().UTC().Add(-time.Hour)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/auth/me", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
