package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dspfilms/studio-go/internal/application/services"
	"github.com/dspfilms/studio-go/internal/domain/entities/sitecontent"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/performance"
	"github.com/dspfilms/studio-go/internal/presentation/http/middleware"
)

type memContentRepo struct {
	items     []sitecontent.ContentItem
	failAddrs map[string]bool
}

func (m *memContentRepo) GetAll() ([]sitecontent.ContentItem, error) {
	return append([]sitecontent.ContentItem(nil), m.items...), nil
}

func (m *memContentRepo) GetBySection(section string) ([]sitecontent.ContentItem, error) {
	var out []sitecontent.ContentItem
	for _, item := range m.items {
		if item.Section == section {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *memContentRepo) Upsert(section, key, value, editorID string) (*sitecontent.ContentItem, error) {
	addr := sitecontent.Address{Section: section, Key: key}
	if m.failAddrs[addr.String()] {
		return nil, &sitecontent.StorageUnavailableError{Op: "upsert content", Err: errors.New("write failed")}
	}

	item := sitecontent.ContentItem{
		Section:   section,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
		UpdatedBy: editorID,
	}
	for i, existing := range m.items {
		if existing.Address() == addr {
			m.items[i] = item
			return &item, nil
		}
	}
	m.items = append(m.items, item)
	return &item, nil
}

// contentEnv extends the auth environment with the content endpoints so the
// batch-update flow runs through the real session middleware.
type contentEnv struct {
	*authEnv
	repo *memContentRepo
}

func newContentEnv(t *testing.T) *contentEnv {
	t.Helper()
	env := newAuthEnv(t)
	repo := &memContentRepo{}

	logger := quietLogger(t)
	tracker := performance.NewTracker(nil)
	contentService := services.NewSiteContentService(repo, logger, tracker)
	contentHandlers := NewContentHandlers(contentService, logger, tracker)

	env.router.GET("/api/v1/content", contentHandlers.GetContent)
	env.router.GET("/api/v1/content/:section", contentHandlers.GetContentSection)

	authed := env.router.Group("/api/v1/admin",
		middleware.RequireEditor(env.authService),
		middleware.RequirePermission("manage_content"))
	authed.GET("/content/overrides", contentHandlers.GetOverrides)
	authed.POST("/content/batch-update", contentHandlers.BatchUpdate)

	return &contentEnv{authEnv: env, repo: repo}
}

func (e *contentEnv) batchUpdate(t *testing.T, cookie *http.Cookie, updates []sitecontent.PendingChange) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(BatchUpdateRequest{Updates: updates})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/content/batch-update", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func textUpdate(section, key, value string) sitecontent.PendingChange {
	return sitecontent.PendingChange{Section: section, Key: key, Value: value, Kind: sitecontent.KindText}
}

func TestGetContentServesDefaultsOnEmptyStore(t *testing.T) {
	env := newContentEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/content", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Content []sitecontent.ContentItem `json:"content"`
		Count   int                       `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, len(body.Content), body.Count)
	require.NotEmpty(t, body.Content)

	for _, item := range body.Content {
		assert.Equal(t, "system", item.UpdatedBy)
	}
}

func TestGetContentSectionMergesOverride(t *testing.T) {
	env := newContentEnv(t)
	_, err := env.repo.Upsert("hero", "heading", "Weddings Done Right", "user-admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/content/hero", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Section string            `json:"section"`
		Fields  map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "hero", body.Section)
	assert.Equal(t, "Weddings Done Right", body.Fields["heading"])
	assert.Equal(t, "Capturing Life's Precious Moments", body.Fields["tagline"])
}

func TestBatchUpdateRequiresAuthentication(t *testing.T) {
	env := newContentEnv(t)

	w := env.batchUpdate(t, nil, []sitecontent.PendingChange{textUpdate("hero", "heading", "x")})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, env.repo.items)
}

func TestBatchUpdateAppliesChangesForEditor(t *testing.T) {
	env := newContentEnv(t)
	cookie := sessionCookie(t, env.login(t, testAdminEmail, testAdminPassword))

	w := env.batchUpdate(t, cookie, []sitecontent.PendingChange{
		textUpdate("hero", "heading", "Weddings Done Right"),
		textUpdate("about", "title", "About DSP Film's"),
	})

	require.Equal(t, http.StatusOK, w.Code)
	var result sitecontent.BatchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 2, result.AppliedCount)
	assert.Empty(t, result.Failures)

	require.Len(t, env.repo.items, 2)
	assert.Equal(t, "user-admin", env.repo.items[0].UpdatedBy)
}

func TestBatchUpdatePartialFailureStillOK(t *testing.T) {
	env := newContentEnv(t)
	cookie := sessionCookie(t, env.login(t, testAdminEmail, testAdminPassword))

	w := env.batchUpdate(t, cookie, []sitecontent.PendingChange{
		textUpdate("hero", "heading", "applies"),
		{Section: "", Key: "broken", Value: "x", Kind: sitecontent.KindText},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var result sitecontent.BatchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.AppliedCount)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "broken", result.Failures[0].Change.Key)
}

func TestBatchUpdateAllFailedIsUnprocessable(t *testing.T) {
	env := newContentEnv(t)
	cookie := sessionCookie(t, env.login(t, testAdminEmail, testAdminPassword))

	w := env.batchUpdate(t, cookie, []sitecontent.PendingChange{
		{Section: "", Key: "broken", Value: "x", Kind: sitecontent.KindText},
		{Section: "hero", Key: "banner", Value: "x", Kind: "gif"},
	})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var result sitecontent.BatchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 0, result.AppliedCount)
	assert.Len(t, result.Failures, 2)
}

func TestBatchUpdateRejectsMissingBody(t *testing.T) {
	env := newContentEnv(t)
	cookie := sessionCookie(t, env.login(t, testAdminEmail, testAdminPassword))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/content/batch-update", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOverridesReturnsOnlyStoredItems(t *testing.T) {
	env := newContentEnv(t)
	cookie := sessionCookie(t, env.login(t, testAdminEmail, testAdminPassword))

	_, err := env.repo.Upsert("hero", "heading", "override", "user-admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/content/overrides", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Overrides []sitecontent.ContentItem `json:"overrides"`
		Count     int                       `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Overrides, 1)
	assert.Equal(t, "override", body.Overrides[0].Value)
}
