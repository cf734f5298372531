package services

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dspfilms/studio-go/internal/domain/entities/sitecontent"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/performance"
)

// fakeContentRepo is an in-memory SiteContentRepository for service tests.
type fakeContentRepo struct {
	items     []sitecontent.ContentItem
	failAll   bool
	failAddrs map[string]bool
}

func (f *fakeContentRepo) GetAll() ([]sitecontent.ContentItem, error) {
	if f.failAll {
		return nil, &sitecontent.StorageUnavailableError{Op: "get all content", Err: errors.New("disk gone")}
	}
	return append([]sitecontent.ContentItem(nil), f.items...), nil
}

func (f *fakeContentRepo) GetBySection(section string) ([]sitecontent.ContentItem, error) {
	var out []sitecontent.ContentItem
	for _, item := range f.items {
		if item.Section == section {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeContentRepo) Upsert(section, key, value, editorID string) (*sitecontent.ContentItem, error) {
	addr := sitecontent.Address{Section: section, Key: key}
	if !addr.Valid() {
		return nil, &sitecontent.ValidationError{Address: addr, Reason: "section and key must not be empty"}
	}
	if f.failAddrs[addr.String()] {
		return nil, &sitecontent.StorageUnavailableError{Op: "upsert content", Err: errors.New("write failed")}
	}

	item := sitecontent.ContentItem{
		Section:   section,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
		UpdatedBy: editorID,
	}
	for i, existing := range f.items {
		if existing.Address() == addr {
			f.items[i] = item
			return &item, nil
		}
	}
	f.items = append(f.items, item)
	return &item, nil
}

func newTestLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: true,
		JSONFormat:      true,
		DefaultLevel:    slog.LevelError,
		ChannelLevels:   make(map[logging.Channel]slog.Level),
	})
	require.NoError(t, err)
	return logger
}

func newContentService(t *testing.T, repo *fakeContentRepo) *SiteContentService {
	t.Helper()
	return NewSiteContentService(repo, newTestLogger(t), performance.NewTracker(nil))
}

func change(section, key, value string) sitecontent.PendingChange {
	return sitecontent.PendingChange{Section: section, Key: key, Value: value, Kind: sitecontent.KindText}
}

func TestApplyBatchRequiresEditor(t *testing.T) {
	svc := newContentService(t, &fakeContentRepo{})

	result, err := svc.ApplyBatch("", []sitecontent.PendingChange{change("hero", "heading", "x")})

	require.Error(t, err)
	var authErr *sitecontent.AuthorizationError
	assert.ErrorAs(t, err, &authErr)
	assert.Nil(t, result)

	// Nothing applied.
	items, err := svc.GetOverrides()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestApplyBatchPartialSuccess(t *testing.T) {
	repo := &fakeContentRepo{}
	svc := newContentService(t, repo)

	changes := []sitecontent.PendingChange{
		change("hero", "heading", "new heading"),
		{Section: "", Key: "broken", Value: "x", Kind: sitecontent.KindText},
		change("about", "title", "new title"),
		{Section: "hero", Key: "banner", Value: "x", Kind: "gif"},
	}

	result, err := svc.ApplyBatch("editor-1", changes)
	require.NoError(t, err)

	assert.Equal(t, 2, result.AppliedCount)
	require.Len(t, result.Failures, 2)
	assert.Equal(t, "broken", result.Failures[0].Change.Key)
	assert.Equal(t, "banner", result.Failures[1].Change.Key)

	// Valid changes landed despite the invalid ones.
	items, err := svc.GetOverrides()
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestApplyBatchSameAddressLaterWins(t *testing.T) {
	repo := &fakeContentRepo{}
	svc := newContentService(t, repo)

	result, err := svc.ApplyBatch("editor-1", []sitecontent.PendingChange{
		change("hero", "heading", "A"),
		change("hero", "heading", "B"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.AppliedCount)

	effective := svc.GetEffective()
	got, _ := effective.Get("hero", "heading")
	assert.Equal(t, "B", got)
}

func TestApplyBatchStorageFailureReportedPerChange(t *testing.T) {
	repo := &fakeContentRepo{failAddrs: map[string]bool{"hero.heading": true}}
	svc := newContentService(t, repo)

	result, err := svc.ApplyBatch("editor-1", []sitecontent.PendingChange{
		change("hero", "heading", "fails"),
		change("about", "title", "applies"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.AppliedCount)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "heading", result.Failures[0].Change.Key)
	assert.Contains(t, result.Failures[0].Reason, "content store unavailable")
}

func TestApplyBatchEmptyIsNoop(t *testing.T) {
	svc := newContentService(t, &fakeContentRepo{})

	result, err := svc.ApplyBatch("editor-1", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.AppliedCount)
	assert.Empty(t, result.Failures)
}

func TestGetEffectiveFallsBackToDefaults(t *testing.T) {
	svc := newContentService(t, &fakeContentRepo{failAll: true})

	effective := svc.GetEffective()
	got, ok := effective.Get("hero", "heading")
	require.True(t, ok)
	assert.Equal(t, "Capturing Life's Beautiful Moments", got)
}

func TestLoadEffectiveSurfacesStoreFailure(t *testing.T) {
	svc := newContentService(t, &fakeContentRepo{failAll: true})

	_, err := svc.LoadEffective()
	require.Error(t, err)
	var storageErr *sitecontent.StorageUnavailableError
	assert.ErrorAs(t, err, &storageErr)
}

func TestGetEffectiveSectionMergesOverrides(t *testing.T) {
	repo := &fakeContentRepo{}
	svc := newContentService(t, repo)

	_, err := svc.ApplyBatch("editor-1", []sitecontent.PendingChange{
		change("hero", "heading", "edited"),
	})
	require.NoError(t, err)

	hero := svc.GetEffectiveSection("hero")
	assert.Equal(t, "edited", hero["heading"])
	assert.Equal(t, "Capturing Life's Precious Moments", hero["tagline"])
}
