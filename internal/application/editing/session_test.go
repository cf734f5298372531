package editing

import (
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dspfilms/studio-go/internal/domain/entities/sitecontent"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
)

type fakeLoader struct {
	mu      sync.Mutex
	content sitecontent.EffectiveContentMap
	err     error
	calls   int
}

func (f *fakeLoader) LoadEffective() (sitecontent.EffectiveContentMap, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make(sitecontent.EffectiveContentMap, len(f.content))
	for k, v := range f.content {
		out[k] = v
	}
	return out, nil
}

func (f *fakeLoader) setError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

type fakeApplier struct {
	mu       sync.Mutex
	batches  [][]sitecontent.PendingChange
	rejectAs error
	failKeys map[string]bool
}

func (f *fakeApplier) ApplyBatch(editorID string, changes []sitecontent.PendingChange) (*sitecontent.BatchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rejectAs != nil {
		return nil, f.rejectAs
	}

	f.batches = append(f.batches, append([]sitecontent.PendingChange(nil), changes...))
	result := &sitecontent.BatchResult{Failures: []sitecontent.ChangeFailure{}}
	for _, c := range changes {
		if f.failKeys[c.Key] {
			result.Failures = append(result.Failures, sitecontent.ChangeFailure{Change: c, Reason: "store down"})
			continue
		}
		result.AppliedCount++
	}
	return result, nil
}

func (f *fakeApplier) batchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.batches)
}

func testLogger(t *testing.T) *logging.ChanneledLogger {
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

func loadedContent() sitecontent.EffectiveContentMap {
	return sitecontent.EffectiveContentMap{
		"hero.heading": "Capturing Life's Beautiful Moments",
		"hero.tagline": "Capturing Life's Precious Moments",
	}
}

func textChange(section, key, value string) sitecontent.PendingChange {
	return sitecontent.PendingChange{Section: section, Key: key, Value: value, Kind: sitecontent.KindText}
}

func TestSessionOpenTransitionsToReady(t *testing.T) {
	session := NewSession("editor-1", &fakeLoader{content: loadedContent()}, &fakeApplier{}, 0, testLogger(t))

	assert.Equal(t, StateClosed, session.State())
	require.NoError(t, session.Open())
	assert.Equal(t, StateReady, session.State())

	got, ok := session.Content().Get("hero", "heading")
	require.True(t, ok)
	assert.Equal(t, "Capturing Life's Beautiful Moments", got)
}

func TestSessionLoadErrorAndRetry(t *testing.T) {
	loader := &fakeLoader{content: loadedContent()}
	loader.setError(errors.New("store offline"))
	session := NewSession("editor-1", loader, &fakeApplier{}, 0, testLogger(t))

	err := session.Open()
	require.Error(t, err)
	assert.Equal(t, StateLoadError, session.State())

	var loadErr *sitecontent.LoadError
	assert.ErrorAs(t, session.LoadError(), &loadErr)

	// Editing is blocked until a retry succeeds.
	assert.ErrorIs(t, session.Stage(textChange("hero", "heading", "x")), ErrNotEditable)

	loader.setError(nil)
	require.NoError(t, session.Retry())
	assert.Equal(t, StateReady, session.State())
}

func TestSessionRetryOnlyFromLoadError(t *testing.T) {
	session := NewSession("editor-1", &fakeLoader{content: loadedContent()}, &fakeApplier{}, 0, testLogger(t))
	require.NoError(t, session.Open())

	assert.ErrorIs(t, session.Retry(), ErrNotLoadError)
}

func TestSessionStageMarksDirtyAndOverwrites(t *testing.T) {
	session := NewSession("editor-1", &fakeLoader{content: loadedContent()}, &fakeApplier{}, 0, testLogger(t))
	require.NoError(t, session.Open())

	require.NoError(t, session.Stage(textChange("hero", "heading", "first")))
	assert.Equal(t, StateDirty, session.State())
	assert.Equal(t, 1, session.PendingCount())

	// Re-staging the same address replaces, not appends.
	require.NoError(t, session.Stage(textChange("hero", "heading", "second")))
	assert.Equal(t, 1, session.PendingCount())

	got, _ := session.Content().Get("hero", "heading")
	assert.Equal(t, "second", got)
}

func TestSessionStageRejectsInvalidChange(t *testing.T) {
	session := NewSession("editor-1", &fakeLoader{content: loadedContent()}, &fakeApplier{}, 0, testLogger(t))
	require.NoError(t, session.Open())

	var validationErr *sitecontent.ValidationError
	assert.ErrorAs(t, session.Stage(textChange("", "heading", "x")), &validationErr)
	assert.ErrorAs(t, session.Stage(sitecontent.PendingChange{Section: "hero", Key: "banner", Value: "x", Kind: "gif"}), &validationErr)
	assert.Equal(t, StateReady, session.State())
}

func TestSessionSaveFlushesInStageOrder(t *testing.T) {
	applier := &fakeApplier{}
	session := NewSession("editor-1", &fakeLoader{content: loadedContent()}, applier, 0, testLogger(t))
	require.NoError(t, session.Open())

	require.NoError(t, session.Stage(textChange("hero", "heading", "h")))
	require.NoError(t, session.Stage(textChange("about", "title", "t")))
	require.NoError(t, session.Stage(textChange("hero", "tagline", "g")))

	result, err := session.Save()
	require.NoError(t, err)
	assert.Equal(t, 3, result.AppliedCount)
	assert.Equal(t, StateReady, session.State())
	assert.Equal(t, 0, session.PendingCount())

	require.Len(t, applier.batches, 1)
	batch := applier.batches[0]
	require.Len(t, batch, 3)
	assert.Equal(t, "heading", batch[0].Key)
	assert.Equal(t, "title", batch[1].Key)
	assert.Equal(t, "tagline", batch[2].Key)
}

func TestSessionSaveKeepsFailedChangesPending(t *testing.T) {
	applier := &fakeApplier{failKeys: map[string]bool{"title": true}}
	session := NewSession("editor-1", &fakeLoader{content: loadedContent()}, applier, 0, testLogger(t))
	require.NoError(t, session.Open())

	require.NoError(t, session.Stage(textChange("hero", "heading", "h")))
	require.NoError(t, session.Stage(textChange("about", "title", "t")))

	result, err := session.Save()
	require.NoError(t, err)
	assert.Equal(t, 1, result.AppliedCount)
	require.Len(t, result.Failures, 1)

	// The failed change stays staged and the session stays dirty.
	assert.Equal(t, StateDirty, session.State())
	assert.Equal(t, 1, session.PendingCount())

	// A later save retries only the failed change.
	applier.failKeys = nil
	result, err = session.Save()
	require.NoError(t, err)
	assert.Equal(t, 1, result.AppliedCount)
	assert.Equal(t, StateReady, session.State())

	require.Len(t, applier.batches, 2)
	require.Len(t, applier.batches[1], 1)
	assert.Equal(t, "title", applier.batches[1][0].Key)
}

func TestSessionSaveWholeBatchRejection(t *testing.T) {
	applier := &fakeApplier{rejectAs: &sitecontent.AuthorizationError{Reason: "session revoked"}}
	session := NewSession("editor-1", &fakeLoader{content: loadedContent()}, applier, 0, testLogger(t))
	require.NoError(t, session.Open())

	require.NoError(t, session.Stage(textChange("hero", "heading", "h")))

	_, err := session.Save()
	require.Error(t, err)
	assert.Equal(t, StateDirty, session.State())
	assert.Equal(t, 1, session.PendingCount())
}

func TestSessionSaveWithNothingPending(t *testing.T) {
	session := NewSession("editor-1", &fakeLoader{content: loadedContent()}, &fakeApplier{}, 0, testLogger(t))
	require.NoError(t, session.Open())

	_, err := session.Save()
	assert.ErrorIs(t, err, ErrNothingSaved)
}

func TestSessionCloseDiscardsPending(t *testing.T) {
	session := NewSession("editor-1", &fakeLoader{content: loadedContent()}, &fakeApplier{}, 0, testLogger(t))
	require.NoError(t, session.Open())

	require.NoError(t, session.Stage(textChange("hero", "heading", "h")))
	require.NoError(t, session.Stage(textChange("about", "title", "t")))

	discarded := session.Close()
	assert.Equal(t, 2, discarded)
	assert.Equal(t, StateClosed, session.State())
	assert.Equal(t, 0, session.PendingCount())
}

func TestSessionAutosaveFlushesWhenDirty(t *testing.T) {
	applier := &fakeApplier{}
	session := NewSession("editor-1", &fakeLoader{content: loadedContent()}, applier, 20*time.Millisecond, testLogger(t))
	require.NoError(t, session.Open())
	defer session.Close()

	require.NoError(t, session.Stage(textChange("hero", "heading", "h")))

	require.Eventually(t, func() bool {
		return session.State() == StateReady
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, applier.batchCount())
}

func TestSessionAutosaveIdleWhenClean(t *testing.T) {
	applier := &fakeApplier{}
	session := NewSession("editor-1", &fakeLoader{content: loadedContent()}, applier, 20*time.Millisecond, testLogger(t))
	require.NoError(t, session.Open())
	defer session.Close()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 0, applier.batchCount())
	assert.Equal(t, StateReady, session.State())
}

func TestSessionAutosaveKeepsTickingAfterFailure(t *testing.T) {
	applier := &fakeApplier{rejectAs: errors.New("store down")}
	session := NewSession("editor-1", &fakeLoader{content: loadedContent()}, applier, 20*time.Millisecond, testLogger(t))
	require.NoError(t, session.Open())
	defer session.Close()

	require.NoError(t, session.Stage(textChange("hero", "heading", "h")))

	// Let a few failing ticks pass, then heal the applier.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, StateDirty, session.State())

	applier.mu.Lock()
	applier.rejectAs = nil
	applier.mu.Unlock()

	require.Eventually(t, func() bool {
		return session.State() == StateReady
	}, time.Second, 5*time.Millisecond)
}
