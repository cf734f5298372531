// Package editing implements the admin portal's live-edit session: a state
// machine that stages content changes against the loaded site copy and
// flushes them in batches, manually or on an autosave interval.
package editing

import (
	"errors"
	"sync"
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/sitecontent"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
)

// State is the session lifecycle state.
type State string

const (
	StateClosed    State = "closed"
	StateLoading   State = "loading"
	StateReady     State = "ready"
	StateDirty     State = "dirty"
	StateSaving    State = "saving"
	StateLoadError State = "load_error"
)

// ContentLoader fetches the effective site content a session edits against.
type ContentLoader interface {
	LoadEffective() (sitecontent.EffectiveContentMap, error)
}

// BatchApplier persists staged changes on behalf of an editor.
type BatchApplier interface {
	ApplyBatch(editorID string, changes []sitecontent.PendingChange) (*sitecontent.BatchResult, error)
}

var (
	ErrNotEditable  = errors.New("session is not in an editable state")
	ErrNothingSaved = errors.New("session has no pending changes")
	ErrNotLoadError = errors.New("session is not in the load-error state")
)

// Session is a single editor's live-edit session. All methods are safe for
// concurrent use; the autosave goroutine shares the same lock.
type Session struct {
	mu sync.Mutex

	state    State
	editorID string
	loader   ContentLoader
	applier  BatchApplier
	logger   *logging.ChanneledLogger

	content sitecontent.EffectiveContentMap
	loadErr error

	// pending holds one staged change per address; order preserves first-stage
	// order so batches submit the way the editor worked.
	pending map[sitecontent.Address]sitecontent.PendingChange
	order   []sitecontent.Address

	autosaveInterval time.Duration
	autosaveStop     chan struct{}
}

// NewSession creates a session in the Closed state. An autosaveInterval of
// zero disables autosave.
func NewSession(editorID string, loader ContentLoader, applier BatchApplier, autosaveInterval time.Duration, logger *logging.ChanneledLogger) *Session {
	return &Session{
		state:            StateClosed,
		editorID:         editorID,
		loader:           loader,
		applier:          applier,
		logger:           logger,
		pending:          make(map[sitecontent.Address]sitecontent.PendingChange),
		autosaveInterval: autosaveInterval,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Content returns the loaded effective content, or nil before a successful
// load.
func (s *Session) Content() sitecontent.EffectiveContentMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content
}

// LoadError returns the fetch failure that put the session in the load-error
// state.
func (s *Session) LoadError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// PendingCount returns the number of staged, unsaved changes.
func (s *Session) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Open loads the effective content and moves the session to Ready. A fetch
// failure leaves it in the load-error state; Retry attempts the load again.
func (s *Session) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateClosed {
		return errors.New("session is already open")
	}
	s.state = StateLoading
	return s.load()
}

// Retry re-attempts the content load after a failure.
func (s *Session) Retry() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLoadError {
		return ErrNotLoadError
	}
	s.state = StateLoading
	return s.load()
}

// load runs the fetch; callers hold the lock and have set StateLoading.
func (s *Session) load() error {
	content, err := s.loader.LoadEffective()
	if err != nil {
		s.state = StateLoadError
		s.loadErr = &sitecontent.LoadError{Err: err}
		s.logger.Content().Error("Editing session load failed", "editorId", s.editorID, "error", err.Error())
		return s.loadErr
	}

	s.content = content
	s.loadErr = nil
	s.state = StateReady
	s.logger.Content().Info("Editing session ready", "editorId", s.editorID, "fields", len(content))

	if s.autosaveInterval > 0 && s.autosaveStop == nil {
		s.autosaveStop = make(chan struct{})
		go s.autosaveLoop(s.autosaveStop)
	}
	return nil
}

// Stage records a change for an address, replacing any previously staged
// change for the same address, and marks the session dirty.
func (s *Session) Stage(change sitecontent.PendingChange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady && s.state != StateDirty {
		return ErrNotEditable
	}
	if !change.Address().Valid() {
		return &sitecontent.ValidationError{Address: change.Address(), Reason: "section and key must not be empty"}
	}
	if change.Kind != "" && !change.Kind.Valid() {
		return &sitecontent.ValidationError{Address: change.Address(), Reason: "unknown change kind"}
	}

	addr := change.Address()
	if _, staged := s.pending[addr]; !staged {
		s.order = append(s.order, addr)
	}
	s.pending[addr] = change
	s.content[addr.String()] = change.Value
	s.state = StateDirty
	return nil
}

// Save flushes the staged changes as one batch. Applied changes leave the
// pending set; failed ones stay staged, leaving the session dirty so a later
// save (or autosave) retries them.
func (s *Session) Save() (*sitecontent.BatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

func (s *Session) save() (*sitecontent.BatchResult, error) {
	if s.state != StateDirty {
		if s.state == StateReady {
			return nil, ErrNothingSaved
		}
		return nil, ErrNotEditable
	}

	s.state = StateSaving
	changes := make([]sitecontent.PendingChange, 0, len(s.order))
	for _, addr := range s.order {
		changes = append(changes, s.pending[addr])
	}

	result, err := s.applier.ApplyBatch(s.editorID, changes)
	if err != nil {
		// Whole-batch rejection; everything stays staged.
		s.state = StateDirty
		s.logger.Content().Error("Editing session save rejected", "editorId", s.editorID, "error", err.Error())
		return nil, err
	}

	failed := make(map[sitecontent.Address]struct{}, len(result.Failures))
	for _, failure := range result.Failures {
		failed[failure.Change.Address()] = struct{}{}
	}

	remaining := s.order[:0]
	for _, addr := range s.order {
		if _, ok := failed[addr]; ok {
			remaining = append(remaining, addr)
			continue
		}
		delete(s.pending, addr)
	}
	s.order = remaining

	if len(s.pending) == 0 {
		s.state = StateReady
	} else {
		s.state = StateDirty
	}

	s.logger.Content().Info("Editing session saved",
		"editorId", s.editorID,
		"applied", result.AppliedCount,
		"failed", len(result.Failures))
	return result, nil
}

// autosaveLoop saves on a fixed interval whenever the session is dirty. A
// failed autosave logs and keeps ticking.
func (s *Session) autosaveLoop(stop chan struct{}) {
	ticker := time.NewTicker(s.autosaveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.state == StateDirty {
				if _, err := s.save(); err != nil {
					s.logger.Content().Error("Autosave failed", "editorId", s.editorID, "error", err.Error())
				}
			}
			s.mu.Unlock()
		}
	}
}

// Close stops autosave and discards any staged changes, returning how many
// were discarded.
func (s *Session) Close() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.autosaveStop != nil {
		close(s.autosaveStop)
		s.autosaveStop = nil
	}

	discarded := len(s.pending)
	s.pending = make(map[sitecontent.Address]sitecontent.PendingChange)
	s.order = nil
	s.content = nil
	s.state = StateClosed

	if discarded > 0 {
		s.logger.Content().Info("Editing session closed with unsaved changes", "editorId", s.editorID, "discarded", discarded)
	}
	return discarded
}
