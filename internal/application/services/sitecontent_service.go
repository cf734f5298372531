// Package services provides application-level services that orchestrate
// business logic and coordinate between repositories and domain entities.
package services

import (
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/sitecontent"
	"github.com/dspfilms/studio-go/internal/domain/repositories"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/performance"
)

// SiteContentService orchestrates the content-override store: public reads
// resolve overrides over the default catalog, editor writes go through the
// batch update protocol.
type SiteContentService struct {
	repo        repositories.SiteContentRepository
	defaults    sitecontent.DefaultCatalog
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewSiteContentService creates a new site content application service.
func NewSiteContentService(repo repositories.SiteContentRepository, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *SiteContentService {
	return &SiteContentService{
		repo:        repo,
		defaults:    sitecontent.Defaults(),
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// GetEffective returns the merged content map for the public site. A backing
// store failure degrades to defaults only rather than erroring the read path.
func (s *SiteContentService) GetEffective() sitecontent.EffectiveContentMap {
	overrides, err := s.repo.GetAll()
	if err != nil {
		s.logger.Content().Error("Falling back to default content", "error", err.Error())
		return sitecontent.Resolve(nil, s.defaults)
	}
	return sitecontent.Resolve(overrides, s.defaults)
}

// LoadEffective returns the merged content map, surfacing store failures
// instead of degrading. Editing sessions use this so a fetch failure is
// visible rather than silently editing defaults.
func (s *SiteContentService) LoadEffective() (sitecontent.EffectiveContentMap, error) {
	overrides, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return sitecontent.Resolve(overrides, s.defaults), nil
}

// GetEffectiveSection returns the merged content for one section keyed by
// bare field key.
func (s *SiteContentService) GetEffectiveSection(section string) map[string]string {
	return s.GetEffective().Section(section)
}

// GetResolvedItems returns the item-shaped effective content: stored
// overrides plus synthetic items for unshadowed defaults.
func (s *SiteContentService) GetResolvedItems() []sitecontent.ContentItem {
	overrides, err := s.repo.GetAll()
	if err != nil {
		s.logger.Content().Error("Falling back to default content items", "error", err.Error())
		return sitecontent.ResolveItems(nil, s.defaults)
	}
	return sitecontent.ResolveItems(overrides, s.defaults)
}

// GetOverrides returns the raw stored overrides, without defaults.
func (s *SiteContentService) GetOverrides() ([]sitecontent.ContentItem, error) {
	return s.repo.GetAll()
}

// ApplyBatch persists a list of pending changes on behalf of an editor.
//
// An unauthenticated caller rejects the whole batch with no partial
// application. Otherwise each change is validated and persisted
// independently in list order; a failed change is reported in the result and
// does not stop later changes. Two changes to the same address both apply in
// order, so the later one wins.
func (s *SiteContentService) ApplyBatch(editorID string, changes []sitecontent.PendingChange) (*sitecontent.BatchResult, error) {
	if editorID == "" {
		return nil, &sitecontent.AuthorizationError{Reason: "batch update requires an authenticated editor"}
	}

	marker := s.perfTracker.StartOperation("content_batch_update")
	defer marker.Complete()

	start := time.Now()
	s.logger.Content().Debug("Applying content batch", "editorId", editorID, "changes", len(changes))

	result := &sitecontent.BatchResult{Failures: []sitecontent.ChangeFailure{}}
	for _, change := range changes {
		if reason := validateChange(change); reason != "" {
			result.Failures = append(result.Failures, sitecontent.ChangeFailure{Change: change, Reason: reason})
			continue
		}

		if _, err := s.repo.Upsert(change.Section, change.Key, change.Value, editorID); err != nil {
			s.logger.Content().Error("Content change failed", "address", change.Address().String(), "error", err.Error())
			result.Failures = append(result.Failures, sitecontent.ChangeFailure{Change: change, Reason: err.Error()})
			continue
		}
		result.AppliedCount++
	}

	marker.SetSuccess(len(result.Failures) == 0)
	marker.AddMetadata("applied", result.AppliedCount)
	marker.AddMetadata("failed", len(result.Failures))

	s.logger.Content().Info("Content batch applied",
		"editorId", editorID,
		"applied", result.AppliedCount,
		"failed", len(result.Failures),
		"duration", time.Since(start))

	return result, nil
}

func validateChange(change sitecontent.PendingChange) string {
	if !change.Address().Valid() {
		return "section and key must not be empty"
	}
	if change.Kind != "" && !change.Kind.Valid() {
		return "unknown change kind: " + string(change.Kind)
	}
	return ""
}
