package services

import (
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/admin"
	"github.com/dspfilms/studio-go/internal/domain/repositories"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
	"github.com/dspfilms/studio-go/internal/infrastructure/security"
)

// ActivityService records admin actions for the audit trail.
type ActivityService struct {
	repo   repositories.ActivityRepository
	logger *logging.ChanneledLogger
}

func NewActivityService(repo repositories.ActivityRepository, logger *logging.ChanneledLogger) *ActivityService {
	return &ActivityService{
		repo:   repo,
		logger: logger,
	}
}

// Record stores one audit entry. Audit failures are logged, never propagated;
// the underlying action already succeeded.
func (s *ActivityService) Record(userID, action, resource, resourceID string) {
	entry := &admin.ActivityEntry{
		ID:         security.GenerateULID(),
		UserID:     userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.repo.Record(entry); err != nil {
		s.logger.System().Error("Failed to record activity", "action", action, "error", err.Error())
	}
}

// Recent returns the latest audit entries.
func (s *ActivityService) Recent(limit int) ([]*admin.ActivityEntry, error) {
	return s.repo.FindRecent(limit)
}
