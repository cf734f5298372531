package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/catalog"
	"github.com/dspfilms/studio-go/internal/domain/repositories"
	"github.com/dspfilms/studio-go/internal/infrastructure/email"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
	"github.com/dspfilms/studio-go/internal/infrastructure/security"
	"github.com/dspfilms/studio-go/pkg/config"
)

// InquiryService handles contact-form submissions and their admin lifecycle.
type InquiryService struct {
	repo     repositories.InquiryRepository
	emailSvc email.Service
	logger   *logging.ChanneledLogger
}

// NewInquiryService creates a new inquiry application service. emailSvc may
// be nil when no email provider is configured; submissions still persist.
func NewInquiryService(repo repositories.InquiryRepository, emailSvc email.Service, logger *logging.ChanneledLogger) *InquiryService {
	return &InquiryService{
		repo:     repo,
		emailSvc: emailSvc,
		logger:   logger,
	}
}

// Submit stores a visitor inquiry and sends the studio a notification email.
// A notification failure is logged, not surfaced; the lead is already safe.
func (s *InquiryService) Submit(inquiry *catalog.Inquiry) error {
	if inquiry == nil {
		return fmt.Errorf("inquiry cannot be nil")
	}
	if inquiry.Name == "" || inquiry.EventType == "" {
		return fmt.Errorf("inquiry name and event type are required")
	}
	if !strings.Contains(inquiry.Email, "@") {
		return fmt.Errorf("inquiry email is invalid")
	}

	inquiry.ID = security.GenerateULID()
	inquiry.Status = catalog.InquiryNew
	inquiry.Created = time.Now().UTC()

	if err := s.repo.Store(inquiry); err != nil {
		return err
	}

	if s.emailSvc != nil && config.InquiryNotifyEmail != "" {
		if err := s.emailSvc.SendInquiryNotification(config.InquiryNotifyEmail, inquiry); err != nil {
			s.logger.Email().Error("Failed to send inquiry notification", "inquiryId", inquiry.ID, "error", err.Error())
		} else {
			s.logger.Email().Info("Inquiry notification sent", "inquiryId", inquiry.ID)
		}
	}

	return nil
}

// GetAll returns every inquiry, newest first.
func (s *InquiryService) GetAll() ([]*catalog.Inquiry, error) {
	return s.repo.FindAll()
}

// GetByID returns one inquiry, or nil when not found.
func (s *InquiryService) GetByID(id string) (*catalog.Inquiry, error) {
	if id == "" {
		return nil, fmt.Errorf("inquiry ID cannot be empty")
	}
	return s.repo.FindByID(id)
}

// UpdateStatus moves an inquiry through its lifecycle.
func (s *InquiryService) UpdateStatus(id string, status catalog.InquiryStatus) error {
	switch status {
	case catalog.InquiryNew, catalog.InquiryResponded, catalog.InquiryBooked, catalog.InquiryClosed:
	default:
		return fmt.Errorf("unknown inquiry status: %s", status)
	}
	return s.repo.UpdateStatus(id, status)
}

// Delete removes an inquiry permanently.
func (s *InquiryService) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("inquiry ID cannot be empty")
	}
	return s.repo.Delete(id)
}
