package services

import (
	"fmt"
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/catalog"
	"github.com/dspfilms/studio-go/internal/domain/repositories"
	"github.com/dspfilms/studio-go/internal/infrastructure/security"
)

// TestimonialService orchestrates client testimonials.
type TestimonialService struct {
	repo repositories.TestimonialRepository
}

func NewTestimonialService(repo repositories.TestimonialRepository) *TestimonialService {
	return &TestimonialService{repo: repo}
}

func (s *TestimonialService) GetActive() ([]*catalog.Testimonial, error) {
	testimonials, err := s.repo.FindActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get testimonials: %w", err)
	}
	return testimonials, nil
}

func (s *TestimonialService) GetByID(id string) (*catalog.Testimonial, error) {
	if id == "" {
		return nil, fmt.Errorf("testimonial ID cannot be empty")
	}
	return s.repo.FindByID(id)
}

func (s *TestimonialService) Create(t *catalog.Testimonial) error {
	if t == nil {
		return fmt.Errorf("testimonial cannot be nil")
	}
	if t.Name == "" || t.Text == "" {
		return fmt.Errorf("testimonial name and text are required")
	}
	if t.Rating < 1 || t.Rating > 5 {
		return fmt.Errorf("testimonial rating must be between 1 and 5")
	}

	t.ID = security.GenerateULID()
	t.IsActive = true
	t.Created = time.Now().UTC()
	return s.repo.Store(t)
}

func (s *TestimonialService) Update(t *catalog.Testimonial) error {
	if t == nil || t.ID == "" {
		return fmt.Errorf("testimonial ID cannot be empty")
	}
	if t.Rating < 1 || t.Rating > 5 {
		return fmt.Errorf("testimonial rating must be between 1 and 5")
	}
	existing, err := s.repo.FindByID(t.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("testimonial %s not found", t.ID)
	}
	return s.repo.Update(t)
}

func (s *TestimonialService) Deactivate(id string) error {
	if id == "" {
		return fmt.Errorf("testimonial ID cannot be empty")
	}
	return s.repo.Deactivate(id)
}
