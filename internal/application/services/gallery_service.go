package services

import (
	"fmt"
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/catalog"
	"github.com/dspfilms/studio-go/internal/domain/repositories"
	"github.com/dspfilms/studio-go/internal/infrastructure/security"
)

// GalleryService orchestrates gallery operations.
type GalleryService struct {
	repo repositories.GalleryRepository
}

// NewGalleryService creates a new gallery application service.
func NewGalleryService(repo repositories.GalleryRepository) *GalleryService {
	return &GalleryService{repo: repo}
}

// GetActive returns the active gallery items for the public site.
func (s *GalleryService) GetActive() ([]*catalog.GalleryItem, error) {
	items, err := s.repo.FindActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get gallery items: %w", err)
	}
	return items, nil
}

// GetByCategory returns the active gallery items in one category.
func (s *GalleryService) GetByCategory(category string) ([]*catalog.GalleryItem, error) {
	if category == "" {
		return nil, fmt.Errorf("category cannot be empty")
	}
	items, err := s.repo.FindByCategory(category)
	if err != nil {
		return nil, fmt.Errorf("failed to get gallery items for category %s: %w", category, err)
	}
	return items, nil
}

// GetAll returns every gallery item, including inactive ones, for the admin
// portal.
func (s *GalleryService) GetAll() ([]*catalog.GalleryItem, error) {
	return s.repo.FindAll()
}

// GetByID returns one gallery item, or nil when not found.
func (s *GalleryService) GetByID(id string) (*catalog.GalleryItem, error) {
	if id == "" {
		return nil, fmt.Errorf("gallery item ID cannot be empty")
	}
	return s.repo.FindByID(id)
}

// Create stores a new gallery item, assigning its ID and creation time.
func (s *GalleryService) Create(item *catalog.GalleryItem) error {
	if item == nil {
		return fmt.Errorf("gallery item cannot be nil")
	}
	if item.Title == "" || item.Category == "" || item.Image == "" {
		return fmt.Errorf("gallery item title, category, and image are required")
	}

	item.ID = security.GenerateULID()
	item.IsActive = true
	item.Created = time.Now().UTC()
	return s.repo.Store(item)
}

// Update persists changes to an existing gallery item.
func (s *GalleryService) Update(item *catalog.GalleryItem) error {
	if item == nil || item.ID == "" {
		return fmt.Errorf("gallery item ID cannot be empty")
	}
	existing, err := s.repo.FindByID(item.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("gallery item %s not found", item.ID)
	}
	return s.repo.Update(item)
}

// Deactivate hides a gallery item from the public site without deleting it.
func (s *GalleryService) Deactivate(id string) error {
	if id == "" {
		return fmt.Errorf("gallery item ID cannot be empty")
	}
	return s.repo.Deactivate(id)
}
