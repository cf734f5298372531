package services

import (
	"fmt"
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/catalog"
	"github.com/dspfilms/studio-go/internal/domain/repositories"
	"github.com/dspfilms/studio-go/internal/infrastructure/security"
)

// ServiceOfferingService orchestrates the studio's service offerings.
type ServiceOfferingService struct {
	repo repositories.ServiceOfferingRepository
}

func NewServiceOfferingService(repo repositories.ServiceOfferingRepository) *ServiceOfferingService {
	return &ServiceOfferingService{repo: repo}
}

func (s *ServiceOfferingService) GetActive() ([]*catalog.ServiceOffering, error) {
	offerings, err := s.repo.FindActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get service offerings: %w", err)
	}
	return offerings, nil
}

func (s *ServiceOfferingService) GetByID(id string) (*catalog.ServiceOffering, error) {
	if id == "" {
		return nil, fmt.Errorf("service offering ID cannot be empty")
	}
	return s.repo.FindByID(id)
}

func (s *ServiceOfferingService) Create(offering *catalog.ServiceOffering) error {
	if offering == nil {
		return fmt.Errorf("service offering cannot be nil")
	}
	if offering.Title == "" || offering.Description == "" {
		return fmt.Errorf("service offering title and description are required")
	}

	offering.ID = security.GenerateULID()
	offering.IsActive = true
	offering.Created = time.Now().UTC()
	return s.repo.Store(offering)
}

func (s *ServiceOfferingService) Update(offering *catalog.ServiceOffering) error {
	if offering == nil || offering.ID == "" {
		return fmt.Errorf("service offering ID cannot be empty")
	}
	existing, err := s.repo.FindByID(offering.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("service offering %s not found", offering.ID)
	}
	return s.repo.Update(offering)
}

func (s *ServiceOfferingService) Deactivate(id string) error {
	if id == "" {
		return fmt.Errorf("service offering ID cannot be empty")
	}
	return s.repo.Deactivate(id)
}

// PackageService orchestrates pricing packages.
type PackageService struct {
	repo repositories.PackageRepository
}

func NewPackageService(repo repositories.PackageRepository) *PackageService {
	return &PackageService{repo: repo}
}

func (s *PackageService) GetActive() ([]*catalog.Package, error) {
	packages, err := s.repo.FindActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get packages: %w", err)
	}
	return packages, nil
}

func (s *PackageService) GetByCategory(category string) ([]*catalog.Package, error) {
	if category == "" {
		return nil, fmt.Errorf("category cannot be empty")
	}
	packages, err := s.repo.FindByCategory(category)
	if err != nil {
		return nil, fmt.Errorf("failed to get packages for category %s: %w", category, err)
	}
	return packages, nil
}

func (s *PackageService) GetByID(id string) (*catalog.Package, error) {
	if id == "" {
		return nil, fmt.Errorf("package ID cannot be empty")
	}
	return s.repo.FindByID(id)
}

func (s *PackageService) Create(pkg *catalog.Package) error {
	if pkg == nil {
		return fmt.Errorf("package cannot be nil")
	}
	if pkg.Name == "" || pkg.Price == "" || pkg.Category == "" {
		return fmt.Errorf("package name, price, and category are required")
	}

	pkg.ID = security.GenerateULID()
	pkg.IsActive = true
	pkg.Created = time.Now().UTC()
	return s.repo.Store(pkg)
}

func (s *PackageService) Update(pkg *catalog.Package) error {
	if pkg == nil || pkg.ID == "" {
		return fmt.Errorf("package ID cannot be empty")
	}
	existing, err := s.repo.FindByID(pkg.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("package %s not found", pkg.ID)
	}
	return s.repo.Update(pkg)
}

func (s *PackageService) Deactivate(id string) error {
	if id == "" {
		return fmt.Errorf("package ID cannot be empty")
	}
	return s.repo.Deactivate(id)
}
