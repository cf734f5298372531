package services

import (
	"fmt"

	"github.com/dspfilms/studio-go/internal/domain/entities/admin"
	"github.com/dspfilms/studio-go/internal/domain/entities/catalog"
	"github.com/dspfilms/studio-go/internal/domain/repositories"
)

// DashboardService aggregates store counts for the admin dashboard.
type DashboardService struct {
	galleries    repositories.GalleryRepository
	packages     repositories.PackageRepository
	testimonials repositories.TestimonialRepository
	inquiries    repositories.InquiryRepository
}

func NewDashboardService(
	galleries repositories.GalleryRepository,
	packages repositories.PackageRepository,
	testimonials repositories.TestimonialRepository,
	inquiries repositories.InquiryRepository,
) *DashboardService {
	return &DashboardService{
		galleries:    galleries,
		packages:     packages,
		testimonials: testimonials,
		inquiries:    inquiries,
	}
}

// GetStats collects the dashboard counters.
func (s *DashboardService) GetStats() (*admin.DashboardStats, error) {
	stats := &admin.DashboardStats{}

	var err error
	if stats.Galleries, err = s.galleries.Count(); err != nil {
		return nil, fmt.Errorf("failed to count galleries: %w", err)
	}
	if stats.Packages, err = s.packages.Count(); err != nil {
		return nil, fmt.Errorf("failed to count packages: %w", err)
	}
	if stats.Testimonials, err = s.testimonials.Count(); err != nil {
		return nil, fmt.Errorf("failed to count testimonials: %w", err)
	}
	if stats.Inquiries, err = s.inquiries.Count(); err != nil {
		return nil, fmt.Errorf("failed to count inquiries: %w", err)
	}
	if stats.NewInquiries, err = s.inquiries.CountByStatus(catalog.InquiryNew); err != nil {
		return nil, fmt.Errorf("failed to count new inquiries: %w", err)
	}
	return stats, nil
}
