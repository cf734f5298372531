// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/dspfilms/studio-go/internal/application/services"
	"github.com/dspfilms/studio-go/internal/domain/repositories"
	"github.com/dspfilms/studio-go/internal/infrastructure/email"
	"github.com/dspfilms/studio-go/internal/infrastructure/media"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/performance"
	"github.com/dspfilms/studio-go/internal/infrastructure/persistence/adminstore"
	"github.com/dspfilms/studio-go/internal/infrastructure/persistence/content"
	"github.com/dspfilms/studio-go/internal/infrastructure/persistence/database"
	"github.com/dspfilms/studio-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies.
type Container struct {
	// Application services
	SiteContentService *services.SiteContentService
	GalleryService     *services.GalleryService
	OfferingService    *services.ServiceOfferingService
	PackageService     *services.PackageService
	TestimonialService *services.TestimonialService
	BlogService        *services.BlogService
	VideoService       *services.VideoService
	InquiryService     *services.InquiryService
	AuthService        *services.AuthService
	SettingsService    *services.SettingsService
	DashboardService   *services.DashboardService
	ActivityService    *services.ActivityService

	// Infrastructure
	DB             *database.DB
	Logger         *logging.ChanneledLogger
	PerfTracker    *performance.Tracker
	ImageProcessor *media.ImageProcessor
	EmailService   email.Service
}

// NewContainer creates and wires all singleton services. emailSvc may be nil
// when no email provider is configured.
func NewContainer(db *database.DB, logger *logging.ChanneledLogger, emailSvc email.Service) *Container {
	perfTracker := performance.NewTracker(nil)

	var (
		siteContentRepo repositories.SiteContentRepository = content.NewSiteContentRepository(db.DB, logger)
		galleryRepo     repositories.GalleryRepository     = content.NewGalleryRepository(db.DB, logger)
		offeringRepo                                       = content.NewServiceOfferingRepository(db.DB, logger)
		packageRepo                                        = content.NewPackageRepository(db.DB, logger)
		testimonialRepo                                    = content.NewTestimonialRepository(db.DB, logger)
		blogRepo                                           = content.NewBlogRepository(db.DB, logger)
		videoRepo                                          = content.NewVideoRepository(db.DB, logger)
		inquiryRepo                                        = content.NewInquiryRepository(db.DB, logger)
		userRepo                                           = adminstore.NewUserRepository(db.DB, logger)
		sessionRepo                                        = adminstore.NewSessionRepository(db.DB, logger)
		settingsRepo                                       = adminstore.NewSettingsRepository(db.DB, logger)
		activityRepo                                       = adminstore.NewActivityRepository(db.DB, logger)
	)

	return &Container{
		SiteContentService: services.NewSiteContentService(siteContentRepo, logger, perfTracker),
		GalleryService:     services.NewGalleryService(galleryRepo),
		OfferingService:    services.NewServiceOfferingService(offeringRepo),
		PackageService:     services.NewPackageService(packageRepo),
		TestimonialService: services.NewTestimonialService(testimonialRepo),
		BlogService:        services.NewBlogService(blogRepo),
		VideoService:       services.NewVideoService(videoRepo),
		InquiryService:     services.NewInquiryService(inquiryRepo, emailSvc, logger),
		AuthService:        services.NewAuthService(userRepo, sessionRepo, logger),
		SettingsService:    services.NewSettingsService(settingsRepo),
		DashboardService:   services.NewDashboardService(galleryRepo, packageRepo, testimonialRepo, inquiryRepo),
		ActivityService:    services.NewActivityService(activityRepo, logger),

		DB:             db,
		Logger:         logger,
		PerfTracker:    perfTracker,
		ImageProcessor: media.NewImageProcessor(config.UploadDir, config.UploadBaseURL, config.WebPQuality),
		EmailService:   emailSvc,
	}
}
