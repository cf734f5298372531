// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dspfilms/studio-go/internal/application/container"
	"github.com/dspfilms/studio-go/internal/presentation/http/handlers"
	"github.com/dspfilms/studio-go/internal/presentation/http/middleware"
	"github.com/dspfilms/studio-go/pkg/config"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(c *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Processed uploads are served straight from disk.
	r.Static(config.UploadBaseURL, config.UploadDir)

	contentHandlers := handlers.NewContentHandlers(c.SiteContentService, c.Logger, c.PerfTracker)
	authHandlers := handlers.NewAuthHandlers(c.AuthService, c.ActivityService, c.Logger, c.PerfTracker)
	galleryHandlers := handlers.NewGalleryHandlers(c.GalleryService, c.ActivityService, c.Logger, c.PerfTracker)
	offeringHandlers := handlers.NewOfferingHandlers(c.OfferingService, c.PackageService, c.ActivityService, c.Logger, c.PerfTracker)
	showcaseHandlers := handlers.NewShowcaseHandlers(c.TestimonialService, c.BlogService, c.VideoService, c.ActivityService, c.Logger, c.PerfTracker)
	inquiryHandlers := handlers.NewInquiryHandlers(c.InquiryService, c.ActivityService, c.Logger, c.PerfTracker)
	settingsHandlers := handlers.NewSettingsHandlers(c.SettingsService, c.ActivityService, c.Logger)
	mediaHandlers := handlers.NewMediaHandlers(c.ImageProcessor, c.ActivityService, c.Logger, c.PerfTracker)
	dashboardHandlers := handlers.NewDashboardHandlers(c.DashboardService, c.ActivityService, c.Logger)

	api := r.Group("/api/v1")
	{
		api.GET("/content", contentHandlers.GetContent)
		api.GET("/content/:section", contentHandlers.GetContentSection)
		api.GET("/galleries", galleryHandlers.GetGalleries)
		api.GET("/galleries/:category", galleryHandlers.GetGalleriesByCategory)
		api.GET("/services", offeringHandlers.GetServices)
		api.GET("/packages", offeringHandlers.GetPackages)
		api.GET("/packages/:category", offeringHandlers.GetPackagesByCategory)
		api.GET("/testimonials", showcaseHandlers.GetTestimonials)
		api.GET("/videos", showcaseHandlers.GetVideos)
		api.GET("/blog", showcaseHandlers.GetBlogPosts)
		api.GET("/settings/pixels", settingsHandlers.GetPixels)
		api.POST("/inquiries", inquiryHandlers.SubmitInquiry)

		api.POST("/admin/auth/login", authHandlers.Login)
	}

	adminAPI := r.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireEditor(c.AuthService))
	{
		adminAPI.POST("/auth/logout", authHandlers.Logout)
		adminAPI.GET("/auth/me", authHandlers.Me)

		content := adminAPI.Group("", middleware.RequirePermission("manage_content"))
		{
			content.GET("/content/overrides", contentHandlers.GetOverrides)
			content.POST("/content/batch-update", contentHandlers.BatchUpdate)
			content.POST("/media/upload", mediaHandlers.Upload)
		}

		gallery := adminAPI.Group("", middleware.RequirePermission("manage_gallery"))
		{
			gallery.GET("/galleries", galleryHandlers.ListGalleries)
			gallery.POST("/galleries", galleryHandlers.CreateGallery)
			gallery.PUT("/galleries/:id", galleryHandlers.UpdateGallery)
			gallery.DELETE("/galleries/:id", galleryHandlers.DeleteGallery)

			gallery.POST("/services", offeringHandlers.CreateService)
			gallery.PUT("/services/:id", offeringHandlers.UpdateService)
			gallery.DELETE("/services/:id", offeringHandlers.DeleteService)
		}

		packages := adminAPI.Group("", middleware.RequirePermission("manage_packages"))
		{
			packages.POST("/packages", offeringHandlers.CreatePackage)
			packages.PUT("/packages/:id", offeringHandlers.UpdatePackage)
			packages.DELETE("/packages/:id", offeringHandlers.DeletePackage)

			packages.POST("/testimonials", showcaseHandlers.CreateTestimonial)
			packages.PUT("/testimonials/:id", showcaseHandlers.UpdateTestimonial)
			packages.DELETE("/testimonials/:id", showcaseHandlers.DeleteTestimonial)
		}

		blog := adminAPI.Group("", middleware.RequirePermission("manage_blog"))
		{
			blog.GET("/blog", showcaseHandlers.ListBlogPosts)
			blog.POST("/blog", showcaseHandlers.CreateBlogPost)
			blog.PUT("/blog/:id", showcaseHandlers.UpdateBlogPost)
			blog.DELETE("/blog/:id", showcaseHandlers.DeleteBlogPost)
		}

		videos := adminAPI.Group("", middleware.RequirePermission("manage_videos"))
		{
			videos.POST("/videos", showcaseHandlers.CreateVideo)
			videos.PUT("/videos/:id", showcaseHandlers.UpdateVideo)
			videos.DELETE("/videos/:id", showcaseHandlers.DeleteVideo)
		}

		inquiries := adminAPI.Group("", middleware.RequirePermission("manage_inquiries"))
		{
			inquiries.GET("/inquiries", inquiryHandlers.ListInquiries)
			inquiries.PUT("/inquiries/:id/status", inquiryHandlers.UpdateInquiryStatus)
			inquiries.DELETE("/inquiries/:id", inquiryHandlers.DeleteInquiry)
		}

		adminAPI.GET("/dashboard/stats", dashboardHandlers.GetStats)
		adminAPI.GET("/activity-log", dashboardHandlers.GetActivityLog)

		settings := adminAPI.Group("", middleware.RequirePermission("manage_settings"))
		{
			settings.GET("/settings", settingsHandlers.GetSettings)
			settings.PUT("/settings", settingsHandlers.UpdateSettings)
		}

		users := adminAPI.Group("", middleware.RequirePermission("manage_users"))
		{
			users.GET("/users", authHandlers.ListUsers)
			users.POST("/users", authHandlers.CreateUser)
		}
	}

	return r
}
