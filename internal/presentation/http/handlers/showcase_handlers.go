package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dspfilms/studio-go/internal/application/services"
	"github.com/dspfilms/studio-go/internal/domain/entities/catalog"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/performance"
	"github.com/dspfilms/studio-go/internal/presentation/http/middleware"
)

// TestimonialRequest is the admin payload for a testimonial.
type TestimonialRequest struct {
	Name     string `json:"name" binding:"required"`
	Event    string `json:"event"`
	Rating   int    `json:"rating" binding:"required"`
	Text     string `json:"text" binding:"required"`
	Image    string `json:"image"`
	Location string `json:"location"`
	Order    int    `json:"order"`
	IsActive *bool  `json:"isActive"`
}

// BlogPostRequest is the admin payload for a blog post.
type BlogPostRequest struct {
	Title    string `json:"title" binding:"required"`
	Slug     string `json:"slug"`
	Excerpt  string `json:"excerpt"`
	Body     string `json:"body"`
	Image    string `json:"image"`
	IsActive *bool  `json:"isActive"`
}

// VideoRequest is the admin payload for a showcase video.
type VideoRequest struct {
	Title    string `json:"title" binding:"required"`
	URL      string `json:"url" binding:"required"`
	Thumb    string `json:"thumb"`
	Order    int    `json:"order"`
	IsActive *bool  `json:"isActive"`
}

// ShowcaseHandlers contains testimonial, blog, and video HTTP handlers.
type ShowcaseHandlers struct {
	testimonialService *services.TestimonialService
	blogService        *services.BlogService
	videoService       *services.VideoService
	activity           *services.ActivityService
	logger             *logging.ChanneledLogger
	perfTracker        *performance.Tracker
}

// NewShowcaseHandlers creates showcase handlers with injected dependencies.
func NewShowcaseHandlers(testimonialService *services.TestimonialService, blogService *services.BlogService, videoService *services.VideoService, activity *services.ActivityService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ShowcaseHandlers {
	return &ShowcaseHandlers{
		testimonialService: testimonialService,
		blogService:        blogService,
		videoService:       videoService,
		activity:           activity,
		logger:             logger,
		perfTracker:        perfTracker,
	}
}

// GetTestimonials returns active testimonials for the public site.
func (h *ShowcaseHandlers) GetTestimonials(c *gin.Context) {
	testimonials, err := h.testimonialService.GetActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials, "count": len(testimonials)})
}

// CreateTestimonial stores a new testimonial.
func (h *ShowcaseHandlers) CreateTestimonial(c *gin.Context) {
	var req TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	t := &catalog.Testimonial{
		Name:     req.Name,
		Event:    req.Event,
		Rating:   req.Rating,
		Text:     req.Text,
		Image:    req.Image,
		Location: req.Location,
		Order:    req.Order,
	}
	if err := h.testimonialService.Create(t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "create", "testimonial", t.ID)
	}
	c.JSON(http.StatusCreated, gin.H{"testimonial": t})
}

// UpdateTestimonial modifies an existing testimonial.
func (h *ShowcaseHandlers) UpdateTestimonial(c *gin.Context) {
	id := c.Param("id")

	var req TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	existing, err := h.testimonialService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "testimonial not found"})
		return
	}

	existing.Name = req.Name
	existing.Event = req.Event
	existing.Rating = req.Rating
	existing.Text = req.Text
	existing.Image = req.Image
	existing.Location = req.Location
	existing.Order = req.Order
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := h.testimonialService.Update(existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "update", "testimonial", id)
	}
	c.JSON(http.StatusOK, gin.H{"testimonial": existing})
}

// DeleteTestimonial deactivates a testimonial.
func (h *ShowcaseHandlers) DeleteTestimonial(c *gin.Context) {
	id := c.Param("id")
	if err := h.testimonialService.Deactivate(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "delete", "testimonial", id)
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}

// GetBlogPosts returns active blog posts for the public site.
func (h *ShowcaseHandlers) GetBlogPosts(c *gin.Context) {
	posts, err := h.blogService.GetActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// ListBlogPosts returns all blog posts for the admin portal.
func (h *ShowcaseHandlers) ListBlogPosts(c *gin.Context) {
	posts, err := h.blogService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// CreateBlogPost stores a new blog post.
func (h *ShowcaseHandlers) CreateBlogPost(c *gin.Context) {
	var req BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	post := &catalog.BlogPost{
		Title:   req.Title,
		Slug:    req.Slug,
		Excerpt: req.Excerpt,
		Body:    req.Body,
		Image:   req.Image,
	}
	if err := h.blogService.Create(post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "create", "blog", post.ID)
	}
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// UpdateBlogPost modifies an existing blog post.
func (h *ShowcaseHandlers) UpdateBlogPost(c *gin.Context) {
	id := c.Param("id")

	var req BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	existing, err := h.blogService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "blog post not found"})
		return
	}

	existing.Title = req.Title
	existing.Slug = req.Slug
	existing.Excerpt = req.Excerpt
	existing.Body = req.Body
	existing.Image = req.Image
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := h.blogService.Update(existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "update", "blog", id)
	}
	c.JSON(http.StatusOK, gin.H{"post": existing})
}

// DeleteBlogPost removes a blog post.
func (h *ShowcaseHandlers) DeleteBlogPost(c *gin.Context) {
	id := c.Param("id")
	if err := h.blogService.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "delete", "blog", id)
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetVideos returns active videos for the public site.
func (h *ShowcaseHandlers) GetVideos(c *gin.Context) {
	videos, err := h.videoService.GetActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": videos, "count": len(videos)})
}

// CreateVideo stores a new video.
func (h *ShowcaseHandlers) CreateVideo(c *gin.Context) {
	var req VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	video := &catalog.Video{
		Title: req.Title,
		URL:   req.URL,
		Thumb: req.Thumb,
		Order: req.Order,
	}
	if err := h.videoService.Create(video); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "create", "video", video.ID)
	}
	c.JSON(http.StatusCreated, gin.H{"video": video})
}

// UpdateVideo modifies an existing video.
func (h *ShowcaseHandlers) UpdateVideo(c *gin.Context) {
	id := c.Param("id")

	var req VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	existing, err := h.videoService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
		return
	}

	existing.Title = req.Title
	existing.URL = req.URL
	existing.Thumb = req.Thumb
	existing.Order = req.Order
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := h.videoService.Update(existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "update", "video", id)
	}
	c.JSON(http.StatusOK, gin.H{"video": existing})
}

// DeleteVideo removes a video.
func (h *ShowcaseHandlers) DeleteVideo(c *gin.Context) {
	id := c.Param("id")
	if err := h.videoService.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "delete", "video", id)
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
