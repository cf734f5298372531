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

// GalleryItemRequest is the admin payload for creating or updating a gallery
// item.
type GalleryItemRequest struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Image       string `json:"image" binding:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"isActive"`
}

// GalleryHandlers contains gallery HTTP handlers.
type GalleryHandlers struct {
	galleryService *services.GalleryService
	activity       *services.ActivityService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewGalleryHandlers creates gallery handlers with injected dependencies.
func NewGalleryHandlers(galleryService *services.GalleryService, activity *services.ActivityService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *GalleryHandlers {
	return &GalleryHandlers{
		galleryService: galleryService,
		activity:       activity,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// GetGalleries returns active gallery items for the public site.
func (h *GalleryHandlers) GetGalleries(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_galleries_request")
	defer marker.Complete()

	items, err := h.galleryService.GetActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"galleries": items, "count": len(items)})
}

// GetGalleriesByCategory returns active gallery items in one category.
func (h *GalleryHandlers) GetGalleriesByCategory(c *gin.Context) {
	items, err := h.galleryService.GetByCategory(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"galleries": items, "count": len(items)})
}

// ListGalleries returns all gallery items for the admin portal.
func (h *GalleryHandlers) ListGalleries(c *gin.Context) {
	items, err := h.galleryService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"galleries": items, "count": len(items)})
}

// CreateGallery stores a new gallery item.
func (h *GalleryHandlers) CreateGallery(c *gin.Context) {
	var req GalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	item := &catalog.GalleryItem{
		Title:       req.Title,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
		Order:       req.Order,
	}
	if err := h.galleryService.Create(item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "create", "gallery", item.ID)
	}
	c.JSON(http.StatusCreated, gin.H{"gallery": item})
}

// UpdateGallery modifies an existing gallery item.
func (h *GalleryHandlers) UpdateGallery(c *gin.Context) {
	id := c.Param("id")

	var req GalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	existing, err := h.galleryService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "gallery item not found"})
		return
	}

	existing.Title = req.Title
	existing.Category = req.Category
	existing.Image = req.Image
	existing.Description = req.Description
	existing.Order = req.Order
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := h.galleryService.Update(existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "update", "gallery", id)
	}
	c.JSON(http.StatusOK, gin.H{"gallery": existing})
}

// DeleteGallery deactivates a gallery item.
func (h *GalleryHandlers) DeleteGallery(c *gin.Context) {
	id := c.Param("id")
	if err := h.galleryService.Deactivate(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "delete", "gallery", id)
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}
