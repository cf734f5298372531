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

// ServiceOfferingRequest is the admin payload for a service offering.
type ServiceOfferingRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Features    []string `json:"features"`
	Image       string   `json:"image"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	Order       int      `json:"order"`
	IsActive    *bool    `json:"isActive"`
}

// PackageRequest is the admin payload for a pricing package.
type PackageRequest struct {
	Name     string   `json:"name" binding:"required"`
	Price    string   `json:"price" binding:"required"`
	Duration string   `json:"duration"`
	Category string   `json:"category" binding:"required"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular"`
	Color    string   `json:"color"`
	Order    int      `json:"order"`
	IsActive *bool    `json:"isActive"`
}

// OfferingHandlers contains service-offering and package HTTP handlers.
type OfferingHandlers struct {
	offeringService *services.ServiceOfferingService
	packageService  *services.PackageService
	activity        *services.ActivityService
	logger          *logging.ChanneledLogger
	perfTracker     *performance.Tracker
}

// NewOfferingHandlers creates offering handlers with injected dependencies.
func NewOfferingHandlers(offeringService *services.ServiceOfferingService, packageService *services.PackageService, activity *services.ActivityService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *OfferingHandlers {
	return &OfferingHandlers{
		offeringService: offeringService,
		packageService:  packageService,
		activity:        activity,
		logger:          logger,
		perfTracker:     perfTracker,
	}
}

// GetServices returns active service offerings for the public site.
func (h *OfferingHandlers) GetServices(c *gin.Context) {
	offerings, err := h.offeringService.GetActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": offerings, "count": len(offerings)})
}

// CreateService stores a new service offering.
func (h *OfferingHandlers) CreateService(c *gin.Context) {
	var req ServiceOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	offering := &catalog.ServiceOffering{
		Title:       req.Title,
		Description: req.Description,
		Features:    req.Features,
		Image:       req.Image,
		Icon:        req.Icon,
		Color:       req.Color,
		Order:       req.Order,
	}
	if err := h.offeringService.Create(offering); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "create", "service", offering.ID)
	}
	c.JSON(http.StatusCreated, gin.H{"service": offering})
}

// UpdateService modifies an existing service offering.
func (h *OfferingHandlers) UpdateService(c *gin.Context) {
	id := c.Param("id")

	var req ServiceOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	existing, err := h.offeringService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service offering not found"})
		return
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.Features = req.Features
	existing.Image = req.Image
	existing.Icon = req.Icon
	existing.Color = req.Color
	existing.Order = req.Order
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := h.offeringService.Update(existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "update", "service", id)
	}
	c.JSON(http.StatusOK, gin.H{"service": existing})
}

// DeleteService deactivates a service offering.
func (h *OfferingHandlers) DeleteService(c *gin.Context) {
	id := c.Param("id")
	if err := h.offeringService.Deactivate(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "delete", "service", id)
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}

// GetPackages returns active packages for the public site.
func (h *OfferingHandlers) GetPackages(c *gin.Context) {
	packages, err := h.packageService.GetActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": packages, "count": len(packages)})
}

// GetPackagesByCategory returns active packages in one category.
func (h *OfferingHandlers) GetPackagesByCategory(c *gin.Context) {
	packages, err := h.packageService.GetByCategory(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": packages, "count": len(packages)})
}

// CreatePackage stores a new pricing package.
func (h *OfferingHandlers) CreatePackage(c *gin.Context) {
	var req PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	pkg := &catalog.Package{
		Name:     req.Name,
		Price:    req.Price,
		Duration: req.Duration,
		Category: req.Category,
		Features: req.Features,
		Popular:  req.Popular,
		Color:    req.Color,
		Order:    req.Order,
	}
	if err := h.packageService.Create(pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "create", "package", pkg.ID)
	}
	c.JSON(http.StatusCreated, gin.H{"package": pkg})
}

// UpdatePackage modifies an existing package.
func (h *OfferingHandlers) UpdatePackage(c *gin.Context) {
	id := c.Param("id")

	var req PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	existing, err := h.packageService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
		return
	}

	existing.Name = req.Name
	existing.Price = req.Price
	existing.Duration = req.Duration
	existing.Category = req.Category
	existing.Features = req.Features
	existing.Popular = req.Popular
	existing.Color = req.Color
	existing.Order = req.Order
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := h.packageService.Update(existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "update", "package", id)
	}
	c.JSON(http.StatusOK, gin.H{"package": existing})
}

// DeletePackage deactivates a package.
func (h *OfferingHandlers) DeletePackage(c *gin.Context) {
	id := c.Param("id")
	if err := h.packageService.Deactivate(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "delete", "package", id)
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}
