package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dspfilms/studio-go/internal/application/services"
	"github.com/dspfilms/studio-go/internal/domain/entities/catalog"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/performance"
	"github.com/dspfilms/studio-go/internal/presentation/http/middleware"
)

// InquiryRequest is the public contact-form payload.
type InquiryRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone"`
	EventType string `json:"eventType" binding:"required"`
	EventDate string `json:"eventDate"`
	Message   string `json:"message"`
}

// InquiryStatusRequest is the admin payload for moving an inquiry through
// its lifecycle.
type InquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// InquiryHandlers contains inquiry HTTP handlers.
type InquiryHandlers struct {
	inquiryService *services.InquiryService
	activity       *services.ActivityService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewInquiryHandlers creates inquiry handlers with injected dependencies.
func NewInquiryHandlers(inquiryService *services.InquiryService, activity *services.ActivityService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *InquiryHandlers {
	return &InquiryHandlers{
		inquiryService: inquiryService,
		activity:       activity,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// SubmitInquiry accepts a public contact-form submission.
func (h *InquiryHandlers) SubmitInquiry(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received inquiry submission", "method", c.Request.Method, "path", c.Request.URL.Path)

	var req InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	marker := h.perfTracker.StartOperation("submit_inquiry_request")
	defer marker.Complete()

	inquiry := &catalog.Inquiry{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		EventType: req.EventType,
		EventDate: req.EventDate,
		Message:   req.Message,
	}
	if err := h.inquiryService.Submit(inquiry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marker.SetSuccess(true)
	h.logger.Content().Info("Inquiry submitted", "inquiryId", inquiry.ID, "duration", time.Since(start))
	c.JSON(http.StatusCreated, gin.H{"inquiry": inquiry})
}

// ListInquiries returns all inquiries, newest first.
func (h *InquiryHandlers) ListInquiries(c *gin.Context) {
	inquiries, err := h.inquiryService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inquiries": inquiries, "count": len(inquiries)})
}

// UpdateInquiryStatus moves an inquiry through its lifecycle.
func (h *InquiryHandlers) UpdateInquiryStatus(c *gin.Context) {
	id := c.Param("id")

	var req InquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := h.inquiryService.UpdateStatus(id, catalog.InquiryStatus(req.Status)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "update_status", "inquiry", id)
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

// DeleteInquiry removes an inquiry.
func (h *InquiryHandlers) DeleteInquiry(c *gin.Context) {
	id := c.Param("id")
	if err := h.inquiryService.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if editor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(editor.ID, "delete", "inquiry", id)
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
