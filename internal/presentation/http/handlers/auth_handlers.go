package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dspfilms/studio-go/internal/application/services"
	"github.com/dspfilms/studio-go/internal/domain/entities/admin"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/performance"
	"github.com/dspfilms/studio-go/internal/presentation/http/middleware"
	"github.com/dspfilms/studio-go/pkg/config"
)

// LoginRequest is the login payload.
type LoginRequest struct {
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// CreateUserRequest is the admin-only payload for registering an editor.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// AuthHandlers contains authentication and user management handlers.
type AuthHandlers struct {
	authService *services.AuthService
	activity    *services.ActivityService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewAuthHandlers creates auth handlers with injected dependencies.
func NewAuthHandlers(authService *services.AuthService, activity *services.ActivityService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		activity:    activity,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// Login verifies credentials and sets the session cookie.
func (h *AuthHandlers) Login(c *gin.Context) {
	start := time.Now()
	h.logger.Auth().Debug("Received login request", "method", c.Request.Method, "path", c.Request.URL.Path)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	marker := h.perfTracker.StartOperation("login_request")
	defer marker.Complete()

	token, user, err := h.authService.Login(req.Email, req.Password, req.RememberMe)
	if err == services.ErrInvalidCredentials {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	ttl := config.SessionTTL
	if req.RememberMe {
		ttl = config.SessionTTLExtended
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, int(ttl.Seconds()), "/", "", false, true)

	response := gin.H{"user": user}
	if bearer, err := h.authService.IssueBearerToken(user, req.RememberMe); err == nil && bearer != "" {
		response["token"] = bearer
	}

	marker.SetSuccess(true)
	h.logger.Auth().Info("Login request completed", "userId", user.ID, "duration", time.Since(start))
	c.JSON(http.StatusOK, response)
}

// Logout deletes the session and clears the cookie.
func (h *AuthHandlers) Logout(c *gin.Context) {
	token, _ := c.Cookie(middleware.SessionCookieName)
	if err := h.authService.Logout(token); err != nil {
		h.logger.Auth().Error("Logout failed", "error", err.Error())
	}
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// Me returns the authenticated editor.
func (h *AuthHandlers) Me(c *gin.Context) {
	user, ok := middleware.GetCurrentEditor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// CreateUser registers a new editor account (admin only).
func (h *AuthHandlers) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	role := admin.Role(req.Role)
	if role != admin.RoleAdmin && role != admin.RoleEditor {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be admin or editor"})
		return
	}

	user, err := h.authService.CreateUser(req.Email, req.Name, req.Password, role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if actor, ok := middleware.GetCurrentEditor(c); ok {
		h.activity.Record(actor.ID, "create", "user", user.ID)
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// ListUsers returns all editor accounts (admin only).
func (h *AuthHandlers) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}
