package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dspfilms/studio-go/internal/application/services"
	"github.com/dspfilms/studio-go/internal/domain/entities/admin"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "admin_session"

const editorContextKey = "currentEditor"

// RequireEditor resolves the caller to an active editor and aborts with 401
// otherwise. Browser clients carry the opaque session cookie; API clients
// may instead present the signed bearer token issued at login. The resolved
// user is stored on the gin context.
func RequireEditor(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user *admin.User
		var err error

		if token, cookieErr := c.Cookie(SessionCookieName); cookieErr == nil && token != "" {
			user, err = authService.CurrentEditor(token)
		} else if bearer := bearerToken(c); bearer != "" {
			user, err = authService.EditorFromBearerToken(bearer)
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve session"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		c.Set(editorContextKey, user)
		c.Next()
	}
}

// RequirePermission aborts with 403 unless the current editor's role carries
// the named permission. Must run after RequireEditor.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentEditor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if !admin.HasPermission(user.Role, permission) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

// GetCurrentEditor returns the authenticated editor set by RequireEditor.
func GetCurrentEditor(c *gin.Context) (*admin.User, bool) {
	value, exists := c.Get(editorContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*admin.User)
	return user, ok
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
