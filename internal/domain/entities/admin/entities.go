// Package admin defines the administrative domain entities: editor accounts,
// login sessions, site settings, and the activity log.
package admin

import "time"

// Role determines what an authenticated editor may do.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

var permissions = map[Role][]string{
	RoleAdmin: {
		"manage_users", "manage_settings", "manage_marketing",
		"manage_content", "manage_gallery", "manage_blog", "manage_videos",
		"manage_packages", "manage_inquiries", "delete_any",
	},
	RoleEditor: {
		"manage_content", "manage_gallery", "manage_blog", "manage_videos",
		"manage_packages", "manage_inquiries",
	},
}

// HasPermission reports whether a role carries the named permission.
func HasPermission(role Role, permission string) bool {
	for _, p := range permissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// User is an editor account for the admin portal. PasswordHash is a bcrypt
// hash and never leaves the persistence layer.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"isActive"`
	Created      time.Time  `json:"created"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}

// Session is a server-side login session. Only the SHA-256 hash of the
// opaque token is stored.
type Session struct {
	TokenHash string    `json:"-"`
	UserID    string    `json:"userId"`
	Created   time.Time `json:"created"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Settings is the singleton system-settings document: third-party marketing
// pixel wiring for the public site.
type Settings struct {
	FacebookPixelID       string     `json:"facebookPixelId"`
	GoogleAnalyticsID     string     `json:"googleAnalyticsId"`
	GoogleTagManagerID    string     `json:"googleTagManagerId"`
	EnableFacebookPixel   bool       `json:"enableFacebookPixel"`
	EnableGoogleAnalytics bool       `json:"enableGoogleAnalytics"`
	EnableGoogleTagMgr    bool       `json:"enableGoogleTagManager"`
	Changed               *time.Time `json:"changed,omitempty"`
}

// ActivityEntry records one admin action for the audit trail.
type ActivityEntry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resourceId,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// DashboardStats summarizes store contents for the admin dashboard.
type DashboardStats struct {
	Galleries    int `json:"galleries"`
	Packages     int `json:"packages"`
	Testimonials int `json:"testimonials"`
	Inquiries    int `json:"inquiries"`
	NewInquiries int `json:"newInquiries"`
}
