package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		role       Role
		permission string
		want       bool
	}{
		{"admin manages users", RoleAdmin, "manage_users", true},
		{"admin manages settings", RoleAdmin, "manage_settings", true},
		{"admin manages content", RoleAdmin, "manage_content", true},
		{"editor manages content", RoleEditor, "manage_content", true},
		{"editor manages gallery", RoleEditor, "manage_gallery", true},
		{"editor cannot manage users", RoleEditor, "manage_users", false},
		{"editor cannot manage settings", RoleEditor, "manage_settings", false},
		{"unknown role has nothing", Role("viewer"), "manage_content", false},
		{"unknown permission denied", RoleAdmin, "launch_rockets", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.permission))
		})
	}
}

func TestSessionExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	session := Session{ExpiresAt: now}

	assert.False(t, session.Expired(now.Add(-time.Minute)))
	assert.False(t, session.Expired(now))
	assert.True(t, session.Expired(now.Add(time.Second)))
}
