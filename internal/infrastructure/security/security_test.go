package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateULIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateULID()
		assert.Len(t, id, 26)
		assert.False(t, seen[id], "duplicate ULID %s", id)
		seen[id] = true
	}
}

func TestGenerateSecureTokenRandomness(t *testing.T) {
	a, err := GenerateSecureToken(32)
	require.NoError(t, err)
	b, err := GenerateSecureToken(32)
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestHashTokenDeterministic(t *testing.T) {
	hash := HashToken("session-token")

	assert.Equal(t, hash, HashToken("session-token"))
	assert.NotEqual(t, hash, HashToken("other-token"))
	assert.Len(t, hash, 64) // hex-encoded SHA-256
}

func TestPasswordRoundtrip(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2hunter2"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "hunter2hunter2"))
}

func TestEditorTokenRoundtrip(t *testing.T) {
	secret := "test-secret"

	signed, err := GenerateEditorToken("editor-1", "admin", secret, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateEditorToken(signed, secret)
	require.NoError(t, err)
	assert.Equal(t, "editor-1", claims.EditorID)
	assert.Equal(t, "admin", claims.Role)
}

func TestEditorTokenRejectsWrongSecret(t *testing.T) {
	signed, err := GenerateEditorToken("editor-1", "admin", "right-secret", time.Hour)
	require.NoError(t, err)

	_, err = ValidateEditorToken(signed, "wrong-secret")
	assert.Error(t, err)
}

func TestEditorTokenRejectsExpired(t *testing.T) {
	signed, err := GenerateEditorToken("editor-1", "admin", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateEditorToken(signed, "secret")
	assert.Error(t, err)
}

func TestEditorTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateEditorToken("not.a.jwt", "secret")
	assert.Error(t, err)
}
