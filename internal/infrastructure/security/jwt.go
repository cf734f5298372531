package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// EditorClaims carries the authenticated editor's identity inside a signed
// token, used for API clients that cannot hold a session cookie.
type EditorClaims struct {
	EditorID string `json:"editorId"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateEditorToken creates a signed JWT for an authenticated editor.
func GenerateEditorToken(editorID, role, jwtSecret string, ttl time.Duration) (string, error) {
	claims := EditorClaims{
		EditorID: editorID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign editor token: %w", err)
	}
	return signed, nil
}

// ValidateEditorToken validates a JWT and returns the editor claims.
func ValidateEditorToken(tokenString, jwtSecret string) (*EditorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &EditorClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*EditorClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
