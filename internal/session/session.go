// Package session identifies visitors across requests with a signed
// session token in a cookie. The token carries nothing but a random
// session id; it exists so one visitor's cart cannot be read by another.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// CookieName is the session cookie.
	CookieName = "cape_session"
	// ContextKey is where the middleware stores the session id.
	ContextKey = "session_id"

	cookieMaxAge = 30 * 24 * 60 * 60 // 30 days
)

// Manager mints and verifies session tokens.
type Manager struct {
	secret []byte
}

// NewManager creates a token manager with the given HMAC secret.
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Mint issues a token for a fresh session id.
func (m *Manager) Mint() (sessionID, token string, err error) {
	sessionID = uuid.NewString()
	claims := jwt.MapClaims{
		"sid": sessionID,
		"iat": time.Now().Unix(),
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return sessionID, token, nil
}

// Verify extracts the session id from a token.
func (m *Manager) Verify(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("invalid session token")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid session claims")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", fmt.Errorf("session id missing from token")
	}
	return sid, nil
}

// Middleware resolves the visitor's session, minting a new one when the
// cookie is absent or does not verify. The session id is stored on the
// gin context under ContextKey.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(CookieName); err == nil {
			if sid, err := m.Verify(cookie); err == nil {
				c.Set(ContextKey, sid)
				c.Next()
				return
			}
		}

		sid, token, err := m.Mint()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to establish session"})
			c.Abort()
			return
		}
		c.SetCookie(CookieName, token, cookieMaxAge, "/", "", false, true)
		c.Set(ContextKey, sid)
		c.Next()
	}
}

// FromContext returns the session id placed by Middleware.
func FromContext(c *gin.Context) string {
	return c.GetString(ContextKey)
}
