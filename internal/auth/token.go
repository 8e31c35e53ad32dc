// Package auth covers password hashing, bearer tokens, and the request
// principal.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"recruitdesk/internal/storage"
)

var ErrInvalidToken = errors.New("invalid token")

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID string
	Email  string
	Role   storage.Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == storage.RoleSuperUser
}

type claims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Manager issues and verifies HS256 bearer tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for the user, valid for the manager's TTL.
func (m *Manager) Issue(user *storage.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role:  string(user.Role),
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})
	return token.SignedString(m.secret)
}

// Verify parses and validates a token string and returns its principal.
func (m *Manager) Verify(tokenString string) (*Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	c, ok := token.Claims.(*claims)
	if !ok || c.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &Principal{
		UserID: c.Subject,
		Email:  c.Email,
		Role:   storage.Role(c.Role),
	}, nil
}
