package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims are the values carried by an access token.
type Claims struct {
	UserID    int64
	Username  string
	SessionID string
}

// Manager issues and verifies HS256 access tokens.
type Manager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewManager creates a token Manager. TTL defaults to 24h when zero.
func NewManager(secret, issuer string, accessTTL time.Duration) *Manager {
	if accessTTL == 0 {
		accessTTL = 24 * time.Hour
	}
	return &Manager{secret: []byte(secret), issuer: issuer, accessTTL: accessTTL}
}

// Generate signs a new access token for the given claims.
func (m *Manager) Generate(claims Claims) (string, time.Time, error) {
	if len(m.secret) == 0 {
		return "", time.Time{}, errors.New("jwt secret not configured")
	}
	expiresAt := time.Now().Add(m.accessTTL)
	mapClaims := jwt.MapClaims{
		"sub":        fmt.Sprintf("%d", claims.UserID),
		"username":   claims.Username,
		"session_id": claims.SessionID,
		"exp":        expiresAt.Unix(),
		"iss":        m.issuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify parses an access token and returns its claims.
func (m *Manager) Verify(token string) (Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	var claims Claims
	if sub, ok := mapClaims["sub"].(string); ok {
		if _, err := fmt.Sscanf(sub, "%d", &claims.UserID); err != nil {
			return Claims{}, ErrInvalidToken
		}
	}
	if username, ok := mapClaims["username"].(string); ok {
		claims.Username = username
	}
	if sessionID, ok := mapClaims["session_id"].(string); ok {
		claims.SessionID = sessionID
	}
	if claims.UserID == 0 {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
