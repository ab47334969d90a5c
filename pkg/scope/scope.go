package scope

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Payload is the identity carried by a session token.
type Payload struct {
	UserID string
}

// Manager issues and verifies session tokens.
type Manager interface {
	IssueToken(userID string) (string, error)
	Verify(token string) (Payload, error)
}

var (
	ErrInvalidToken = errors.New("invalid session token")
)

type jwtManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager returns a Manager signing HS256 tokens with the given secret.
func NewJWTManager(secret string, ttl time.Duration) Manager {
	return &jwtManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *jwtManager) IssueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(m.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

func (m *jwtManager) Verify(token string) (Payload, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Payload{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Payload{}, ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Payload{}, ErrInvalidToken
	}

	return Payload{UserID: userID}, nil
}
