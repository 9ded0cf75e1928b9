package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL is the session lifetime. There is no server-side session table,
// so a token cannot be revoked before it expires naturally.
const TTL = 7 * 24 * time.Hour

// ErrInvalidSession covers bad signatures, expired tokens and malformed
// claims alike.
var ErrInvalidSession = errors.New("invalid session token")

// Claims are the session token claims. IsAdmin is always false for
// tokens issued by this service; the admin surface signs its own tokens
// with a different secret.
type Claims struct {
	UserID  string `json:"userId"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Issuer signs and parses user session tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an issuer with the user-session signing secret.
func NewIssuer(secret []byte) *Issuer {
	return &Issuer{secret: secret, ttl: TTL}
}

// Issue signs a non-admin session token for the given user.
func (i *Issuer) Issue(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:  userID,
		IsAdmin: false,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// Parse validates a session token and returns its claims.
func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}

	if claims.UserID == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
