package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"))

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.False(t, claims.IsAdmin)

	// Expiry lands 7 days out
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(TTL), claims.ExpiresAt.Time, time.Minute)
}

func TestParseWrongSecret(t *testing.T) {
	token, err := NewIssuer([]byte("user-secret")).Issue("user-123")
	require.NoError(t, err)

	// Admin sessions use a different secret; their tokens must not
	// validate as user sessions and vice versa
	_, err = NewIssuer([]byte("admin-secret")).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestParseExpired(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"))
	issuer.ttl = -time.Hour

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestParseGarbage(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"))

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := issuer.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	}
}

func TestParseRejectsUnsignedToken(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-123"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewIssuer([]byte("test-secret")).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}
