package googleauth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campuscode/auth-service/internal/log"
	"google.golang.org/api/idtoken"
)

// ErrInvalidToken is the only error surfaced to callers. Expired tokens,
// wrong audiences, network failures and timeouts are deliberately
// indistinguishable; the concrete cause is logged server-side.
var ErrInvalidToken = errors.New("invalid google token")

// verifyTimeout bounds the outbound call to Google. Losing the race
// cancels the request; a late result is discarded.
const verifyTimeout = 10 * time.Second

// Identity is the verified subset of the Google ID token claims.
type Identity struct {
	GoogleID string
	Email    string
	Name     string
}

// Verifier verifies Google ID tokens against a fixed audience.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (Identity, error)
}

// GoogleVerifier verifies ID tokens with Google's public keys.
type GoogleVerifier struct {
	audience string
	timeout  time.Duration

	// validate is swapped out in tests to avoid the network call
	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

// NewGoogleVerifier creates a verifier pinned to the given OAuth client ID.
func NewGoogleVerifier(audience string) *GoogleVerifier {
	return &GoogleVerifier{
		audience: audience,
		timeout:  verifyTimeout,
		validate: idtoken.Validate,
	}
}

// Verify checks the token signature, audience and expiry, bounded by the
// verification timeout.
func (v *GoogleVerifier) Verify(ctx context.Context, rawToken string) (Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	payload, err := v.validate(ctx, rawToken, v.audience)
	if err != nil {
		log.LogWarnWithFields("googleauth", "Google token verification failed", map[string]any{
			"error": err.Error(),
		})
		return Identity{}, ErrInvalidToken
	}

	identity, err := identityFromPayload(payload)
	if err != nil {
		log.LogWarnWithFields("googleauth", "Google token payload malformed", map[string]any{
			"error": err.Error(),
		})
		return Identity{}, ErrInvalidToken
	}

	return identity, nil
}

func identityFromPayload(payload *idtoken.Payload) (Identity, error) {
	if payload.Subject == "" {
		return Identity{}, fmt.Errorf("missing subject claim")
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return Identity{}, fmt.Errorf("missing email claim")
	}

	// A display name is expected from the profile scope but its absence
	// is not worth failing a login over
	name, _ := payload.Claims["name"].(string)

	return Identity{
		GoogleID: payload.Subject,
		Email:    email,
		Name:     name,
	}, nil
}
