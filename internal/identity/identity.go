package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

// GoogleIssuer is the OIDC issuer for Google-signed ID tokens.
const GoogleIssuer = "https://accounts.google.com"

// ErrInvalid is returned for any assertion that fails verification:
// bad signature, audience mismatch, expired, or malformed payload.
var ErrInvalid = errors.New("invalid identity assertion")

// Claims are the verified identity attributes extracted from an ID token.
type Claims struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// Verifier validates a third-party identity assertion and extracts
// the verified claims. Implementations must not trust any field before
// provider-side signature verification.
type Verifier interface {
	Verify(ctx context.Context, raw string) (*Claims, error)
}

// OIDCVerifier verifies ID tokens against the provider's published keys.
// The provider's JWKS is fetched and cached by the underlying library.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewVerifier creates a verifier for the given issuer and expected audience.
func NewVerifier(ctx context.Context, issuer, audience string) (*OIDCVerifier, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider: %w", err)
	}
	return &OIDCVerifier{verifier: provider.Verifier(&oidc.Config{ClientID: audience})}, nil
}

func (v *OIDCVerifier) Verify(ctx context.Context, raw string) (*Claims, error) {
	idToken, err := v.verifier.Verify(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	var c Claims
	if err := idToken.Claims(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Email == "" {
		return nil, fmt.Errorf("%w: email claim missing", ErrInvalid)
	}
	return &c, nil
}
