package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultDevTokenTTL is the lifetime of tokens minted by the ephemeral key manager.
const DefaultDevTokenTTL = 12 * time.Hour

// UserMetadata mirrors the free-form metadata block identity providers attach
// to access tokens. Only the fields the desk reads are declared.
type UserMetadata struct {
	FullName string `json:"full_name,omitempty"`
}

// Claims are the access-token claims the desk understands.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated identity.
	Email string `json:"email,omitempty"`

	// PreferredName is the display name for the user, when the issuer sets one.
	PreferredName string `json:"preferred_name,omitempty"`

	// UserMetadata is the provider's metadata block, used as a fallback
	// source for the display name.
	UserMetadata *UserMetadata `json:"user_metadata,omitempty"`
}

// DisplayName returns the best display name carried by the token, or "".
func (c *Claims) DisplayName() string {
	if n := strings.TrimSpace(c.PreferredName); n != "" {
		return n
	}
	if c.UserMetadata != nil {
		return strings.TrimSpace(c.UserMetadata.FullName)
	}
	return ""
}

// NewIdentityClaims builds minimally-correct claims for an identity.
func NewIdentityClaims(
	subject, email, displayName string,
	ttl time.Duration,
	issuer string,
	audience []string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings(audience),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Email:         email,
		PreferredName: displayName,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateAudience checks if at least one expected audience is present.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil
	}
	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}
	return ErrAudience
}

// ValidateExpiry checks exp and nbf, allowing leeway for clock skew.
func (c *Claims) ValidateExpiry(leeway time.Duration) error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}

// ValidateSubject rejects tokens that do not name an identity.
func (c *Claims) ValidateSubject() error {
	if strings.TrimSpace(c.Subject) == "" {
		return ErrNoSubject
	}
	return nil
}
