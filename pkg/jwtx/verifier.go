package jwtx

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// VerifyOptions captures common expectations used by verifiers.
type VerifyOptions struct {
	// Issuer the token must have (claims.iss). Empty means "don't care".
	Issuer string

	// Audience values the token must contain (claims.aud). Empty means "don't care".
	Audience []string

	// Leeway allows small clock skew when validating exp/nbf.
	Leeway time.Duration
}

var (
	ErrMissingKID  = errors.New("jwtx: missing kid")
	ErrAlgMismatch = errors.New("jwtx: algorithm does not match key")
	ErrInvalid     = errors.New("jwtx: invalid token")

	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrAudience    = errors.New("jwtx: audience mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrNoSubject   = errors.New("jwtx: token has no subject")
)

// KeySetVerifier verifies EdDSA, ES256 and RS256 tokens against a KeySet,
// choosing the key by the "kid" header.
type KeySetVerifier struct {
	keys *KeySet
	opts VerifyOptions
}

// NewVerifier creates a verifier over keys.
func NewVerifier(keys *KeySet, opts VerifyOptions) *KeySetVerifier {
	return &KeySetVerifier{keys: keys, opts: opts}
}

// Verify validates the JWT string and returns its parsed Claims.
func (v *KeySetVerifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{AlgorithmEdDSA, AlgorithmES256, AlgorithmRS256}),
		// exp and nbf are checked below with our own leeway.
		jwt.WithoutClaimsValidation(),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, v.keyFunc)
	if err != nil {
		return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalid
	}

	if err := claims.ValidateIssuer(v.opts.Issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(v.opts.Audience); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(v.opts.Leeway); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateSubject(); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}

func (v *KeySetVerifier) keyFunc(t *jwt.Token) (any, error) {
	kid, _ := t.Header["kid"].(string)
	if kid == "" {
		return nil, ErrMissingKID
	}

	pub, err := v.keys.Get(kid)
	if err != nil {
		return nil, fmt.Errorf("jwtx: unknown kid %q: %w", kid, err)
	}

	// The key type must match the signing method in the header, otherwise
	// an attacker could pick the algorithm.
	switch t.Method.Alg() {
	case AlgorithmEdDSA:
		if k, ok := pub.(ed25519.PublicKey); ok {
			return k, nil
		}
	case AlgorithmES256:
		if k, ok := pub.(*ecdsa.PublicKey); ok {
			return k, nil
		}
	case AlgorithmRS256:
		if k, ok := pub.(*rsa.PublicKey); ok {
			return k, nil
		}
	}
	return nil, ErrAlgMismatch
}
