package jwtx

import (
	"fmt"
	"time"
)

// KeyManager wires an in-memory signer to a KeySet and Verifier. It backs
// development mode, where the desk mints its own tokens: nothing is persisted
// so every token becomes invalid when the process restarts.
type KeyManager struct {
	Signer   Signer
	Verifier Verifier
	KeySet   *KeySet

	issuer   string
	audience []string
	ttl      time.Duration
}

// KeyManagerOptions configures the ephemeral KeyManager.
type KeyManagerOptions struct {
	// Issuer is stamped into minted tokens and enforced on verification.
	Issuer string

	// Audience is stamped into minted tokens and enforced on verification.
	Audience []string

	// TTL of minted tokens. Defaults to DefaultDevTokenTTL.
	TTL time.Duration
}

// NewEphemeralKeyManager generates a single Ed25519 key and returns a
// manager able to mint and verify tokens with it.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultDevTokenTTL
	}

	signer, err := GenerateEdDSASigner("desk-dev-" + NewJTI())
	if err != nil {
		return nil, err
	}

	keyset := NewKeySet()
	if err := keyset.AddSigner(signer); err != nil {
		return nil, fmt.Errorf("jwtx: add signer to keyset: %w", err)
	}

	return &KeyManager{
		Signer:   signer,
		Verifier: NewVerifier(keyset, VerifyOptions{Issuer: opts.Issuer, Audience: opts.Audience}),
		KeySet:   keyset,
		issuer:   opts.Issuer,
		audience: opts.Audience,
		ttl:      opts.TTL,
	}, nil
}

// Mint signs a token for the given identity. Returns the token and its expiry.
func (km *KeyManager) Mint(subject, email, displayName string) (string, time.Time, error) {
	now := time.Now().UTC()
	claims := NewIdentityClaims(subject, email, displayName, km.ttl, km.issuer, km.audience, now)
	tok, err := km.Signer.Sign(claims)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwtx: sign: %w", err)
	}
	return tok, claims.ExpiresAt.Time, nil
}

// IsReady returns true if the KeyManager has keys loaded.
func (km *KeyManager) IsReady() bool {
	return km.KeySet.IsReady()
}
