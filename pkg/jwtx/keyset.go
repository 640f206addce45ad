package jwtx

import (
	"errors"
	"fmt"
	"sync"
)

var ErrNoKey = errors.New("jwtx: key not found")

// KeySet holds public verification keys indexed by kid. Safe for concurrent
// use: the refresher swaps keys while request goroutines verify.
type KeySet struct {
	mu  sync.RWMutex
	jks JWKS
	pub map[string]any
}

// NewKeySet returns an empty KeySet.
func NewKeySet() *KeySet {
	return &KeySet{pub: make(map[string]any)}
}

// AddSigner registers a Signer's public JWK.
func (k *KeySet) AddSigner(s Signer) error {
	return k.AddJWK(s.PublicJWK())
}

// AddJWK parses and adds a single key.
func (k *KeySet) AddJWK(j JWK) error {
	if j.Kid == "" {
		return fmt.Errorf("jwtx: add key: %w", ErrMissingKID)
	}
	key, err := j.PublicKey()
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.pub[j.Kid] = key
	k.jks.Keys = append(k.jks.Keys, j)
	return nil
}

// Get returns the public key for the given kid.
func (k *KeySet) Get(kid string) (any, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if pk, ok := k.pub[kid]; ok {
		return pk, nil
	}
	return nil, ErrNoKey
}

// PublicJWKS returns a snapshot of the keys for serving.
func (k *KeySet) PublicJWKS() JWKS {
	k.mu.RLock()
	defer k.mu.RUnlock()
	keys := make([]JWK, len(k.jks.Keys))
	copy(keys, k.jks.Keys)
	return JWKS{Keys: keys}
}

// IsReady reports whether at least one key is loaded.
func (k *KeySet) IsReady() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.pub) > 0
}

// ResetFromJWKS replaces all keys from a fetched JWKS. Encryption keys and
// key types we cannot verify with are skipped. A set with no usable signing
// key is rejected and the current keys are kept.
func (k *KeySet) ResetFromJWKS(jwks JWKS) (int, error) {
	newMap := make(map[string]any, len(jwks.Keys))
	kept := make([]JWK, 0, len(jwks.Keys))
	for _, j := range jwks.Keys {
		if j.Use == "enc" || j.Kid == "" {
			continue
		}
		key, err := j.PublicKey()
		if errors.Is(err, errUnsupportedKey) {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("jwtx: parse key %q: %w", j.Kid, err)
		}
		newMap[j.Kid] = key
		kept = append(kept, j)
	}
	if len(newMap) == 0 {
		return 0, ErrNoKey
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.pub = newMap
	k.jks = JWKS{Keys: kept}
	return len(kept), nil
}
