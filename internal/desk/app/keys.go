package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/clientdesk/pkg/jwtx"
)

// AuthKeys is what the HTTP layer needs to authenticate requests.
type AuthKeys struct {
	Verifier jwtx.Verifier
	Keys     *jwtx.KeySet

	// Dev is set in ephemeral mode only and enables token minting.
	Dev *jwtx.KeyManager

	remote *jwtx.RemoteKeySet
}

// InitAuthKeys sets up token verification for the configured mode.
//
// Modes:
//   - "ephemeral": an Ed25519 key is generated on startup and kept in memory.
//     Tokens are minted by POST /v1/dev/token and stop verifying on restart.
//   - "jwks": keys are fetched from the identity provider's JWKS endpoint and
//     refreshed in the background. The first fetch must succeed.
func InitAuthKeys(ctx context.Context, cfg Config, logger *slog.Logger) (*AuthKeys, error) {
	switch cfg.AuthMode {
	case AuthModeJWKS:
		logger.Info("initializing remote key set",
			"url", cfg.JWKSURL,
			"refresh", cfg.JWKSRefresh,
			"issuer", cfg.Issuer,
		)

		remote := jwtx.NewRemoteKeySet(cfg.JWKSURL, cfg.JWKSRefresh, logger)
		if err := remote.Start(ctx); err != nil {
			return nil, fmt.Errorf("failed to fetch identity provider keys: %w", err)
		}

		return &AuthKeys{
			Verifier: jwtx.NewVerifier(remote.Keys, jwtx.VerifyOptions{
				Issuer:   cfg.Issuer,
				Audience: cfg.Audience,
			}),
			Keys:   remote.Keys,
			remote: remote,
		}, nil

	default:
		logger.Info("initializing ephemeral key manager", "issuer", cfg.Issuer)

		km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
			Issuer:   cfg.Issuer,
			Audience: cfg.Audience,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize ephemeral key manager: %w", err)
		}

		logger.Warn("ephemeral key mode enabled - dev tokens are open to anyone and invalid after restart")
		return &AuthKeys{Verifier: km.Verifier, Keys: km.KeySet, Dev: km}, nil
	}
}

// Stop ends background key refresh, if any.
func (k *AuthKeys) Stop() {
	if k.remote != nil {
		k.remote.Stop()
	}
}
