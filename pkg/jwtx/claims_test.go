package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/clientdesk/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "idp"}}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("idp"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateIssuer("other"), jwtx.ErrIssuer)
	})
}

func TestValidateAudience(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Audience: []string{"authenticated", "desk"}}}

	require.NoError(t, c.ValidateAudience([]string{"desk"}))
	require.NoError(t, c.ValidateAudience([]string{"foo", "authenticated"}))
	require.NoError(t, c.ValidateAudience(nil))
	require.ErrorIs(t, c.ValidateAudience([]string{"admin"}), jwtx.ErrAudience)
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name   string
		claims jwtx.Claims
		leeway time.Duration
		want   error
	}{
		{
			name:   "valid token",
			claims: jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute))}},
		},
		{
			name:   "expired token",
			claims: jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))}},
			want:   jwtx.ErrExpired,
		},
		{
			name:   "expired within leeway",
			claims: jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-10 * time.Second))}},
			leeway: 30 * time.Second,
		},
		{
			name:   "not yet valid",
			claims: jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{NotBefore: jwt.NewNumericDate(now.Add(time.Minute))}},
			want:   jwtx.ErrNotYetValid,
		},
		{
			name: "no exp or nbf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.claims.ValidateExpiry(tt.leeway)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDisplayName(t *testing.T) {
	c := jwtx.Claims{PreferredName: "  Ada  "}
	require.Equal(t, "Ada", c.DisplayName())

	c = jwtx.Claims{UserMetadata: &jwtx.UserMetadata{FullName: "Grace Hopper"}}
	require.Equal(t, "Grace Hopper", c.DisplayName())

	c = jwtx.Claims{}
	require.Empty(t, c.DisplayName())
}

func TestValidateSubject(t *testing.T) {
	c := jwtx.Claims{}
	require.ErrorIs(t, c.ValidateSubject(), jwtx.ErrNoSubject)

	c.Subject = "user-1"
	require.NoError(t, c.ValidateSubject())
}
