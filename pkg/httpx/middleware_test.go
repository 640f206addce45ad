package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/clientdesk/pkg/httpx"
	"github.com/aussiebroadwan/clientdesk/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	claims jwtx.Claims
	err    error
}

func (s stubVerifier) Verify(string) (jwtx.Claims, error) { return s.claims, s.err }

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(okHandler, mw("a"), mw("b"), mw("c"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"a", "b", "c"}, order)
}

func TestAuthnMiddleware(t *testing.T) {
	var gotUser string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = httpx.UserIDFromContext(r.Context())
		claims, ok := httpx.ClaimsFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, "a@example.com", claims.Email)
		w.WriteHeader(http.StatusNoContent)
	})

	valid := claimsFor("user-1")
	valid.Email = "a@example.com"

	t.Run("missing header", func(t *testing.T) {
		h := httpx.AuthnMiddleware(stubVerifier{claims: valid})(inner)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("verification failure", func(t *testing.T) {
		h := httpx.AuthnMiddleware(stubVerifier{err: jwtx.ErrExpired})(inner)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer abc")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		var body httpx.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "invalid_token", body.Error)
	})

	t.Run("valid token", func(t *testing.T) {
		h := httpx.AuthnMiddleware(stubVerifier{claims: valid})(inner)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "bearer abc")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "user-1", gotUser)
	})
}

func TestAuthnWithRealVerifier(t *testing.T) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "desk-dev", TTL: time.Minute})
	require.NoError(t, err)
	token, _, err := km.Mint("user-7", "seven@example.com", "")
	require.NoError(t, err)

	h := httpx.AuthnMiddleware(km.Verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.UserIDFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, "user-7", id)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Acme"}`))
	require.NoError(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &v))
	require.Equal(t, "Acme", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Acme"} {}`))
	require.Error(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
	require.Error(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &v))
}

func TestWriteValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteValidationError(rec, map[string]string{"email": "Email is required"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var body httpx.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "validation_error", body.Code)
	require.Equal(t, "Email is required", body.Details["email"])
}
