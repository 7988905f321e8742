package middleware

import (
	"bytes"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-crowdfund/custody"
	"github.com/onflow/flow-crowdfund/module/signature"
	"github.com/onflow/flow-crowdfund/utils/unittest"
)

func TestLoggingMiddlewareRequestID(t *testing.T) {
	var seen string
	handler := LoggingMiddleware(unittest.Logger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := RequestIDFromContext(r.Context())
		require.True(t, ok)
		seen = id
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("assigns an id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/config", nil))
		assert.Equal(t, http.StatusTeapot, rr.Code)
		_, err := uuid.Parse(rr.Header().Get(RequestIDHeader))
		require.NoError(t, err)
		assert.Equal(t, seen, rr.Header().Get(RequestIDHeader))
	})

	t.Run("keeps a client id", func(t *testing.T) {
		id := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/v1/config", nil)
		req.Header.Set(RequestIDHeader, id)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, id, rr.Header().Get(RequestIDHeader))
		assert.Equal(t, id, seen)
	})

	t.Run("replaces a malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/config", nil)
		req.Header.Set(RequestIDHeader, "not-an-id")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.NotEqual(t, "not-an-id", rr.Header().Get(RequestIDHeader))
	})
}

func TestSignatureMiddleware(t *testing.T) {
	signer := unittest.SignerFixture(t)
	body := []byte(`{"amount":"10"}`)
	path := "/v1/campaigns/abc/donations"

	var forwarded []byte
	var nonce uint64
	handler := SignatureMiddleware(signature.NewSchnorrVerifier(), unittest.Logger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := SignerFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, signer.Identity(), identity)
		auth, ok := custody.AuthorizationFromContext(r.Context())
		require.True(t, ok)
		nonce = auth.Nonce
		var err error
		forwarded, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	}))

	sign := func(method string, path string, nonce uint64, body []byte) string {
		sig, err := signer.Sign(signature.RequestDigest(method, path, nonce, body))
		require.NoError(t, err)
		return hex.EncodeToString(sig)
	}
	serve := func(method string, path string, nonce string, body []byte, sig string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set(SignerHeader, signer.Identity().String())
		req.Header.Set(SignatureHeader, sig)
		req.Header.Set(NonceHeader, nonce)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	t.Run("valid", func(t *testing.T) {
		rr := serve(http.MethodPost, path, "7", body, sign(http.MethodPost, path, 7, body))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, body, forwarded)
		assert.Equal(t, uint64(7), nonce)
	})

	t.Run("signed for another method", func(t *testing.T) {
		rr := serve(http.MethodPost, path, "7", body, sign(http.MethodPut, path, 7, body))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("signed for another path", func(t *testing.T) {
		rr := serve(http.MethodPost, path, "7", body, sign(http.MethodPost, "/v1/campaigns/def/donations", 7, body))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("signed for another nonce", func(t *testing.T) {
		rr := serve(http.MethodPost, path, "8", body, sign(http.MethodPost, path, 7, body))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("missing or zero nonce", func(t *testing.T) {
		rr := serve(http.MethodPost, path, "", body, sign(http.MethodPost, path, 0, body))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		rr = serve(http.MethodPost, path, "0", body, sign(http.MethodPost, path, 0, body))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed signature", func(t *testing.T) {
		rr := serve(http.MethodPost, path, "7", body, "zz")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed signer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
		req.Header.Set(SignerHeader, "abc")
		req.Header.Set(SignatureHeader, sign(http.MethodPost, path, 7, body))
		req.Header.Set(NonceHeader, "7")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("body too large", func(t *testing.T) {
		large := []byte(strings.Repeat("a", MaxRequestSize+1))
		rr := serve(http.MethodPost, path, "7", large, sign(http.MethodPost, path, 7, large))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	})
}
