package middleware

import (
	"bytes"
	"context"
	"encoding/hex"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/onflow/flow-crowdfund/custody"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/module/signature"
)

const (
	// SignerHeader carries the hex encoded identity the request acts for.
	SignerHeader = "X-Signer"
	// SignatureHeader carries the hex encoded signature of the request digest.
	SignatureHeader = "X-Signature"
	// NonceHeader carries the decimal nonce of the request. It must exceed
	// the nonce of every earlier request of the same signer.
	NonceHeader = "X-Nonce"

	// MaxRequestSize bounds the body of signed requests.
	MaxRequestSize = 1 << 20
)

// SignerFromContext returns the identity that signed the request.
func SignerFromContext(ctx context.Context) (crowdfund.Identifier, bool) {
	auth, ok := custody.AuthorizationFromContext(ctx)
	return auth.Signer, ok
}

// SignatureMiddleware authenticates mutating requests. The client signs
// signature.RequestDigest of the method, the path, the nonce and the raw
// body. The verified identity and nonce are passed on in the request context
// as a custody.Authorization, and the custody engine consumes the nonce.
func SignatureMiddleware(verifier signature.Verifier, logger zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			signer, err := crowdfund.HexStringToIdentifier(req.Header.Get(SignerHeader))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "missing or malformed "+SignerHeader+" header")
				return
			}
			sig, err := hex.DecodeString(req.Header.Get(SignatureHeader))
			if err != nil || len(sig) == 0 {
				writeError(w, http.StatusUnauthorized, "missing or malformed "+SignatureHeader+" header")
				return
			}
			nonce, err := strconv.ParseUint(req.Header.Get(NonceHeader), 10, 64)
			if err != nil || nonce == 0 {
				writeError(w, http.StatusUnauthorized, "missing or malformed "+NonceHeader+" header")
				return
			}

			body, err := io.ReadAll(io.LimitReader(req.Body, MaxRequestSize+1))
			if err != nil {
				writeError(w, http.StatusBadRequest, "could not read request body")
				return
			}
			if len(body) > MaxRequestSize {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			req.Body = io.NopCloser(bytes.NewReader(body))

			digest := signature.RequestDigest(req.Method, req.URL.Path, nonce, body)
			err = verifier.Verify(signer, digest, sig)
			if err != nil {
				logger.Debug().Err(err).Str("signer", signer.String()).Msg("rejected request signature")
				writeError(w, http.StatusUnauthorized, "invalid request signature")
				return
			}

			auth := custody.Authorization{Signer: signer, Nonce: nonce}
			next.ServeHTTP(w, req.WithContext(custody.ContextWithAuthorization(req.Context(), auth)))
		})
	}
}
