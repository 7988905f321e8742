package custody

import (
	"context"
	"fmt"

	"github.com/onflow/flow-crowdfund/custody/errors"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/storage"
)

// Authorization binds a mutating operation to one signed request. Every
// signer uses strictly increasing nonces: a request is accepted at most once,
// and never after a request with a higher nonce of the same signer.
type Authorization struct {
	Signer crowdfund.Identifier
	Nonce  uint64
}

type authorizationKey struct{}

// ContextWithAuthorization attaches the authorization of a signed request to
// ctx. Operations run with such a context consume the nonce.
func ContextWithAuthorization(ctx context.Context, auth Authorization) context.Context {
	return context.WithValue(ctx, authorizationKey{}, auth)
}

// AuthorizationFromContext returns the authorization attached to ctx.
func AuthorizationFromContext(ctx context.Context) (Authorization, bool) {
	auth, ok := ctx.Value(authorizationKey{}).(Authorization)
	return auth, ok
}

// consumeNonce records the nonce as the signer's last used one.
// Expected errors during normal operations:
//   - StaleNonce if the nonce is not above the last used nonce of the signer
func consumeNonce(tx storage.LedgerTx, auth Authorization) error {
	last, err := tx.SignerNonce(auth.Signer)
	if err != nil {
		return fmt.Errorf("could not read signer nonce: %w", err)
	}
	if auth.Nonce <= last {
		return errors.NewStaleNonceError(auth.Signer, auth.Nonce, last)
	}
	err = tx.SetSignerNonce(auth.Signer, auth.Nonce)
	if err != nil {
		return fmt.Errorf("could not store signer nonce: %w", err)
	}
	return nil
}
