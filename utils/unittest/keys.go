package unittest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-crowdfund/module/signature"
)

// SignerFixture returns a signer with a fresh random schnorr key.
func SignerFixture(t testing.TB) *signature.Signer {
	signer, err := signature.GenerateSigner()
	require.NoError(t, err)
	return signer
}

// SignersFixture returns n signers with distinct keys.
func SignersFixture(t testing.TB, n int) []*signature.Signer {
	signers := make([]*signature.Signer, 0, n)
	for i := 0; i < n; i++ {
		signers = append(signers, SignerFixture(t))
	}
	return signers
}
