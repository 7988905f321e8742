package signature

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"golang.org/x/crypto/sha3"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

// DigestLen is the size of a request digest.
const DigestLen = 32

// ErrInvalidSignature is returned when a signature does not prove the
// declared identity.
var ErrInvalidSignature = errors.New("invalid signature")

// Verifier proves that a digest was signed by a declared identity.
type Verifier interface {
	// Verify returns nil if sig is a valid signature of digest by signer.
	// Expected errors during normal operations:
	//   - ErrInvalidSignature if the signature is malformed or does not match
	Verify(signer crowdfund.Identifier, digest [DigestLen]byte, sig []byte) error
}

// SchnorrVerifier verifies BIP-340 signatures over secp256k1.
type SchnorrVerifier struct{}

var _ Verifier = (*SchnorrVerifier)(nil)

func NewSchnorrVerifier() *SchnorrVerifier {
	return &SchnorrVerifier{}
}

func (v *SchnorrVerifier) Verify(signer crowdfund.Identifier, digest [DigestLen]byte, sig []byte) error {
	pub, err := schnorr.ParsePubKey(signer[:])
	if err != nil {
		return fmt.Errorf("signer %s is not a valid public key: %v: %w", signer, err, ErrInvalidSignature)
	}
	parsed, err := schnorr.ParseSignature(sig)
	if err != nil {
		return fmt.Errorf("malformed signature: %v: %w", err, ErrInvalidSignature)
	}
	if !parsed.Verify(digest[:], pub) {
		return fmt.Errorf("signature does not match signer %s: %w", signer, ErrInvalidSignature)
	}
	return nil
}

// RequestDigest computes the digest a client signs to authorize an API
// request: SHA3-256 over the method, the path, the decimal nonce and the raw
// body separated by newlines.
func RequestDigest(method string, path string, nonce uint64, body []byte) [DigestLen]byte {
	h := sha3.New256()
	_, _ = h.Write([]byte(method))
	_, _ = h.Write([]byte("\n"))
	_, _ = h.Write([]byte(path))
	_, _ = h.Write([]byte("\n"))
	_, _ = h.Write([]byte(strconv.FormatUint(nonce, 10)))
	_, _ = h.Write([]byte("\n"))
	_, _ = h.Write(body)

	var digest [DigestLen]byte
	copy(digest[:], h.Sum(nil))
	return digest
}
