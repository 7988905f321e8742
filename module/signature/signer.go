package signature

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

// Signer signs request digests with a BIP-340 schnorr key. Its identity is the
// x-only encoding of its public key.
type Signer struct {
	priv *btcec.PrivateKey
}

func NewSigner(priv *btcec.PrivateKey) *Signer {
	return &Signer{priv: priv}
}

// GenerateSigner creates a signer with a fresh random key.
func GenerateSigner() (*Signer, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("could not generate private key: %w", err)
	}
	return NewSigner(priv), nil
}

// SignerFromHex decodes a hex encoded 32-byte private key.
func SignerFromHex(encoded string) (*Signer, error) {
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("could not decode private key: %w", err)
	}
	if len(raw) != btcec.PrivKeyBytesLen {
		return nil, fmt.Errorf("invalid private key length %d", len(raw))
	}
	priv, _ := btcec.PrivKeyFromBytes(raw)
	return NewSigner(priv), nil
}

// Identity returns the identity the signer proves.
func (s *Signer) Identity() crowdfund.Identifier {
	var id crowdfund.Identifier
	copy(id[:], schnorr.SerializePubKey(s.priv.PubKey()))
	return id
}

// Sign signs the digest.
func (s *Signer) Sign(digest [DigestLen]byte) ([]byte, error) {
	sig, err := schnorr.Sign(s.priv, digest[:])
	if err != nil {
		return nil, fmt.Errorf("could not sign digest: %w", err)
	}
	return sig.Serialize(), nil
}

// PrivateKeyHex returns the hex encoding of the private key.
func (s *Signer) PrivateKeyHex() string {
	return hex.EncodeToString(s.priv.Serialize())
}
