package crowdfund

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// IdentifierLen is the size in bytes of an Identifier.
const IdentifierLen = 32

// Identifier names an identity (the x-only public key of a signer) or a record
// derived from other identities, such as a campaign or its vault.
type Identifier [IdentifierLen]byte

// ZeroID is the lowest value in the 32-byte ID space. It never names a valid
// identity.
var ZeroID = Identifier{}

// domain separation tags for derived identifiers
const (
	tagCampaign = "crowdfund/campaign"
	tagVault    = "crowdfund/vault"
)

// HexStringToIdentifier converts a hex string to an identifier. The input
// must be 64 characters long and contain only valid hex characters.
func HexStringToIdentifier(hexString string) (Identifier, error) {
	var identifier Identifier
	if len(hexString) != hex.EncodedLen(IdentifierLen) {
		return identifier, fmt.Errorf("malformed input, expected %d hex chars, got %d", hex.EncodedLen(IdentifierLen), len(hexString))
	}
	i, err := hex.Decode(identifier[:], []byte(hexString))
	if err != nil {
		return identifier, err
	}
	if i != IdentifierLen {
		return identifier, fmt.Errorf("malformed input, expected %d bytes (%d hex chars), decoded %d", IdentifierLen, hex.EncodedLen(IdentifierLen), i)
	}
	return identifier, nil
}

// String returns the hex string representation of the identifier.
func (id Identifier) String() string {
	return hex.EncodeToString(id[:])
}

// IsZero reports whether id is the unset identifier.
func (id Identifier) IsZero() bool {
	return id == ZeroID
}

func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *Identifier) UnmarshalText(text []byte) error {
	var err error
	*id, err = HexStringToIdentifier(string(text))
	return err
}

// MakeID hashes the given parts with SHA3-256 into an identifier.
func MakeID(parts ...[]byte) Identifier {
	h := sha3.New256()
	for _, part := range parts {
		_, _ = h.Write(part)
	}
	var id Identifier
	copy(id[:], h.Sum(nil))
	return id
}

// CampaignID derives the identifier of the n-th campaign created in a store by
// the given creator.
func CampaignID(creator Identifier, sequence uint64) Identifier {
	var seq [8]byte
	binary.BigEndian.PutUint64(seq[:], sequence)
	return MakeID([]byte(tagCampaign), creator[:], seq[:])
}

// VaultSlot derives the custody slot holding the funds of a campaign. The slot
// can never collide with an identity's own slot, as identities are public keys.
func VaultSlot(campaignID Identifier) Identifier {
	return MakeID([]byte(tagVault), campaignID[:])
}
