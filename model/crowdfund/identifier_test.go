package crowdfund_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/utils/unittest"
)

func TestHexStringToIdentifier(t *testing.T) {
	id := unittest.IdentifierFixture()

	parsed, err := crowdfund.HexStringToIdentifier(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = crowdfund.HexStringToIdentifier("abcd")
	assert.Error(t, err)

	_, err = crowdfund.HexStringToIdentifier("zz")
	assert.Error(t, err)
}

func TestIdentifierText(t *testing.T) {
	id := unittest.IdentifierFixture()
	text, err := id.MarshalText()
	require.NoError(t, err)

	var decoded crowdfund.Identifier
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, id, decoded)
}

func TestCampaignIDDerivation(t *testing.T) {
	creator := unittest.IdentifierFixture()

	first := crowdfund.CampaignID(creator, 1)
	assert.Equal(t, first, crowdfund.CampaignID(creator, 1))
	assert.NotEqual(t, first, crowdfund.CampaignID(creator, 2))
	assert.NotEqual(t, first, crowdfund.CampaignID(unittest.IdentifierFixture(), 1))

	vault := crowdfund.VaultSlot(first)
	assert.NotEqual(t, first, vault)
	assert.Equal(t, vault, crowdfund.VaultSlot(first))
	assert.False(t, vault.IsZero())
	assert.True(t, crowdfund.ZeroID.IsZero())
}
