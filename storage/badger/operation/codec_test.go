package operation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/module/irrecoverable"
	"github.com/onflow/flow-crowdfund/utils/unittest"
)

func TestCodecRoundTrip(t *testing.T) {
	campaign := unittest.CampaignFixture()

	val, err := encodeEntity(campaign)
	require.NoError(t, err)

	var decoded crowdfund.Campaign
	require.NoError(t, decodeValue(val, &decoded))
	require.Equal(t, campaign, &decoded)
}

func TestCodecCompression(t *testing.T) {
	raw := codec{compress: false}
	receipt := unittest.ReceiptFixture()

	plain, err := raw.encode(receipt)
	require.NoError(t, err)
	compressed, err := storeCodec.encode(receipt)
	require.NoError(t, err)
	require.NotEqual(t, plain, compressed)

	var decoded crowdfund.DonationReceipt
	require.NoError(t, raw.decode(plain, &decoded))
	require.Equal(t, receipt, &decoded)

	// a value written without compression is rejected by the store codec
	err = storeCodec.decode(plain, &decoded)
	require.Error(t, err)
	require.True(t, irrecoverable.IsException(err))
}

func TestCodecDecodeGarbage(t *testing.T) {
	var decoded crowdfund.Campaign
	err := codec{compress: false}.decode([]byte{0xc1}, &decoded)
	require.Error(t, err)
	require.True(t, irrecoverable.IsException(err))
}
