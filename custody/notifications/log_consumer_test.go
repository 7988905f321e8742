package notifications_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-crowdfund/custody/notifications"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/utils/unittest"
)

func TestLogConsumer(t *testing.T) {
	var buf bytes.Buffer
	consumer := notifications.NewLogConsumer(unittest.LoggerWithWriter(&buf))

	campaign := unittest.CampaignFixture()
	consumer.OnCampaignCreated(*campaign)
	consumer.OnDonationReceived(campaign.ID, unittest.IdentifierFixture(), 40)
	consumer.OnMilestoneReleased(campaign.ID, 1, 70)

	output := buf.String()
	assert.Contains(t, output, "campaign created")
	assert.Contains(t, output, "donation received")
	assert.Contains(t, output, "milestone released")
	assert.Contains(t, output, campaign.ID.String())
}

func TestTelemetryConsumer(t *testing.T) {
	var buf bytes.Buffer
	consumer := notifications.NewTelemetryConsumer(unittest.LoggerWithWriter(&buf))

	campaignID := unittest.IdentifierFixture()
	consumer.OnRefundIssued(campaignID, unittest.IdentifierFixture(), 40)
	consumer.OnRefundIssued(campaignID, unittest.IdentifierFixture(), 40)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	ids := make(map[string]struct{})
	for _, line := range lines {
		var record map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		assert.Equal(t, string(crowdfund.EventRefundIssued), record["event"])
		assert.Equal(t, campaignID.String(), record["campaign_id"])
		id, ok := record["notification_id"].(string)
		require.True(t, ok)
		ids[id] = struct{}{}
	}
	assert.Len(t, ids, 2)
}
