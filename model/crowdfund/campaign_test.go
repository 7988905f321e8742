package crowdfund_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/utils/unittest"
)

func TestCampaignValidate(t *testing.T) {
	t.Run("fixture is valid", func(t *testing.T) {
		require.NoError(t, unittest.CampaignFixture().Validate())
	})

	t.Run("single and full schedules are valid", func(t *testing.T) {
		require.NoError(t, unittest.CampaignFixture(unittest.WithMilestoneAmounts(100)).Validate())
		require.NoError(t, unittest.CampaignFixture(unittest.WithMilestoneAmounts(1, 2, 3)).Validate())
	})

	t.Run("milestone count out of range", func(t *testing.T) {
		c := unittest.CampaignFixture()
		c.MilestoneCount = 0
		assert.Error(t, c.Validate())
		c.MilestoneCount = crowdfund.MaxMilestones + 1
		assert.Error(t, c.Validate())
	})

	t.Run("last flag only on last milestone", func(t *testing.T) {
		c := unittest.CampaignFixture()
		c.Milestones[0].IsLast = true
		assert.Error(t, c.Validate())

		c = unittest.CampaignFixture()
		c.Milestones[1].IsLast = false
		assert.Error(t, c.Validate())
	})

	t.Run("populated slot beyond count", func(t *testing.T) {
		c := unittest.CampaignFixture()
		c.Milestones[2].Amount = 1
		assert.Error(t, c.Validate())
	})

	t.Run("release out of order", func(t *testing.T) {
		c := unittest.CampaignFixture()
		c.Milestones[1].Released = true
		assert.Error(t, c.Validate())
	})

	t.Run("target does not match milestones", func(t *testing.T) {
		c := unittest.CampaignFixture()
		c.TargetAmount = 99
		assert.Error(t, c.Validate())
	})

	t.Run("end before start", func(t *testing.T) {
		c := unittest.CampaignFixture()
		c.EndTime = c.StartTime - 1
		assert.Error(t, c.Validate())
	})

	t.Run("foreign vault", func(t *testing.T) {
		c := unittest.CampaignFixture()
		c.Vault = unittest.IdentifierFixture()
		assert.Error(t, c.Validate())
	})
}

func TestCampaignStatus(t *testing.T) {
	c := unittest.CampaignFixture()

	assert.Equal(t, crowdfund.StatusActive, c.Status(c.StartTime))
	assert.Equal(t, crowdfund.StatusActive, c.Status(c.EndTime))
	assert.Equal(t, crowdfund.StatusFailed, c.Status(c.EndTime+1))

	c.TotalDonated = c.TargetAmount
	assert.Equal(t, crowdfund.StatusFunded, c.Status(c.StartTime))
	assert.Equal(t, crowdfund.StatusFunded, c.Status(c.EndTime+1))
	assert.False(t, c.HasFailed(c.EndTime+1))

	c.Milestones[0].Released = true
	assert.Equal(t, crowdfund.StatusFunded, c.Status(c.EndTime+1))
	c.Milestones[1].Released = true
	assert.Equal(t, crowdfund.StatusCompleted, c.Status(c.EndTime+1))
	assert.True(t, c.IsCompleted())
	assert.Equal(t, 2, c.ReleasedCount())
}

func TestCampaignStatusText(t *testing.T) {
	for _, status := range []crowdfund.CampaignStatus{
		crowdfund.StatusActive,
		crowdfund.StatusFunded,
		crowdfund.StatusFailed,
		crowdfund.StatusCompleted,
	} {
		text, err := status.MarshalText()
		require.NoError(t, err)

		var decoded crowdfund.CampaignStatus
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, status, decoded)
	}

	_, err := crowdfund.ParseCampaignStatus("pending")
	assert.Error(t, err)
}

func TestDisputeReference(t *testing.T) {
	c := unittest.CampaignFixture()
	assert.Equal(t, c.StartTime, c.DisputeReference())

	c.LastReleaseTime = c.StartTime + 60
	assert.Equal(t, c.StartTime+60, c.DisputeReference())
}

func TestSchedule(t *testing.T) {
	c := unittest.CampaignFixture(unittest.WithMilestoneAmounts(5, 10, 15))
	schedule := c.Schedule()
	require.Len(t, schedule, 3)
	assert.True(t, schedule[2].IsLast)
	assert.Equal(t, uint64(30), c.TargetAmount)
}

func TestReceiptRefundable(t *testing.T) {
	r := unittest.ReceiptFixture()
	assert.Equal(t, r.Amount, r.Refundable())

	r.Refunded = true
	assert.Zero(t, r.Refundable())
	assert.Equal(t, uint64(40), r.Amount)
}
