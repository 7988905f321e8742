package custody_test

import (
	"math"
	"strings"

	"github.com/onflow/flow-crowdfund/custody/errors"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

func (s *EngineSuite) TestCreateCampaign() {
	s.initialize(50)
	s.clock.Set(100)

	campaign, err := s.engine.CreateCampaign(s.ctx, s.creator, campaignSpec(900, 10, 20, 30))
	s.Require().NoError(err)
	s.Require().NoError(campaign.Validate())

	s.Assert().Equal(s.creator, campaign.Creator)
	s.Assert().Equal(crowdfund.VaultSlot(campaign.ID), campaign.Vault)
	s.Assert().Equal(uint64(60), campaign.TargetAmount)
	s.Assert().Equal(int64(100), campaign.StartTime)
	s.Assert().Equal(int64(1000), campaign.EndTime)
	s.Assert().Equal(uint8(3), campaign.MilestoneCount)
	s.Assert().Equal(uint64(0), campaign.TotalDonated)
	s.Assert().Equal(int64(0), campaign.LastReleaseTime)
	s.Assert().False(campaign.Locked)

	expectedTimes := []int64{100, 400, 700}
	for i, milestone := range campaign.Schedule() {
		s.Assert().Equal(expectedTimes[i], milestone.ReleaseTime)
		s.Assert().Equal(i == 2, milestone.IsLast)
		s.Assert().False(milestone.Released)
	}

	s.Assert().Equal(campaign, s.campaign(campaign.ID))
	s.Assert().Equal(uint64(0), s.vault(campaign.ID))
	s.consumer.AssertCalled(s.T(), "OnCampaignCreated", *campaign)

	second, err := s.engine.CreateCampaign(s.ctx, s.creator, campaignSpec(900, 10))
	s.Require().NoError(err)
	s.Assert().NotEqual(campaign.ID, second.ID)
	s.Assert().NotEqual(campaign.Vault, second.Vault)
}

func (s *EngineSuite) TestCreateCampaignMilestoneShape() {
	s.initialize(50)

	_, err := s.engine.CreateCampaign(s.ctx, s.creator, campaignSpec(1000))
	s.requireCode(err, errors.ErrCodeBadMilestone)

	_, err = s.engine.CreateCampaign(s.ctx, s.creator, campaignSpec(1000, 1, 2, 3, 4))
	s.requireCode(err, errors.ErrCodeBadMilestone)

	spec := campaignSpec(1000, 1, 2)
	spec.MilestoneDescriptions = spec.MilestoneDescriptions[:1]
	_, err = s.engine.CreateCampaign(s.ctx, s.creator, spec)
	s.requireCode(err, errors.ErrCodeBadMilestone)

	// the milestone shape is checked before any other input
	_, err = s.engine.CreateCampaign(s.ctx, crowdfund.ZeroID, campaignSpec(0))
	s.requireCode(err, errors.ErrCodeBadMilestone)
}

func (s *EngineSuite) TestCreateCampaignInputs() {
	s.initialize(50)

	_, err := s.engine.CreateCampaign(s.ctx, crowdfund.ZeroID, campaignSpec(1000, 100))
	s.requireCode(err, errors.ErrCodeInvalidArgument)

	_, err = s.engine.CreateCampaign(s.ctx, s.creator, campaignSpec(0, 100))
	s.requireCode(err, errors.ErrCodeInvalidArgument)

	_, err = s.engine.CreateCampaign(s.ctx, s.creator, campaignSpec(math.MaxInt64, 100))
	s.requireCode(err, errors.ErrCodeInvalidArgument)

	spec := campaignSpec(1000, 100)
	spec.Title = strings.Repeat("t", crowdfund.MaxTitleLength+1)
	_, err = s.engine.CreateCampaign(s.ctx, s.creator, spec)
	s.requireCode(err, errors.ErrCodeInvalidArgument)

	spec = campaignSpec(1000, 100)
	spec.MilestoneDescriptions[0] = strings.Repeat("d", crowdfund.MaxMilestoneDescriptionLength+1)
	_, err = s.engine.CreateCampaign(s.ctx, s.creator, spec)
	s.requireCode(err, errors.ErrCodeInvalidArgument)

	_, err = s.engine.CreateCampaign(s.ctx, s.creator, campaignSpec(1000, math.MaxUint64, 1))
	s.requireCode(err, errors.ErrCodeArithmeticOverflow)

	campaigns, err := s.engine.Campaigns(s.ctx, custodyFilter())
	s.Require().NoError(err)
	s.Assert().Empty(campaigns)
}
