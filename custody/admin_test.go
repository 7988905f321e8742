package custody_test

import (
	"math"

	"github.com/onflow/flow-crowdfund/custody/errors"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/utils/unittest"
)

func (s *EngineSuite) TestLockCampaign() {
	s.initialize(50)
	campaign := s.createCampaign(30, 70)

	err := s.engine.LockCampaign(s.ctx, s.creator, campaign.ID, true)
	s.requireCode(err, errors.ErrCodeUnAuthorized)

	err = s.engine.LockCampaign(s.ctx, s.authority, unittest.IdentifierFixture(), true)
	s.requireCode(err, errors.ErrCodeCampaignNotFound)

	s.Require().NoError(s.engine.LockCampaign(s.ctx, s.authority, campaign.ID, true))
	s.Assert().True(s.campaign(campaign.ID).Locked)
	s.consumer.AssertCalled(s.T(), "OnCampaignLocked", campaign.ID, true)

	// locking is unconditional, repeating it is fine
	s.Require().NoError(s.engine.LockCampaign(s.ctx, s.authority, campaign.ID, true))

	// donations are not affected by the lock
	s.fund(s.donor, 10)
	s.donate(s.donor, campaign.ID, 10)

	s.Require().NoError(s.engine.LockCampaign(s.ctx, s.authority, campaign.ID, false))
	s.Assert().False(s.campaign(campaign.ID).Locked)

	events, err := s.engine.CampaignEvents(s.ctx, campaign.ID)
	s.Require().NoError(err)
	s.Require().Len(events, 5)
	s.Assert().Equal(crowdfund.EventCampaignLocked, events[1].Type)
	s.Assert().True(events[1].Locked)
	s.Assert().Equal(s.authority, events[1].Actor)
	s.Assert().Equal(crowdfund.EventCampaignLocked, events[4].Type)
	s.Assert().False(events[4].Locked)
}

func (s *EngineSuite) TestFundAccount() {
	s.initialize(50)

	err := s.engine.FundAccount(s.ctx, s.donor, s.donor, 10)
	s.requireCode(err, errors.ErrCodeUnAuthorized)

	err = s.engine.FundAccount(s.ctx, s.authority, crowdfund.ZeroID, 10)
	s.requireCode(err, errors.ErrCodeInvalidArgument)

	s.fund(s.donor, 10)
	s.fund(s.donor, 5)
	s.Assert().Equal(uint64(15), s.balance(s.donor))

	err = s.engine.FundAccount(s.ctx, s.authority, s.donor, math.MaxUint64)
	s.requireCode(err, errors.ErrCodeArithmeticOverflow)
	s.Assert().Equal(uint64(15), s.balance(s.donor))
}
