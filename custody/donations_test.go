package custody_test

import (
	"math"

	"github.com/onflow/flow-crowdfund/custody/errors"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/utils/unittest"
)

func (s *EngineSuite) TestDonationsAccumulate() {
	s.initialize(50)
	s.fund(s.donor, 100)
	campaign := s.createCampaign(30, 70)

	receipt, err := s.engine.Donate(s.ctx, s.donor, campaign.ID, 10)
	s.Require().NoError(err)
	s.Assert().Equal(uint64(10), receipt.Amount)

	receipt, err = s.engine.Donate(s.ctx, s.donor, campaign.ID, 15)
	s.Require().NoError(err)
	s.Assert().Equal(uint64(25), receipt.Amount)
	s.Assert().False(receipt.Refunded)
	s.Assert().Equal(campaign.ID, receipt.Campaign)
	s.Assert().Equal(s.donor, receipt.Donor)

	s.Assert().Equal(uint64(25), s.campaign(campaign.ID).TotalDonated)
	s.Assert().Equal(uint64(25), s.vault(campaign.ID))
	s.Assert().Equal(uint64(75), s.balance(s.donor))

	receipts, err := s.engine.ReceiptsByDonor(s.ctx, s.donor)
	s.Require().NoError(err)
	s.Require().Len(receipts, 1)
	s.Assert().Equal(uint64(25), receipts[0].Amount)

	s.consumer.AssertNumberOfCalls(s.T(), "OnDonationReceived", 2)
	s.consumer.AssertCalled(s.T(), "OnDonationReceived", campaign.ID, s.donor, uint64(15))
	s.Assert().Equal([]crowdfund.EventType{
		crowdfund.EventCampaignCreated,
		crowdfund.EventDonationReceived,
		crowdfund.EventDonationReceived,
	}, s.eventTypes(campaign.ID))
}

func (s *EngineSuite) TestDonationsAfterTargetReached() {
	s.initialize(50)
	s.fund(s.donor, 150)
	campaign := s.createCampaign(100)
	s.donate(s.donor, campaign.ID, 100)
	s.donate(s.donor, campaign.ID, 50)

	s.Assert().Equal(uint64(150), s.campaign(campaign.ID).TotalDonated)
	s.Assert().Equal(crowdfund.StatusFunded, s.campaign(campaign.ID).Status(s.clock.Now()))
}

func (s *EngineSuite) TestDonationWindow() {
	s.initialize(50)
	s.fund(s.donor, 10)
	campaign := s.createCampaign(30, 70)

	s.clock.Set(campaign.EndTime - 1)
	s.donate(s.donor, campaign.ID, 5)

	s.clock.Set(campaign.EndTime)
	_, err := s.engine.Donate(s.ctx, s.donor, campaign.ID, 5)
	s.requireCode(err, errors.ErrCodeCampaignEnded)

	_, err = s.engine.Donate(s.ctx, s.donor, unittest.IdentifierFixture(), 5)
	s.requireCode(err, errors.ErrCodeCampaignNotFound)
}

func (s *EngineSuite) TestDonationGuards() {
	s.initialize(50)
	campaign := s.createCampaign(30, 70)

	_, err := s.engine.Donate(s.ctx, crowdfund.ZeroID, campaign.ID, 5)
	s.requireCode(err, errors.ErrCodeInvalidArgument)

	_, err = s.engine.Donate(s.ctx, s.donor, campaign.ID, 5)
	s.requireCode(err, errors.ErrCodeInsufficientBalance)

	// a zero donation is accepted and recorded
	receipt, err := s.engine.Donate(s.ctx, s.donor, campaign.ID, 0)
	s.Require().NoError(err)
	s.Assert().Equal(uint64(0), receipt.Amount)
}

func (s *EngineSuite) TestDonationOverflow() {
	s.initialize(50)
	other := unittest.IdentifierFixture()
	s.fund(s.donor, math.MaxUint64)
	s.fund(other, 1)
	campaign := s.createCampaign(30, 70)
	s.donate(s.donor, campaign.ID, math.MaxUint64)

	_, err := s.engine.Donate(s.ctx, other, campaign.ID, 1)
	s.requireCode(err, errors.ErrCodeArithmeticOverflow)
	s.Assert().Equal(uint64(1), s.balance(other))
	s.Assert().Equal(uint64(math.MaxUint64), s.campaign(campaign.ID).TotalDonated)
}
