package custody_test

import (
	"github.com/onflow/flow-crowdfund/custody/errors"
	"github.com/onflow/flow-crowdfund/utils/unittest"
)

func (s *EngineSuite) TestRefundRequiresFailedCampaign() {
	s.initialize(50)
	s.fund(s.donor, 140)
	failing := s.createCampaign(30, 70)
	funded := s.createCampaign(10)
	s.donate(s.donor, failing.ID, 40)
	s.donate(s.donor, funded.ID, 100)

	_, err := s.engine.Refund(s.ctx, s.donor, failing.ID)
	s.requireCode(err, errors.ErrCodeNotFailed)

	// the deadline itself still counts as running
	s.clock.Set(failing.EndTime)
	_, err = s.engine.Refund(s.ctx, s.donor, failing.ID)
	s.requireCode(err, errors.ErrCodeNotFailed)

	s.clock.Set(failing.EndTime + 1)
	_, err = s.engine.Refund(s.ctx, s.donor, funded.ID)
	s.requireCode(err, errors.ErrCodeNotFailed)

	_, err = s.engine.Refund(s.ctx, s.donor, unittest.IdentifierFixture())
	s.requireCode(err, errors.ErrCodeCampaignNotFound)
}

func (s *EngineSuite) TestRefundWithoutReceipt() {
	s.initialize(50)
	campaign := s.createCampaign(30, 70)
	s.clock.Set(campaign.EndTime + 1)

	_, err := s.engine.Refund(s.ctx, s.donor, campaign.ID)
	s.requireCode(err, errors.ErrCodeNothingToRefund)
}

func (s *EngineSuite) TestRefundIgnoresLock() {
	s.initialize(50)
	s.fund(s.donor, 25)
	campaign := s.createCampaign(30, 70)
	s.donate(s.donor, campaign.ID, 25)
	s.Require().NoError(s.engine.LockCampaign(s.ctx, s.authority, campaign.ID, true))

	s.clock.Set(campaign.EndTime + 1)
	payout, err := s.engine.Refund(s.ctx, s.donor, campaign.ID)
	s.Require().NoError(err)
	s.Assert().Equal(uint64(25), payout.Amount)
}

// TestRefundMultipleDonors refunds every donor independently.
func (s *EngineSuite) TestRefundMultipleDonors() {
	s.initialize(50)
	donors := unittest.IdentifierListFixture(3)
	campaign := s.createCampaign(30, 70)
	for i, donor := range donors {
		amount := uint64(10 * (i + 1))
		s.fund(donor, amount)
		s.donate(donor, campaign.ID, amount)
	}
	s.Assert().Equal(uint64(60), s.vault(campaign.ID))

	s.clock.Set(campaign.EndTime + 1)
	for i, donor := range donors {
		payout, err := s.engine.Refund(s.ctx, donor, campaign.ID)
		s.Require().NoError(err)
		s.Assert().Equal(uint64(10*(i+1)), payout.Amount)
		s.Assert().Equal(payout.Amount, s.balance(donor))
	}
	s.Assert().Equal(uint64(0), s.vault(campaign.ID))
}
