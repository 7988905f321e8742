package custody_test

import (
	"github.com/onflow/flow-crowdfund/custody/errors"
	"github.com/onflow/flow-crowdfund/utils/unittest"
)

// TestReleaseCheckOrder verifies that when several release preconditions fail
// at once, the first one in the documented order is reported.
func (s *EngineSuite) TestReleaseCheckOrder() {
	s.initialize(50)
	s.fund(s.donor, 100)
	campaign := s.createCampaign(30, 70)
	stranger := unittest.IdentifierFixture()

	s.Require().NoError(s.engine.LockCampaign(s.ctx, s.authority, campaign.ID, true))

	// locked, invalid index, target not reached
	_, err := s.engine.Release(s.ctx, stranger, campaign.ID, 7)
	s.requireCode(err, errors.ErrCodeUnAuthorized)
	_, err = s.engine.Release(s.ctx, s.creator, campaign.ID, 7)
	s.requireCode(err, errors.ErrCodeCampaignLocked)

	s.Require().NoError(s.engine.LockCampaign(s.ctx, s.authority, campaign.ID, false))

	_, err = s.engine.Release(s.ctx, s.creator, campaign.ID, 7)
	s.requireCode(err, errors.ErrCodeInvalidMilestone)
	_, err = s.engine.Release(s.ctx, s.creator, campaign.ID, 2)
	s.requireCode(err, errors.ErrCodeInvalidMilestone)
	_, err = s.engine.Release(s.ctx, s.creator, campaign.ID, 1)
	s.requireCode(err, errors.ErrCodeTargetNotReached)

	s.donate(s.donor, campaign.ID, 100)

	// predecessor not released and dispute window open
	_, err = s.engine.Release(s.ctx, s.creator, campaign.ID, 1)
	s.requireCode(err, errors.ErrCodeMilestoneNotReady)
	_, err = s.engine.Release(s.ctx, s.creator, campaign.ID, 0)
	s.requireCode(err, errors.ErrCodeDisputeWindowOpen)

	s.clock.Set(50)
	_, err = s.engine.Release(s.ctx, s.creator, campaign.ID, 0)
	s.Require().NoError(err)

	// already released and dispute window open
	_, err = s.engine.Release(s.ctx, s.creator, campaign.ID, 0)
	s.requireCode(err, errors.ErrCodeAlreadyReleased)

	s.Assert().Equal(uint64(70), s.vault(campaign.ID))
	s.Assert().Equal(uint64(30), s.balance(s.creator))
}

func (s *EngineSuite) TestReleaseRequiresConfigAndCampaign() {
	_, err := s.engine.Release(s.ctx, s.creator, unittest.IdentifierFixture(), 0)
	s.requireCode(err, errors.ErrCodeConfigNotInitialized)

	s.initialize(50)
	_, err = s.engine.Release(s.ctx, s.creator, unittest.IdentifierFixture(), 0)
	s.requireCode(err, errors.ErrCodeCampaignNotFound)
}

// TestReleaseAfterDeadline verifies that a funded campaign keeps paying out
// after its donation window closed.
func (s *EngineSuite) TestReleaseAfterDeadline() {
	s.initialize(50)
	s.fund(s.donor, 100)
	campaign := s.createCampaign(100)
	s.donate(s.donor, campaign.ID, 100)

	s.clock.Set(campaign.EndTime + 500)
	payout, err := s.engine.Release(s.ctx, s.creator, campaign.ID, 0)
	s.Require().NoError(err)
	s.Assert().Equal(uint64(100), payout.Amount)
}

// TestReleaseWindowFollowsDisputeWindowUpdates verifies that the window is
// read from the configuration at release time.
func (s *EngineSuite) TestReleaseWindowFollowsDisputeWindowUpdates() {
	s.initialize(1000)
	s.fund(s.donor, 100)
	campaign := s.createCampaign(30, 70)
	s.donate(s.donor, campaign.ID, 100)

	s.clock.Set(100)
	_, err := s.engine.Release(s.ctx, s.creator, campaign.ID, 0)
	s.requireCode(err, errors.ErrCodeDisputeWindowOpen)

	s.Require().NoError(s.engine.UpdateDisputeWindow(s.ctx, s.authority, 100))
	_, err = s.engine.Release(s.ctx, s.creator, campaign.ID, 0)
	s.Require().NoError(err)
}
