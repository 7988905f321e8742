package custody_test

import (
	"github.com/onflow/flow-crowdfund/custody"
	"github.com/onflow/flow-crowdfund/custody/errors"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/utils/unittest"
)

func custodyFilter() custody.CampaignFilter {
	return custody.CampaignFilter{}
}

func (s *EngineSuite) TestCampaignQueries() {
	s.initialize(0)
	s.fund(s.donor, 200)

	active := s.createCampaign(100)
	s.clock.Set(10)
	funded := s.createCampaign(50)
	s.donate(s.donor, funded.ID, 50)
	s.clock.Set(20)
	completed := s.createCampaign(25)
	s.donate(s.donor, completed.ID, 25)
	_, err := s.engine.Release(s.ctx, s.creator, completed.ID, 0)
	s.Require().NoError(err)

	otherCreator := unittest.IdentifierFixture()
	foreign, err := s.engine.CreateCampaign(s.ctx, otherCreator, campaignSpec(5, 10))
	s.Require().NoError(err)

	all, err := s.engine.Campaigns(s.ctx, custodyFilter())
	s.Require().NoError(err)
	s.Require().Len(all, 4)
	s.Assert().Equal(active.ID, all[0].ID)
	s.Assert().Equal(funded.ID, all[1].ID)

	mine, err := s.engine.Campaigns(s.ctx, custody.CampaignFilter{Creator: &s.creator})
	s.Require().NoError(err)
	s.Assert().Len(mine, 3)

	status := crowdfund.StatusFunded
	byStatus, err := s.engine.Campaigns(s.ctx, custody.CampaignFilter{Status: &status})
	s.Require().NoError(err)
	s.Require().Len(byStatus, 1)
	s.Assert().Equal(funded.ID, byStatus[0].ID)

	status = crowdfund.StatusCompleted
	byStatus, err = s.engine.Campaigns(s.ctx, custody.CampaignFilter{Status: &status})
	s.Require().NoError(err)
	s.Require().Len(byStatus, 1)
	s.Assert().Equal(completed.ID, byStatus[0].ID)

	s.clock.Set(foreign.EndTime + 1)
	status = crowdfund.StatusFailed
	byStatus, err = s.engine.Campaigns(s.ctx, custody.CampaignFilter{Creator: &otherCreator, Status: &status})
	s.Require().NoError(err)
	s.Require().Len(byStatus, 1)
	s.Assert().Equal(foreign.ID, byStatus[0].ID)

	receipts, err := s.engine.ReceiptsByDonor(s.ctx, s.donor)
	s.Require().NoError(err)
	s.Assert().Len(receipts, 2)

	_, err = s.engine.CampaignEvents(s.ctx, unittest.IdentifierFixture())
	s.requireCode(err, errors.ErrCodeCampaignNotFound)
	_, err = s.engine.VaultBalance(s.ctx, unittest.IdentifierFixture())
	s.requireCode(err, errors.ErrCodeCampaignNotFound)

	s.Assert().Equal(uint64(0), s.balance(unittest.IdentifierFixture()))
	s.Assert().Equal(s.clock.Now(), s.engine.Now())
}
