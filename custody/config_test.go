package custody_test

import (
	"github.com/onflow/flow-crowdfund/custody/errors"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/utils/unittest"
)

func (s *EngineSuite) TestInitialize() {
	_, err := s.engine.Config(s.ctx)
	s.requireCode(err, errors.ErrCodeConfigNotInitialized)

	err = s.engine.Initialize(s.ctx, crowdfund.ZeroID, 50)
	s.requireCode(err, errors.ErrCodeInvalidArgument)
	err = s.engine.Initialize(s.ctx, s.authority, -1)
	s.requireCode(err, errors.ErrCodeInvalidArgument)

	s.initialize(50)
	cfg, err := s.engine.Config(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(s.authority, cfg.Authority)
	s.Assert().Equal(int64(50), cfg.DisputeWindowSeconds)
	s.consumer.AssertCalled(s.T(), "OnConfigUpdated", *cfg)

	err = s.engine.Initialize(s.ctx, unittest.IdentifierFixture(), 10)
	s.requireCode(err, errors.ErrCodeConfigInitialized)
}

func (s *EngineSuite) TestOperationsRequireConfig() {
	_, err := s.engine.CreateCampaign(s.ctx, s.creator, campaignSpec(1000, 100))
	s.requireCode(err, errors.ErrCodeConfigNotInitialized)

	err = s.engine.UpdateAuthority(s.ctx, s.authority, unittest.IdentifierFixture())
	s.requireCode(err, errors.ErrCodeConfigNotInitialized)

	err = s.engine.UpdateDisputeWindow(s.ctx, s.authority, 10)
	s.requireCode(err, errors.ErrCodeConfigNotInitialized)

	err = s.engine.LockCampaign(s.ctx, s.authority, unittest.IdentifierFixture(), true)
	s.requireCode(err, errors.ErrCodeConfigNotInitialized)

	err = s.engine.FundAccount(s.ctx, s.authority, s.donor, 10)
	s.requireCode(err, errors.ErrCodeConfigNotInitialized)
}

func (s *EngineSuite) TestUpdateAuthority() {
	s.initialize(50)
	successor := unittest.IdentifierFixture()

	err := s.engine.UpdateAuthority(s.ctx, successor, successor)
	s.requireCode(err, errors.ErrCodeUnAuthorized)

	err = s.engine.UpdateAuthority(s.ctx, s.authority, crowdfund.ZeroID)
	s.requireCode(err, errors.ErrCodeConfigLocked)

	s.Require().NoError(s.engine.UpdateAuthority(s.ctx, s.authority, successor))
	cfg, err := s.engine.Config(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(successor, cfg.Authority)
	s.Assert().Equal(int64(50), cfg.DisputeWindowSeconds)

	// the previous authority lost its rights
	err = s.engine.UpdateDisputeWindow(s.ctx, s.authority, 10)
	s.requireCode(err, errors.ErrCodeUnAuthorized)
	s.Require().NoError(s.engine.UpdateDisputeWindow(s.ctx, successor, 10))
}

func (s *EngineSuite) TestUpdateDisputeWindow() {
	s.initialize(50)

	err := s.engine.UpdateDisputeWindow(s.ctx, s.creator, 10)
	s.requireCode(err, errors.ErrCodeUnAuthorized)

	err = s.engine.UpdateDisputeWindow(s.ctx, s.authority, -5)
	s.requireCode(err, errors.ErrCodeInvalidArgument)

	s.Require().NoError(s.engine.UpdateDisputeWindow(s.ctx, s.authority, 0))
	cfg, err := s.engine.Config(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(int64(0), cfg.DisputeWindowSeconds)
	s.consumer.AssertNumberOfCalls(s.T(), "OnConfigUpdated", 2)
}
