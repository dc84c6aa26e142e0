package keeper_test

import (
	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
)

func (s *KeeperTestSuite) TestParams() {
	// A fresh store returns the defaults
	params := s.keeper.GetParams(s.ctx)
	s.Require().Equal(types.DefaultParams(), params)
	s.Require().True(s.keeper.IsEnabled(s.ctx))

	// Disabled params marshal to an empty value, which must survive a
	// round-trip without falling back to the defaults
	s.keeper.SetParams(s.ctx, types.NewParams(false))
	params = s.keeper.GetParams(s.ctx)
	s.Require().False(params.Enabled)
	s.Require().False(s.keeper.IsEnabled(s.ctx))

	s.keeper.SetParams(s.ctx, types.NewParams(true))
	s.Require().True(s.keeper.IsEnabled(s.ctx))
}
