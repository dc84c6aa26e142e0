package keeper_test

import (
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
)

func (s *KeeperTestSuite) TestInitExportGenesis() {
	path := types.NewPath(transferPort, sourceChannel, uatom)
	quota := types.NewQuota("weekly", sdkmath.NewUint(1000), sdkmath.NewUint(1000), 604800)

	// In-flight flows survive the genesis round-trip untouched
	limit := types.NewRateLimit(quota, testStartTime)
	limit.Flow.Outflow = sdkmath.NewUint(250)

	genesisState := types.NewGenesisState(
		types.NewParams(false),
		[]types.PathLimits{types.NewPathLimits(path, []types.RateLimit{limit})},
	)
	s.Require().NoError(genesisState.Validate())

	s.keeper.InitGenesis(s.ctx, *genesisState)

	s.Require().False(s.keeper.IsEnabled(s.ctx))

	pathLimits, found := s.keeper.GetPathLimits(s.ctx, path)
	s.Require().True(found, "element should have been found, but was not")
	s.Require().True(pathLimits.Limits[0].Flow.Outflow.Equal(sdkmath.NewUint(250)), "outflow")
	s.Require().Equal(testStartTime.Add(604800*time.Second), pathLimits.Limits[0].Flow.PeriodEnd, "period end")

	exported := s.keeper.ExportGenesis(s.ctx)
	s.Require().Equal(genesisState.Params, exported.Params)
	s.Require().ElementsMatch(genesisState.PathLimits, exported.PathLimits)
}

func (s *KeeperTestSuite) TestExportGenesisEmpty() {
	exported := s.keeper.ExportGenesis(s.ctx)
	s.Require().Equal(types.DefaultParams(), exported.Params)
	s.Require().Empty(exported.PathLimits)
}
