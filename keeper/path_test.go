package keeper_test

import (
	"strconv"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
)

// Helper function to create 5 path limit objects with various paths
func (s *KeeperTestSuite) createPathLimits() []types.PathLimits {
	allPathLimits := []types.PathLimits{}
	for i := 1; i <= 5; i++ {
		suffix := strconv.Itoa(i)
		path := types.NewPath("transfer", "channel-"+suffix, "denom-"+suffix)
		quota := types.NewQuota("weekly", sdkmath.NewUint(1000), sdkmath.NewUint(1000), 604800)

		pathLimits := types.NewPathLimits(path, []types.RateLimit{types.NewRateLimit(quota, s.ctx.BlockTime())})
		s.keeper.SetPathLimits(s.ctx, pathLimits)

		allPathLimits = append(allPathLimits, pathLimits)
	}
	return allPathLimits
}

func (s *KeeperTestSuite) TestGetPathLimits() {
	allPathLimits := s.createPathLimits()

	expectedPathLimits := allPathLimits[0]
	actualPathLimits, found := s.keeper.GetPathLimits(s.ctx, expectedPathLimits.Path)
	s.Require().True(found, "element should have been found, but was not")
	s.Require().Equal(expectedPathLimits, actualPathLimits)

	_, found = s.keeper.GetPathLimits(s.ctx, types.NewPath("transfer", "channel-99", "denom-99"))
	s.Require().False(found, "an unconfigured path should not have been found, but it was")
}

func (s *KeeperTestSuite) TestRemovePathLimits() {
	allPathLimits := s.createPathLimits()

	pathToRemove := allPathLimits[0].Path
	s.keeper.RemovePathLimits(s.ctx, pathToRemove)

	_, found := s.keeper.GetPathLimits(s.ctx, pathToRemove)
	s.Require().False(found, "the removed element should not have been found, but it was")
}

func (s *KeeperTestSuite) TestGetAllPathLimits() {
	expectedPathLimits := s.createPathLimits()
	actualPathLimits := s.keeper.GetAllPathLimits(s.ctx)
	s.Require().Len(actualPathLimits, len(expectedPathLimits))
	s.Require().ElementsMatch(expectedPathLimits, actualPathLimits, "all path limits")
}

func (s *KeeperTestSuite) TestAddPath() {
	path := types.NewPath("transfer", "channel-0", "uatom")
	quotas := []types.Quota{
		types.NewQuota("daily", sdkmath.NewUint(100), sdkmath.NewUint(100), 86400),
		types.NewQuota("weekly", sdkmath.NewUint(500), sdkmath.NewUint(500), 604800),
	}

	err := s.keeper.AddPath(s.ctx, path, quotas)
	s.Require().NoError(err)

	pathLimits, found := s.keeper.GetPathLimits(s.ctx, path)
	s.Require().True(found, "element should have been found, but was not")
	s.Require().Len(pathLimits.Limits, 2)

	// Windows open at the block time with zeroed flows
	for _, limit := range pathLimits.Limits {
		s.Require().True(limit.Flow.Inflow.IsZero())
		s.Require().True(limit.Flow.Outflow.IsZero())
		expectedPeriodEnd := s.ctx.BlockTime().Add(time.Duration(limit.Quota.DurationSeconds) * time.Second)
		s.Require().Equal(expectedPeriodEnd, limit.Flow.PeriodEnd)
	}
}

func (s *KeeperTestSuite) TestAddPathOverwritesInFlightWindows() {
	path := types.NewPath("transfer", "channel-0", "uatom")
	quota := types.NewQuota("weekly", sdkmath.NewUint(1000), sdkmath.NewUint(1000), 604800)

	err := s.keeper.AddPath(s.ctx, path, []types.Quota{quota})
	s.Require().NoError(err)

	// Record some usage against the window
	err = s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(700))
	s.Require().NoError(err)

	// Re-adding the path discards the in-flight window wholesale
	err = s.keeper.AddPath(s.ctx, path, []types.Quota{quota})
	s.Require().NoError(err)

	pathLimits, found := s.keeper.GetPathLimits(s.ctx, path)
	s.Require().True(found)
	s.Require().True(pathLimits.Limits[0].Flow.Outflow.IsZero(), "outflow should have been reset to 0")
}

func (s *KeeperTestSuite) TestAddPathEmptyQuotaList() {
	path := types.NewPath("transfer", "channel-0", "uatom")

	err := s.keeper.AddPath(s.ctx, path, []types.Quota{})
	s.Require().NoError(err)

	pathLimits, found := s.keeper.GetPathLimits(s.ctx, path)
	s.Require().True(found, "a path with an empty quota list is still configured")
	s.Require().Empty(pathLimits.Limits)
}

func (s *KeeperTestSuite) TestAddPathInvalidQuotas() {
	path := types.NewPath("transfer", "channel-0", "uatom")
	quotas := []types.Quota{
		types.NewQuota("weekly", sdkmath.NewUint(1000), sdkmath.NewUint(1000), 604800),
		types.NewQuota("weekly", sdkmath.NewUint(500), sdkmath.NewUint(500), 86400),
	}

	err := s.keeper.AddPath(s.ctx, path, quotas)
	s.Require().ErrorIs(err, types.ErrInvalidQuota)

	_, found := s.keeper.GetPathLimits(s.ctx, path)
	s.Require().False(found, "nothing should have been stored for a rejected configuration")
}

func (s *KeeperTestSuite) TestRemovePath() {
	allPathLimits := s.createPathLimits()

	pathToRemove := allPathLimits[0].Path
	s.keeper.RemovePath(s.ctx, pathToRemove)

	_, found := s.keeper.GetPathLimits(s.ctx, pathToRemove)
	s.Require().False(found, "the removed element should not have been found, but it was")

	// Removing an absent path is a no-op
	s.keeper.RemovePath(s.ctx, types.NewPath("transfer", "channel-99", "denom-99"))
}

func (s *KeeperTestSuite) TestResetPathQuota() {
	path := types.NewPath("transfer", "channel-0", "uatom")
	quotas := []types.Quota{
		types.NewQuota("daily", sdkmath.NewUint(100), sdkmath.NewUint(100), 86400),
		types.NewQuota("weekly", sdkmath.NewUint(500), sdkmath.NewUint(500), 604800),
	}

	err := s.keeper.AddPath(s.ctx, path, quotas)
	s.Require().NoError(err)

	// Consume some allowance on both quotas
	err = s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(90))
	s.Require().NoError(err)

	// Reset only the daily quota at a later block time
	s.advanceTime(1000 * time.Second)
	err = s.keeper.ResetPathQuota(s.ctx, path, "daily")
	s.Require().NoError(err)

	pathLimits, found := s.keeper.GetPathLimits(s.ctx, path)
	s.Require().True(found)

	daily := pathLimits.Limits[0]
	s.Require().True(daily.Flow.Outflow.IsZero(), "daily outflow should have been reset to 0")
	s.Require().Equal(s.ctx.BlockTime().Add(86400*time.Second), daily.Flow.PeriodEnd)

	weekly := pathLimits.Limits[1]
	s.Require().True(weekly.Flow.Outflow.Equal(sdkmath.NewUint(90)), "weekly outflow should have been left untouched")
	s.Require().Equal(testStartTime.Add(604800*time.Second), weekly.Flow.PeriodEnd)
}

func (s *KeeperTestSuite) TestResetPathQuotaNotFound() {
	path := types.NewPath("transfer", "channel-0", "uatom")

	// Unconfigured path
	err := s.keeper.ResetPathQuota(s.ctx, path, "daily")
	s.Require().ErrorIs(err, types.ErrQuotaNotFound)

	// Configured path, but no quota with the given name
	err = s.keeper.AddPath(s.ctx, path, []types.Quota{
		types.NewQuota("weekly", sdkmath.NewUint(500), sdkmath.NewUint(500), 604800),
	})
	s.Require().NoError(err)

	err = s.keeper.ResetPathQuota(s.ctx, path, "daily")
	s.Require().ErrorIs(err, types.ErrQuotaNotFound)
}
