package keeper_test

import (
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
)

// Helper function to configure a path with the given quotas
func (s *KeeperTestSuite) setupPath(quotas ...types.Quota) types.Path {
	path := types.NewPath("transfer", "channel-0", "uatom")
	err := s.keeper.AddPath(s.ctx, path, quotas)
	s.Require().NoError(err)
	return path
}

func (s *KeeperTestSuite) TestApplyTransferUnconfiguredPath() {
	path := types.NewPath("transfer", "channel-0", "uatom")

	err := s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(1_000_000_000))
	s.Require().NoError(err)

	_, found := s.keeper.GetPathLimits(s.ctx, path)
	s.Require().False(found, "an unconfigured path must not be written on transfer")
}

func (s *KeeperTestSuite) TestApplyTransferConsumesAllowance() {
	path := s.setupPath(types.NewQuota("weekly", sdkmath.NewUint(1000), sdkmath.NewUint(1000), 604800))

	// Fill the window to the cap exactly
	s.Require().NoError(s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(999)))
	s.Require().NoError(s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(1)))

	// One unit past the cap is rejected
	err := s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(1))
	s.Require().ErrorIs(err, types.ErrRateLimitExceeded)

	// The rejected transfer left no trace
	pathLimits, found := s.keeper.GetPathLimits(s.ctx, path)
	s.Require().True(found)
	s.Require().True(pathLimits.Limits[0].Flow.Outflow.Equal(sdkmath.NewUint(1000)))
}

func (s *KeeperTestSuite) TestApplyTransferNetsDirections() {
	path := s.setupPath(types.NewQuota("asymmetric", sdkmath.NewUint(400000), sdkmath.NewUint(100000), 604800))

	s.Require().NoError(s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(400000)))

	// A receive nets against the recorded sends and frees send headroom
	s.Require().NoError(s.keeper.ApplyTransfer(s.ctx, path, types.FlowIn, sdkmath.NewUint(100000)))
	s.Require().NoError(s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(100000)))

	// The send cap is now exactly consumed again
	err := s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(1))
	s.Require().ErrorIs(err, types.ErrRateLimitExceeded)

	// Receives stay open: net inflow floors at zero against the larger outflow
	s.Require().NoError(s.keeper.ApplyTransfer(s.ctx, path, types.FlowIn, sdkmath.NewUint(100000)))

	// And that receive freed the send direction once more
	s.Require().NoError(s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(100000)))
}

func (s *KeeperTestSuite) TestApplyTransferRollsExpiredWindow() {
	path := s.setupPath(types.NewQuota("weekly", sdkmath.NewUint(1000), sdkmath.NewUint(1000), 604800))

	s.Require().NoError(s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(300)))

	// Inside the window the next large transfer is rejected
	s.advanceTime(1000 * time.Second)
	err := s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(800))
	s.Require().ErrorIs(err, types.ErrRateLimitExceeded)

	// One second past the period end the window rolls and the same
	// transfer is admitted against a fresh window
	s.advanceTime(603801 * time.Second)
	s.Require().NoError(s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(800)))

	pathLimits, found := s.keeper.GetPathLimits(s.ctx, path)
	s.Require().True(found)

	flow := pathLimits.Limits[0].Flow
	s.Require().True(flow.Outflow.Equal(sdkmath.NewUint(800)), "the rolled window starts from the new transfer alone")
	s.Require().Equal(s.ctx.BlockTime().Add(604800*time.Second), flow.PeriodEnd, "the new window is anchored at the observation time")
}

func (s *KeeperTestSuite) TestApplyTransferAllOrNothing() {
	// The looser quota sits first in the list, so it admits and records
	// the transfer in memory before the tighter quota rejects it.
	weekly := types.NewQuota("weekly", sdkmath.NewUint(500), sdkmath.NewUint(500), 604800)
	daily := types.NewQuota("daily", sdkmath.NewUint(100), sdkmath.NewUint(100), 86400)
	path := s.setupPath(weekly, daily)

	s.Require().NoError(s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(80)))

	err := s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(90))
	s.Require().ErrorIs(err, types.ErrRateLimitExceeded)

	pathLimits, found := s.keeper.GetPathLimits(s.ctx, path)
	s.Require().True(found)
	s.Require().True(pathLimits.Limits[0].Flow.Outflow.Equal(sdkmath.NewUint(80)), "the weekly quota must not keep a transfer rejected by the daily quota")
	s.Require().True(pathLimits.Limits[1].Flow.Outflow.Equal(sdkmath.NewUint(80)))
}

func (s *KeeperTestSuite) TestApplyTransferTighterWindowGates() {
	daily := types.NewQuota("daily", sdkmath.NewUint(100), sdkmath.NewUint(100), 86400)
	weekly := types.NewQuota("weekly", sdkmath.NewUint(500), sdkmath.NewUint(500), 604800)
	path := s.setupPath(daily, weekly)

	// Five consecutive days fill the weekly cap at the daily pace
	for day := 0; day < 5; day++ {
		s.Require().NoError(s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(100)), "day %d", day)

		// A second transfer the same day trips the daily quota
		err := s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(1))
		s.Require().ErrorIs(err, types.ErrRateLimitExceeded)

		s.advanceTime(86401 * time.Second)
	}

	// On day six the daily window is fresh but the weekly cap is spent
	err := s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(1))
	s.Require().ErrorIs(err, types.ErrRateLimitExceeded)

	pathLimits, found := s.keeper.GetPathLimits(s.ctx, path)
	s.Require().True(found)
	s.Require().True(pathLimits.Limits[1].Flow.Outflow.Equal(sdkmath.NewUint(500)))
}

func (s *KeeperTestSuite) TestUndoTransferRestoresAllowance() {
	path := s.setupPath(types.NewQuota("weekly", sdkmath.NewUint(1000), sdkmath.NewUint(1000), 604800))

	s.Require().NoError(s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(1000)))

	// The cap is spent
	err := s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(1))
	s.Require().ErrorIs(err, types.ErrRateLimitExceeded)

	// Reversing the transfer restores the full allowance
	s.Require().NoError(s.keeper.UndoTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(1000)))
	s.Require().NoError(s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(1000)))
}

func (s *KeeperTestSuite) TestUndoTransferFloorsAtZero() {
	path := s.setupPath(types.NewQuota("weekly", sdkmath.NewUint(1000), sdkmath.NewUint(1000), 604800))

	s.Require().NoError(s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(100)))
	s.Require().NoError(s.keeper.UndoTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(500)))

	pathLimits, found := s.keeper.GetPathLimits(s.ctx, path)
	s.Require().True(found)
	s.Require().True(pathLimits.Limits[0].Flow.Outflow.IsZero())
}

func (s *KeeperTestSuite) TestUndoTransferUnconfiguredPathNoop() {
	err := s.keeper.UndoTransfer(s.ctx, types.NewPath("transfer", "channel-0", "uatom"), types.FlowOut, sdkmath.NewUint(100))
	s.Require().NoError(err)
}

func (s *KeeperTestSuite) TestUndoTransferDoesNotRollExpiredWindow() {
	path := s.setupPath(types.NewQuota("weekly", sdkmath.NewUint(1000), sdkmath.NewUint(1000), 604800))

	s.Require().NoError(s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(300)))

	// The undo lands after the window expired. It must neither roll the
	// window nor drive the flow negative.
	s.advanceTime(604801 * time.Second)
	s.Require().NoError(s.keeper.UndoTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(300)))

	pathLimits, found := s.keeper.GetPathLimits(s.ctx, path)
	s.Require().True(found)

	flow := pathLimits.Limits[0].Flow
	s.Require().True(flow.Outflow.IsZero())
	s.Require().Equal(testStartTime.Add(604800*time.Second), flow.PeriodEnd, "an undo never opens a new window")
}
