package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/ibc-go/modules/rate-limiter/keeper"
	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
	ibcerrors "github.com/cosmos/ibc-go/v10/modules/core/errors"
)

func (s *KeeperTestSuite) TestMsgServer_AddPath() {
	msgServer := keeper.NewMsgServerImpl(s.keeper)
	path := types.NewPath(transferPort, sourceChannel, uatom)
	quotas := []types.Quota{
		types.NewQuota("daily", sdkmath.NewUint(100), sdkmath.NewUint(100), 86400),
		types.NewQuota("weekly", sdkmath.NewUint(500), sdkmath.NewUint(500), 604800),
	}

	resp, err := msgServer.AddPath(s.ctx, types.NewMsgAddPath(authority, path, quotas))
	s.Require().NoError(err)
	s.Require().NotNil(resp)

	pathLimits, found := s.keeper.GetPathLimits(s.ctx, path)
	s.Require().True(found)
	s.Require().Len(pathLimits.Limits, 2)

	// Duplicate quota names within the list are refused
	dupQuotas := []types.Quota{
		types.NewQuota("daily", sdkmath.NewUint(100), sdkmath.NewUint(100), 86400),
		types.NewQuota("daily", sdkmath.NewUint(10), sdkmath.NewUint(10), 3600),
	}
	_, err = msgServer.AddPath(s.ctx, types.NewMsgAddPath(authority, path, dupQuotas))
	s.Require().ErrorIs(err, types.ErrInvalidQuota)

	// Verify that signer == authority required
	_, err = msgServer.AddPath(s.ctx, types.NewMsgAddPath("", path, quotas))
	s.Require().ErrorIs(err, ibcerrors.ErrUnauthorized)
}

func (s *KeeperTestSuite) TestMsgServer_RemovePath() {
	msgServer := keeper.NewMsgServerImpl(s.keeper)
	path := s.setupPath(types.NewQuota("weekly", sdkmath.NewUint(1000), sdkmath.NewUint(1000), 604800))

	_, err := msgServer.RemovePath(s.ctx, types.NewMsgRemovePath(authority, path))
	s.Require().NoError(err)

	_, found := s.keeper.GetPathLimits(s.ctx, path)
	s.Require().False(found)

	// Removing an absent path stays a no-op
	_, err = msgServer.RemovePath(s.ctx, types.NewMsgRemovePath(authority, path))
	s.Require().NoError(err)

	// Verify that signer == authority required
	_, err = msgServer.RemovePath(s.ctx, types.NewMsgRemovePath("", path))
	s.Require().ErrorIs(err, ibcerrors.ErrUnauthorized)
}

func (s *KeeperTestSuite) TestMsgServer_ResetPathQuota() {
	msgServer := keeper.NewMsgServerImpl(s.keeper)
	path := s.setupPath(types.NewQuota("weekly", sdkmath.NewUint(1000), sdkmath.NewUint(1000), 604800))
	s.Require().NoError(s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(600)))

	_, err := msgServer.ResetPathQuota(s.ctx, types.NewMsgResetPathQuota(authority, path, "weekly"))
	s.Require().NoError(err)

	pathLimits, found := s.keeper.GetPathLimits(s.ctx, path)
	s.Require().True(found)
	s.Require().True(pathLimits.Limits[0].Flow.Outflow.IsZero(), "outflow reset")

	// Unknown quota names are refused
	_, err = msgServer.ResetPathQuota(s.ctx, types.NewMsgResetPathQuota(authority, path, "monthly"))
	s.Require().ErrorIs(err, types.ErrQuotaNotFound)

	// Verify that signer == authority required
	_, err = msgServer.ResetPathQuota(s.ctx, types.NewMsgResetPathQuota("", path, "weekly"))
	s.Require().ErrorIs(err, ibcerrors.ErrUnauthorized)
}

func (s *KeeperTestSuite) TestMsgServer_UpdateParams() {
	msgServer := keeper.NewMsgServerImpl(s.keeper)

	_, err := msgServer.UpdateParams(s.ctx, types.NewMsgUpdateParams(authority, types.NewParams(false)))
	s.Require().NoError(err)
	s.Require().False(s.keeper.IsEnabled(s.ctx))

	_, err = msgServer.UpdateParams(s.ctx, types.NewMsgUpdateParams(authority, types.NewParams(true)))
	s.Require().NoError(err)
	s.Require().True(s.keeper.IsEnabled(s.ctx))

	// Verify that signer == authority required
	_, err = msgServer.UpdateParams(s.ctx, types.NewMsgUpdateParams("", types.NewParams(false)))
	s.Require().ErrorIs(err, ibcerrors.ErrUnauthorized)
}
