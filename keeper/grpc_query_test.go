package keeper_test

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
)

func (s *KeeperTestSuite) TestQueryPathLimits() {
	var (
		req           *types.QueryPathLimitsRequest
		expPathLimits types.PathLimits
	)

	testCases := []struct {
		msg      string
		malleate func()
		expPass  bool
	}{
		{
			"success",
			func() {
				path := s.setupPath(types.NewQuota("weekly", sdkmath.NewUint(1000), sdkmath.NewUint(1000), 604800))

				var found bool
				expPathLimits, found = s.keeper.GetPathLimits(s.ctx, path)
				s.Require().True(found)

				req = &types.QueryPathLimitsRequest{
					Owner:     path.Owner,
					ChannelId: path.ChannelId,
					Denom:     path.Denom,
				}
			},
			true,
		},
		{
			"success: empty quota list",
			func() {
				path := s.setupPath()

				var found bool
				expPathLimits, found = s.keeper.GetPathLimits(s.ctx, path)
				s.Require().True(found)

				req = &types.QueryPathLimitsRequest{
					Owner:     path.Owner,
					ChannelId: path.ChannelId,
					Denom:     path.Denom,
				}
			},
			true,
		},
		{
			"failure: path not configured",
			func() {
				req = &types.QueryPathLimitsRequest{
					Owner:     transferPort,
					ChannelId: sourceChannel,
					Denom:     uatom,
				}
			},
			false,
		},
		{
			"failure: invalid owner",
			func() {
				req = &types.QueryPathLimitsRequest{
					Owner:     "",
					ChannelId: sourceChannel,
					Denom:     uatom,
				}
			},
			false,
		},
		{
			"failure: nil request",
			func() {
				req = nil
			},
			false,
		},
	}

	for _, tc := range testCases {
		s.Run(fmt.Sprintf("Case %s", tc.msg), func() {
			s.SetupTest() // reset

			tc.malleate()

			res, err := s.keeper.PathLimits(s.ctx, req)
			if tc.expPass {
				s.Require().NoError(err)
				s.Require().NotNil(res)
				s.Require().Equal(expPathLimits, res.PathLimits)
			} else {
				s.Require().Error(err)
			}
		})
	}
}

func (s *KeeperTestSuite) TestQueryAllPathLimits() {
	expectedPathLimits := s.createPathLimits()

	res, err := s.keeper.AllPathLimits(s.ctx, &types.QueryAllPathLimitsRequest{})
	s.Require().NoError(err)
	s.Require().ElementsMatch(expectedPathLimits, res.PathLimits, "all path limits")

	_, err = s.keeper.AllPathLimits(s.ctx, nil)
	s.Require().Error(err)
}

func (s *KeeperTestSuite) TestQueryPathLimitsByChannel() {
	// Two paths share a channel and a third sits on its own
	quota := types.NewQuota("weekly", sdkmath.NewUint(1000), sdkmath.NewUint(1000), 604800)
	paths := []types.Path{
		types.NewPath(transferPort, sourceChannel, uatom),
		types.NewPath(transferPort, sourceChannel, "uosmo"),
		types.NewPath(transferPort, destChannel, uatom),
	}
	for _, path := range paths {
		s.Require().NoError(s.keeper.AddPath(s.ctx, path, []types.Quota{quota}))
	}

	res, err := s.keeper.PathLimitsByChannel(s.ctx, &types.QueryPathLimitsByChannelRequest{ChannelId: sourceChannel})
	s.Require().NoError(err)
	s.Require().Len(res.PathLimits, 2)
	for _, pl := range res.PathLimits {
		s.Require().Equal(sourceChannel, pl.Path.ChannelId)
	}

	// A channel with no configured paths returns an empty list
	res, err = s.keeper.PathLimitsByChannel(s.ctx, &types.QueryPathLimitsByChannelRequest{ChannelId: "channel-99"})
	s.Require().NoError(err)
	s.Require().Empty(res.PathLimits)

	_, err = s.keeper.PathLimitsByChannel(s.ctx, &types.QueryPathLimitsByChannelRequest{ChannelId: ""})
	s.Require().Error(err)

	_, err = s.keeper.PathLimitsByChannel(s.ctx, nil)
	s.Require().Error(err)
}

func (s *KeeperTestSuite) TestQueryParams() {
	res, err := s.keeper.Params(s.ctx, &types.QueryParamsRequest{})
	s.Require().NoError(err)
	s.Require().True(res.Params.Enabled)

	s.keeper.SetParams(s.ctx, types.NewParams(false))

	res, err = s.keeper.Params(s.ctx, &types.QueryParamsRequest{})
	s.Require().NoError(err)
	s.Require().False(res.Params.Enabled)

	_, err = s.keeper.Params(s.ctx, nil)
	s.Require().Error(err)
}
