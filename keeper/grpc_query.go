package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-go/modules/rate-limiter/internal/validate"
	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
)

var _ types.QueryServer = Keeper{}

// Query the rate limits for a single path. A path that was never
// configured returns a NotFound error; a path configured with an empty
// quota list returns the empty list.
func (k Keeper) PathLimits(c context.Context, req *types.QueryPathLimitsRequest) (*types.QueryPathLimitsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	if err := validate.GRPCPathRequest(req.Owner, req.ChannelId); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(c)

	path := types.NewPath(req.Owner, req.ChannelId, req.Denom)
	pathLimits, found := k.GetPathLimits(ctx, path)
	if !found {
		return nil, status.Error(codes.NotFound, errorsmod.Wrap(types.ErrPathNotFound, string(path.Key())).Error())
	}

	return &types.QueryPathLimitsResponse{PathLimits: pathLimits}, nil
}

// Query all configured path limits
func (k Keeper) AllPathLimits(c context.Context, req *types.QueryAllPathLimitsRequest) (*types.QueryAllPathLimitsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(c)
	return &types.QueryAllPathLimitsResponse{PathLimits: k.GetAllPathLimits(ctx)}, nil
}

// Query all path limits attached to a channel
func (k Keeper) PathLimitsByChannel(c context.Context, req *types.QueryPathLimitsByChannelRequest) (*types.QueryPathLimitsByChannelResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	if err := validate.GRPCChannelRequest(req.ChannelId); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(c)

	pathLimits := []types.PathLimits{}
	for _, pl := range k.GetAllPathLimits(ctx) {
		if pl.Path.ChannelId == req.ChannelId {
			pathLimits = append(pathLimits, pl)
		}
	}

	return &types.QueryPathLimitsByChannelResponse{PathLimits: pathLimits}, nil
}

// Query the current rate-limiter module parameters
func (k Keeper) Params(c context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(c)
	params := k.GetParams(ctx)
	return &types.QueryParamsResponse{Params: &params}, nil
}
