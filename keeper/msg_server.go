package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
	ibcerrors "github.com/cosmos/ibc-go/v10/modules/core/errors"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the rate-limiter MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// AddPath configures the quota list for a path, overwriting any existing configuration
func (k msgServer) AddPath(goCtx context.Context, msg *types.MsgAddPath) (*types.MsgAddPathResponse, error) {
	if k.GetAuthority() != msg.Signer {
		return nil, errorsmod.Wrapf(ibcerrors.ErrUnauthorized, "expected %s, got %s", k.GetAuthority(), msg.Signer)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := k.Keeper.AddPath(ctx, msg.Path, msg.Quotas); err != nil {
		return nil, err
	}

	return &types.MsgAddPathResponse{}, nil
}

// RemovePath deletes the configuration for a path. Removing an absent path is a no-op
func (k msgServer) RemovePath(goCtx context.Context, msg *types.MsgRemovePath) (*types.MsgRemovePathResponse, error) {
	if k.GetAuthority() != msg.Signer {
		return nil, errorsmod.Wrapf(ibcerrors.ErrUnauthorized, "expected %s, got %s", k.GetAuthority(), msg.Signer)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	k.Keeper.RemovePath(ctx, msg.Path)

	return &types.MsgRemovePathResponse{}, nil
}

// ResetPathQuota opens a fresh window for one named quota on a path
func (k msgServer) ResetPathQuota(goCtx context.Context, msg *types.MsgResetPathQuota) (*types.MsgResetPathQuotaResponse, error) {
	if k.GetAuthority() != msg.Signer {
		return nil, errorsmod.Wrapf(ibcerrors.ErrUnauthorized, "expected %s, got %s", k.GetAuthority(), msg.Signer)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := k.Keeper.ResetPathQuota(ctx, msg.Path, msg.QuotaName); err != nil {
		return nil, err
	}

	return &types.MsgResetPathQuotaResponse{}, nil
}

// UpdateParams defines an rpc handler method for MsgUpdateParams. Updates the rate-limiter module's parameters.
func (k msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if k.GetAuthority() != msg.Signer {
		return nil, errorsmod.Wrapf(ibcerrors.ErrUnauthorized, "expected %s, got %s", k.GetAuthority(), msg.Signer)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	k.SetParams(ctx, msg.Params)

	return &types.MsgUpdateParamsResponse{}, nil
}
