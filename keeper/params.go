package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
)

// GetParams returns the current rate-limiter module parameters. Defaults
// are returned when no parameters were ever stored, so the middleware can
// run before genesis wiring on a fresh store.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.ParamsKey)
	if err != nil {
		panic(err)
	}
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	k.cdc.MustUnmarshal(bz, &params)
	return params
}

// SetParams sets the rate-limiter module parameters
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	store := k.storeService.OpenKVStore(ctx)
	if err := store.Set(types.ParamsKey, k.cdc.MustMarshal(&params)); err != nil {
		panic(err)
	}
}

// IsEnabled checks if rate limiting is enabled globally
func (k Keeper) IsEnabled(ctx sdk.Context) bool {
	return k.GetParams(ctx).Enabled
}
