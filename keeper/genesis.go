package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
)

// InitGenesis initializes the rate-limiter state from a genesis state.
// The state is assumed to have passed ValidateGenesis.
func (k *Keeper) InitGenesis(ctx sdk.Context, state types.GenesisState) {
	k.SetParams(ctx, state.Params)
	for _, pathLimits := range state.PathLimits {
		k.SetPathLimits(ctx, pathLimits)
	}
}

// ExportGenesis exports the rate-limiter state into a genesis state
func (k *Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return types.NewGenesisState(k.GetParams(ctx), k.GetAllPathLimits(ctx))
}
