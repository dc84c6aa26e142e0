package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/ibc-go/modules/rate-limiter/internal/collections"
)

// NewGenesisState creates a new genesis state from params and path limits
func NewGenesisState(params Params, pathLimits []PathLimits) *GenesisState {
	return &GenesisState{
		Params:     params,
		PathLimits: pathLimits,
	}
}

// DefaultGenesis returns the default rate-limiter genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		PathLimits: []PathLimits{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure. Flows are carried as given so exported state round-trips.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	keys := make([]string, 0, len(gs.PathLimits))
	for _, pl := range gs.PathLimits {
		if err := pl.Validate(); err != nil {
			return err
		}

		key := string(pl.Path.Key())
		if collections.Contains(key, keys) {
			return errorsmod.Wrapf(ErrInvalidPath, "duplicate path (%s)", key)
		}
		keys = append(keys, key)
	}

	return nil
}
