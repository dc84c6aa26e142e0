package simulation

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/cosmos/cosmos-sdk/types/module"

	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
)

// Simulation parameter constants
const enabledKey = "enabled"

// RandomEnabled randomized enabled param with 75% prob of being true.
func RandomEnabled(r *rand.Rand) bool {
	return r.Int63n(101) <= 75
}

// RandomizedGenState generates a random GenesisState for the rate-limiter.
// Only the params are randomized, no paths are configured.
func RandomizedGenState(simState *module.SimulationState) {
	var enabled bool
	simState.AppParams.GetOrGenerate(
		enabledKey, &enabled, simState.Rand,
		func(r *rand.Rand) { enabled = RandomEnabled(r) },
	)

	genesis := types.NewGenesisState(types.NewParams(enabled), []types.PathLimits{})

	bz, err := json.MarshalIndent(genesis, "", " ")
	if err != nil {
		panic(err)
	}
	fmt.Printf("Selected randomly generated %s parameters:\n%s\n", types.ModuleName, bz)
	simState.GenState[types.ModuleName] = simState.Cdc.MustMarshalJSON(genesis)
}
