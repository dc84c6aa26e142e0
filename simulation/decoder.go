package simulation

import (
	"bytes"
	"fmt"

	"github.com/cosmos/cosmos-sdk/types/kv"

	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
)

// NewDecodeStore returns a decoder function closure that unmarshals the KVPair's
// Value to the corresponding rate-limiter types.
func NewDecodeStore() func(kvA, kvB kv.Pair) string {
	return func(kvA, kvB kv.Pair) string {
		switch {
		case bytes.Equal(kvA.Key[:len(types.ParamsKey)], types.ParamsKey):
			var paramsA, paramsB types.Params
			types.ModuleCdc.MustUnmarshal(kvA.Value, &paramsA)
			types.ModuleCdc.MustUnmarshal(kvB.Value, &paramsB)
			return fmt.Sprintf("Params A: %s\nParams B: %s", paramsA.String(), paramsB.String())

		case bytes.Equal(kvA.Key[:len(types.PathLimitsKeyPrefix)], types.PathLimitsKeyPrefix):
			var pathLimitsA, pathLimitsB types.PathLimits
			types.ModuleCdc.MustUnmarshal(kvA.Value, &pathLimitsA)
			types.ModuleCdc.MustUnmarshal(kvB.Value, &pathLimitsB)
			return fmt.Sprintf("PathLimits A: %s\nPathLimits B: %s", pathLimitsA.String(), pathLimitsB.String())

		default:
			panic(fmt.Errorf("invalid %s key prefix %X", types.ModuleName, kvA.Key[:1]))
		}
	}
}
