package simulation_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/cosmos-sdk/types/kv"

	"github.com/cosmos/ibc-go/modules/rate-limiter/simulation"
	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
)

func fullPathLimitsKey(owner, channelID, denom string) []byte {
	key := append([]byte{}, types.PathLimitsKeyPrefix...)
	return append(key, types.PathKey(owner, channelID, denom)...)
}

func TestDecodeStore(t *testing.T) {
	testCases := []struct {
		name        string
		kvA         kv.Pair
		kvB         kv.Pair
		expectedLog string
	}{
		{
			"Params",
			kv.Pair{
				Key:   types.ParamsKey,
				Value: createParamsBytes(t),
			},
			kv.Pair{
				Key:   types.ParamsKey,
				Value: createParamsBytes(t),
			},
			fmt.Sprintf("Params A: %s\nParams B: %s", createParams(), createParams()),
		},
		{
			"PathLimits",
			kv.Pair{
				Key:   fullPathLimitsKey("transfer", "channel-0", "uatom"),
				Value: createPathLimitsBytes(t),
			},
			kv.Pair{
				Key:   fullPathLimitsKey("transfer", "channel-0", "uatom"),
				Value: createPathLimitsBytes(t),
			},
			fmt.Sprintf("PathLimits A: %s\nPathLimits B: %s", createPathLimits(), createPathLimits()),
		},
		{
			"Unknown",
			kv.Pair{
				Key:   []byte{0x99},
				Value: []byte{0x99},
			},
			kv.Pair{
				Key:   []byte{0x99},
				Value: []byte{0x99},
			},
			fmt.Sprintf("invalid %s key prefix 99", types.ModuleName),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			decoder := simulation.NewDecodeStore()
			if tc.name == "Unknown" {
				require.Panics(t, func() {
					decoder(tc.kvA, tc.kvB)
				})
			} else {
				log := decoder(tc.kvA, tc.kvB)
				require.Equal(t, tc.expectedLog, log)
			}
		})
	}
}

func createParams() *types.Params {
	params := types.DefaultParams()
	return &params
}

func createParamsBytes(t *testing.T) []byte {
	t.Helper()
	bz, err := types.ModuleCdc.Marshal(createParams())
	require.NoError(t, err)
	return bz
}

func createPathLimits() *types.PathLimits {
	quota := types.NewQuota("weekly", sdkmath.NewUint(1000), sdkmath.NewUint(1000), 604800)
	pathLimits := types.NewPathLimits(
		types.NewPath("transfer", "channel-0", "uatom"),
		[]types.RateLimit{types.NewRateLimit(quota, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))},
	)
	return &pathLimits
}

func createPathLimitsBytes(t *testing.T) []byte {
	t.Helper()
	bz, err := types.ModuleCdc.Marshal(createPathLimits())
	require.NoError(t, err)
	return bz
}
