package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
)

func TestValidateGenesis(t *testing.T) {
	path := types.NewPath("transfer", "channel-0", "uatom")
	quota := types.NewQuota("daily", sdkmath.NewUint(1000), sdkmath.NewUint(1000), 86400)
	limits := types.NewPathLimits(path, []types.RateLimit{types.NewRateLimit(quota, windowStart)})

	testCases := []struct {
		name     string
		genState *types.GenesisState
		expErr   error
	}{
		{
			name:     "default",
			genState: types.DefaultGenesis(),
			expErr:   nil,
		},
		{
			name:     "valid genesis with a configured path",
			genState: types.NewGenesisState(types.DefaultParams(), []types.PathLimits{limits}),
			expErr:   nil,
		},
		{
			name: "invalid path",
			genState: types.NewGenesisState(types.DefaultParams(), []types.PathLimits{
				types.NewPathLimits(types.NewPath("transfer", "channel", "uatom"), nil),
			}),
			expErr: types.ErrInvalidPath,
		},
		{
			name: "duplicate path",
			genState: types.NewGenesisState(types.DefaultParams(), []types.PathLimits{
				limits,
				types.NewPathLimits(path, nil),
			}),
			expErr: types.ErrInvalidPath,
		},
		{
			name: "duplicate quota names within a path",
			genState: types.NewGenesisState(types.DefaultParams(), []types.PathLimits{
				types.NewPathLimits(path, []types.RateLimit{
					types.NewRateLimit(quota, windowStart),
					types.NewRateLimit(quota, windowStart),
				}),
			}),
			expErr: types.ErrInvalidQuota,
		},
	}

	for _, tc := range testCases {
		err := tc.genState.Validate()
		if tc.expErr == nil {
			require.NoError(t, err, tc.name)
		} else {
			require.ErrorIs(t, err, tc.expErr, tc.name)
		}
	}
}
