package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
)

// The keeper persists state through the proto codec, which routes through
// the sized-buffer marshal path rather than calling Marshal directly. A
// stored window must come back exactly as written, byte length included:
// an empty payload would read back as an unconfigured path.
func TestProtoCodecRoundTrip(t *testing.T) {
	quota := types.NewQuota("weekly", sdkmath.NewUint(1000), sdkmath.NewUint(1000), 604800)
	limit := types.NewRateLimit(quota, windowStart)
	limit.Flow.Outflow = sdkmath.NewUint(300)

	pathLimits := types.NewPathLimits(types.NewPath("transfer", "channel-0", "uatom"), []types.RateLimit{limit})

	bz, err := types.ModuleCdc.Marshal(&pathLimits)
	require.NoError(t, err)
	require.Equal(t, pathLimits.Size(), len(bz), "codec output must carry the full encoded message")

	var decoded types.PathLimits
	require.NoError(t, types.ModuleCdc.Unmarshal(bz, &decoded))
	require.Equal(t, pathLimits, decoded)
	require.True(t, decoded.Limits[0].Flow.Outflow.Equal(sdkmath.NewUint(300)))
	require.Equal(t, windowStart.Add(604800*time.Second), decoded.Limits[0].Flow.PeriodEnd)

	params := types.NewParams(true)
	bz, err = types.ModuleCdc.Marshal(&params)
	require.NoError(t, err)
	require.Equal(t, params.Size(), len(bz))
}
