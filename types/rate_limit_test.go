package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
)

func testPath() types.Path {
	return types.NewPath("transfer", "channel-0", "uatom")
}

func TestNewRateLimitOpensWindowNow(t *testing.T) {
	quota := types.NewQuota("daily", sdkmath.NewUint(100), sdkmath.NewUint(100), 86400)
	limit := types.NewRateLimit(quota, windowStart)

	require.True(t, limit.Flow.Inflow.IsZero())
	require.True(t, limit.Flow.Outflow.IsZero())
	require.Equal(t, windowStart.Add(24*time.Hour), limit.Flow.PeriodEnd)
}

func TestAllowTransferCapBoundary(t *testing.T) {
	quota := types.NewQuota("daily", sdkmath.NewUint(1000), sdkmath.NewUint(1000), 86400)

	tests := []struct {
		name    string
		amount  sdkmath.Uint
		expPass bool
	}{
		{"below cap", sdkmath.NewUint(999), true},
		{"exactly at cap", sdkmath.NewUint(1000), true},
		{"one over cap", sdkmath.NewUint(1001), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			limit := types.NewRateLimit(quota, windowStart)
			err := limit.AllowTransfer(testPath(), types.FlowOut, test.amount, windowStart)
			if test.expPass {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, types.ErrRateLimitExceeded)
			}
		})
	}
}

func TestAllowTransferWindowRollover(t *testing.T) {
	quota := types.NewQuota("weekly", sdkmath.NewUint(1000), sdkmath.NewUint(1000), 604800)
	limit := types.NewRateLimit(quota, windowStart)

	err := limit.AllowTransfer(testPath(), types.FlowOut, sdkmath.NewUint(300), windowStart)
	require.NoError(t, err)

	// Inside the window the next send breaches the cap. The rejected copy
	// is discarded; the stored state keeps only the first send.
	rejected := limit
	err = rejected.AllowTransfer(testPath(), types.FlowOut, sdkmath.NewUint(800), windowStart.Add(1000*time.Second))
	require.ErrorIs(t, err, types.ErrRateLimitExceeded)
	require.Contains(t, err.Error(), "used: 300")
	require.Contains(t, err.Error(), "cap: 1000")

	// One second past the period end the window rolls and the same send
	// fits, reporting no prior usage.
	now := windowStart.Add(604801 * time.Second)
	err = limit.AllowTransfer(testPath(), types.FlowOut, sdkmath.NewUint(800), now)
	require.NoError(t, err)
	require.True(t, limit.Flow.Outflow.Equal(sdkmath.NewUint(800)))
	require.Equal(t, now.Add(604800*time.Second), limit.Flow.PeriodEnd)
}

func TestAllowTransferNettingWithAsymmetricCaps(t *testing.T) {
	quota := types.NewQuota("asym", sdkmath.NewUint(400000), sdkmath.NewUint(100000), 86400)
	limit := types.NewRateLimit(quota, windowStart)
	path := testPath()

	// Send up to the full send cap.
	require.NoError(t, limit.AllowTransfer(path, types.FlowOut, sdkmath.NewUint(400000), windowStart))

	// Receiving nets against the outflow, so the receive balance stays at
	// zero and the send balance drops to 300000.
	require.NoError(t, limit.AllowTransfer(path, types.FlowIn, sdkmath.NewUint(100000), windowStart))
	require.True(t, limit.Flow.BalanceOn(types.FlowOut).Equal(sdkmath.NewUint(300000)))
	require.True(t, limit.Flow.BalanceOn(types.FlowIn).IsZero())

	// The refunded headroom can be sent again.
	require.NoError(t, limit.AllowTransfer(path, types.FlowOut, sdkmath.NewUint(100000), windowStart))

	// The next unit breaches the send cap.
	rejected := limit
	err := rejected.AllowTransfer(path, types.FlowOut, sdkmath.NewUint(1), windowStart)
	require.ErrorIs(t, err, types.ErrRateLimitExceeded)
}

func TestPathLimitsValidate(t *testing.T) {
	quota := types.NewQuota("daily", sdkmath.NewUint(100), sdkmath.NewUint(100), 86400)

	tests := []struct {
		name    string
		limits  types.PathLimits
		expPass bool
	}{
		{
			name:    "valid single quota",
			limits:  types.NewPathLimits(testPath(), []types.RateLimit{types.NewRateLimit(quota, windowStart)}),
			expPass: true,
		},
		{
			name:    "valid empty list",
			limits:  types.NewPathLimits(testPath(), nil),
			expPass: true,
		},
		{
			name: "invalid channel id",
			limits: types.NewPathLimits(
				types.NewPath("transfer", "chan-0", "uatom"),
				[]types.RateLimit{types.NewRateLimit(quota, windowStart)},
			),
			expPass: false,
		},
		{
			name: "duplicate quota names",
			limits: types.NewPathLimits(testPath(), []types.RateLimit{
				types.NewRateLimit(quota, windowStart),
				types.NewRateLimit(quota, windowStart),
			}),
			expPass: false,
		},
		{
			name: "unset quota caps",
			limits: types.NewPathLimits(testPath(), []types.RateLimit{
				{Quota: types.Quota{Name: "daily", DurationSeconds: 86400}, Flow: types.NewFlow(windowStart)},
			}),
			expPass: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.limits.Validate()
			if test.expPass {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
