package keeper

import (
	"time"

	"github.com/hashicorp/go-metrics"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
	coremetrics "github.com/cosmos/ibc-go/v10/modules/core/metrics"
)

// ApplyTransfer records a transfer against every quota configured for the
// path. Evaluation is all-or-nothing: quotas are checked in list order,
// the first rejection aborts the whole operation and no state is written.
// A path with no configuration admits any amount without writing state.
func (k *Keeper) ApplyTransfer(ctx sdk.Context, path types.Path, direction types.FlowDirection, amount sdkmath.Uint) error {
	labels := []metrics.Label{
		telemetry.NewLabel(coremetrics.LabelDenom, path.Denom),
		telemetry.NewLabel("channel_id", path.ChannelId),
		telemetry.NewLabel("direction", direction.String()),
	}

	pathLimits, found := k.GetPathLimits(ctx, path)
	if !found || len(pathLimits.Limits) == 0 {
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeTransferAllowed,
				sdk.NewAttribute(types.AttributeKeyOwner, path.Owner),
				sdk.NewAttribute(types.AttributeKeyChannelID, path.ChannelId),
				sdk.NewAttribute(types.AttributeKeyDenom, path.Denom),
				sdk.NewAttribute(types.AttributeKeyDirection, direction.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
				sdk.NewAttribute(types.AttributeKeyQuotaName, types.AttributeValueQuotaNone),
			),
		)

		telemetry.IncrCounterWithLabels(
			[]string{"ibc", types.ModuleName, "transfer"},
			1,
			labels,
		)

		return nil
	}

	now := ctx.BlockTime()
	for i := range pathLimits.Limits {
		if err := pathLimits.Limits[i].AllowTransfer(path, direction, amount, now); err != nil {
			telemetry.IncrCounterWithLabels(
				[]string{"ibc", types.ModuleName, "throttled"},
				1,
				labels,
			)

			return err
		}
	}

	// Every quota admitted the transfer: persist all updated windows in a
	// single write.
	k.SetPathLimits(ctx, pathLimits)

	for i := range pathLimits.Limits {
		limit := pathLimits.Limits[i]
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeTransferAllowed,
				sdk.NewAttribute(types.AttributeKeyOwner, path.Owner),
				sdk.NewAttribute(types.AttributeKeyChannelID, path.ChannelId),
				sdk.NewAttribute(types.AttributeKeyDenom, path.Denom),
				sdk.NewAttribute(types.AttributeKeyDirection, direction.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
				sdk.NewAttribute(types.AttributeKeyQuotaName, limit.Quota.Name),
				sdk.NewAttribute(types.AttributeKeyUsedIn, limit.Flow.Inflow.String()),
				sdk.NewAttribute(types.AttributeKeyUsedOut, limit.Flow.Outflow.String()),
				sdk.NewAttribute(types.AttributeKeyMaxIn, limit.Quota.MaxRecv.String()),
				sdk.NewAttribute(types.AttributeKeyMaxOut, limit.Quota.MaxSend.String()),
				sdk.NewAttribute(types.AttributeKeyPeriodEnd, limit.Flow.PeriodEnd.UTC().Format(time.RFC3339)),
			),
		)
	}

	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "transfer"},
		1,
		labels,
	)

	return nil
}

// UndoTransfer reverses a previously recorded transfer on every quota of
// the path, flooring at zero. No cap is consulted and no window rolls: a
// reversal is bookkeeping, never a violation. Reversing an unconfigured
// path is a no-op, so transfers admitted before configuration was removed
// stay reversible.
func (k *Keeper) UndoTransfer(ctx sdk.Context, path types.Path, direction types.FlowDirection, amount sdkmath.Uint) error {
	pathLimits, found := k.GetPathLimits(ctx, path)
	if !found || len(pathLimits.Limits) == 0 {
		return nil
	}

	for i := range pathLimits.Limits {
		pathLimits.Limits[i].Flow.UndoFlow(direction, amount)
	}

	k.SetPathLimits(ctx, pathLimits)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUndoTransfer,
			sdk.NewAttribute(types.AttributeKeyOwner, path.Owner),
			sdk.NewAttribute(types.AttributeKeyChannelID, path.ChannelId),
			sdk.NewAttribute(types.AttributeKeyDenom, path.Denom),
			sdk.NewAttribute(types.AttributeKeyDirection, direction.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	return nil
}
