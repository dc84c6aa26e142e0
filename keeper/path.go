package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/store/prefix"

	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
)

// Stores/Updates the rate limit list for a path in the store
func (k *Keeper) SetPathLimits(ctx sdk.Context, pathLimits types.PathLimits) {
	adapter := runtime.KVStoreAdapter(k.storeService.OpenKVStore(ctx))
	store := prefix.NewStore(adapter, types.PathLimitsKeyPrefix)

	key := pathLimits.Path.Key()
	value := k.cdc.MustMarshal(&pathLimits)

	store.Set(key, value)
}

// Grabs and returns the rate limit list for a path, with a found flag
func (k *Keeper) GetPathLimits(ctx sdk.Context, path types.Path) (types.PathLimits, bool) {
	adapter := runtime.KVStoreAdapter(k.storeService.OpenKVStore(ctx))
	store := prefix.NewStore(adapter, types.PathLimitsKeyPrefix)

	value := store.Get(path.Key())
	if len(value) == 0 {
		return types.PathLimits{}, false
	}

	var pathLimits types.PathLimits
	k.cdc.MustUnmarshal(value, &pathLimits)
	return pathLimits, true
}

// Removes the rate limit list for a path from the store
func (k *Keeper) RemovePathLimits(ctx sdk.Context, path types.Path) {
	adapter := runtime.KVStoreAdapter(k.storeService.OpenKVStore(ctx))
	store := prefix.NewStore(adapter, types.PathLimitsKeyPrefix)
	store.Delete(path.Key())
}

// Returns all configured path limits
func (k *Keeper) GetAllPathLimits(ctx sdk.Context) []types.PathLimits {
	adapter := runtime.KVStoreAdapter(k.storeService.OpenKVStore(ctx))
	store := prefix.NewStore(adapter, types.PathLimitsKeyPrefix)

	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	allPathLimits := []types.PathLimits{}
	for ; iterator.Valid(); iterator.Next() {
		pathLimits := types.PathLimits{}
		if err := k.cdc.Unmarshal(iterator.Value(), &pathLimits); err != nil {
			// Log the error and skip this entry if unmarshalling fails
			k.Logger(ctx).Error("failed to unmarshal path limits", "key", string(iterator.Key()), "error", err)
			continue
		}
		allPathLimits = append(allPathLimits, pathLimits)
	}

	return allPathLimits
}

// AddPath configures the quota list for a path with zero-initialized
// flows whose windows open at the current block time. Any existing
// configuration for the path is overwritten wholesale, discarding its
// in-flight windows. An empty quota list is legal and stores an empty
// list.
func (k *Keeper) AddPath(ctx sdk.Context, path types.Path, quotas []types.Quota) error {
	now := ctx.BlockTime()
	limits := make([]types.RateLimit, len(quotas))
	for i, quota := range quotas {
		limits[i] = types.NewRateLimit(quota, now)
	}

	pathLimits := types.NewPathLimits(path, limits)
	if err := pathLimits.Validate(); err != nil {
		return err
	}

	k.SetPathLimits(ctx, pathLimits)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeAddPath,
			sdk.NewAttribute(types.AttributeKeyOwner, path.Owner),
			sdk.NewAttribute(types.AttributeKeyChannelID, path.ChannelId),
			sdk.NewAttribute(types.AttributeKeyDenom, path.Denom),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})

	return nil
}

// RemovePath deletes the configuration for a path. Removing an absent
// path is a no-op.
func (k *Keeper) RemovePath(ctx sdk.Context, path types.Path) {
	k.RemovePathLimits(ctx, path)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeRemovePath,
			sdk.NewAttribute(types.AttributeKeyOwner, path.Owner),
			sdk.NewAttribute(types.AttributeKeyChannelID, path.ChannelId),
			sdk.NewAttribute(types.AttributeKeyDenom, path.Denom),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// ResetPathQuota opens a fresh window for the named quota on the path,
// leaving every other quota untouched. A path with no configuration and
// a name that matches no quota both fail with ErrQuotaNotFound.
func (k *Keeper) ResetPathQuota(ctx sdk.Context, path types.Path, quotaName string) error {
	pathLimits, found := k.GetPathLimits(ctx, path)
	if !found {
		return errorsmod.Wrapf(types.ErrQuotaNotFound, "path %s has no quotas configured", string(path.Key()))
	}

	for i := range pathLimits.Limits {
		if pathLimits.Limits[i].Quota.Name != quotaName {
			continue
		}

		// Quota names are unique within a path, so the first match is the
		// only match.
		pathLimits.Limits[i].Flow.Expire(ctx.BlockTime(), pathLimits.Limits[i].Quota.DurationSeconds)
		k.SetPathLimits(ctx, pathLimits)

		ctx.EventManager().EmitEvents(sdk.Events{
			sdk.NewEvent(
				types.EventTypeResetPathQuota,
				sdk.NewAttribute(types.AttributeKeyOwner, path.Owner),
				sdk.NewAttribute(types.AttributeKeyChannelID, path.ChannelId),
				sdk.NewAttribute(types.AttributeKeyDenom, path.Denom),
				sdk.NewAttribute(types.AttributeKeyQuotaName, quotaName),
			),
			sdk.NewEvent(
				sdk.EventTypeMessage,
				sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			),
		})

		return nil
	}

	return errorsmod.Wrapf(types.ErrQuotaNotFound, "path %s has no quota named %s", string(path.Key()), quotaName)
}
