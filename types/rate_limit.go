package types

import (
	"time"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// NewRateLimit creates a rate limit whose first window opens now
func NewRateLimit(quota Quota, now time.Time) RateLimit {
	return RateLimit{
		Quota: quota,
		Flow:  NewFlow(now.Add(time.Duration(quota.DurationSeconds) * time.Second)),
	}
}

// AllowTransfer applies the transfer to the flow and enforces the quota
// cap for the direction. An expired window rolls before the check, so a
// rolled window reports zero prior usage. The receiver is mutated either
// way; on rejection the caller must discard it instead of persisting.
func (r *RateLimit) AllowTransfer(path Path, direction FlowDirection, amount sdkmath.Uint, now time.Time) error {
	used := r.Flow.BalanceOn(direction)
	if r.Flow.ApplyTransfer(direction, amount, now, r.Quota.DurationSeconds) {
		used = sdkmath.ZeroUint()
	}

	capacity := r.Quota.CapacityFor(direction)
	if r.Flow.BalanceOn(direction).GT(capacity) {
		return errorsmod.Wrapf(ErrRateLimitExceeded,
			"%s/%s/%s: %s of %s exceeds quota %s (used: %s, cap: %s, period end: %s)",
			path.Owner, path.ChannelId, path.Denom, direction, amount, r.Quota.Name,
			used, capacity, r.Flow.PeriodEnd.UTC().Format(time.RFC3339))
	}

	return nil
}

// NewPathLimits creates the storage unit binding a path to its ordered
// rate limit list
func NewPathLimits(path Path, limits []RateLimit) PathLimits {
	return PathLimits{
		Path:   path,
		Limits: limits,
	}
}

// Validate validates the path and its quota list
func (pl PathLimits) Validate() error {
	if err := pl.Path.Validate(); err != nil {
		return err
	}

	quotas := make([]Quota, len(pl.Limits))
	for i, limit := range pl.Limits {
		quotas[i] = limit.Quota
	}
	return ValidateQuotas(quotas)
}
