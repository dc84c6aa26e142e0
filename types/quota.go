package types

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/ibc-go/modules/rate-limiter/internal/collections"
)

// NewQuota creates a new quota with independent send and receive caps
func NewQuota(name string, maxSend, maxRecv sdkmath.Uint, durationSeconds uint64) Quota {
	return Quota{
		Name:            name,
		MaxSend:         maxSend,
		MaxRecv:         maxRecv,
		DurationSeconds: durationSeconds,
	}
}

// CapacityFor returns the cap enforced against the given flow direction
func (q *Quota) CapacityFor(direction FlowDirection) sdkmath.Uint {
	if direction == FlowIn {
		return q.MaxRecv
	}
	return q.MaxSend
}

// Validate performs basic validation of the quota fields. A zero duration
// is legal but degenerate: every observation then sees an expired window,
// so usage never accumulates across transfers.
func (q *Quota) Validate() error {
	if q.Name == "" {
		return errorsmod.Wrap(ErrInvalidQuota, "quota name cannot be empty")
	}
	if q.MaxSend.IsNil() || q.MaxRecv.IsNil() {
		return errorsmod.Wrapf(ErrInvalidQuota, "quota %s caps must be set", q.Name)
	}
	return nil
}

// ValidateQuotas validates every quota in the list and rejects duplicate
// names, so a targeted reset is unambiguous
func ValidateQuotas(quotas []Quota) error {
	names := make([]string, 0, len(quotas))
	for i := range quotas {
		if err := quotas[i].Validate(); err != nil {
			return err
		}
		if collections.Contains(quotas[i].Name, names) {
			return errorsmod.Wrapf(ErrInvalidQuota, "duplicate quota name (%s)", quotas[i].Name)
		}
		names = append(names, quotas[i].Name)
	}
	return nil
}
