package types

import (
	"math/big"
	"time"

	sdkmath "cosmossdk.io/math"
)

// FlowDirection marks which gross accumulator a transfer moves. It is
// never persisted; only the two accumulators are.
type FlowDirection int

const (
	// FlowIn marks value received on a path
	FlowIn FlowDirection = iota
	// FlowOut marks value sent on a path
	FlowOut
)

// String returns the direction label used in events and telemetry
func (d FlowDirection) String() string {
	if d == FlowIn {
		return "in"
	}
	return "out"
}

// maxUint is the top of the sdkmath.Uint range (2^256 - 1). Additions
// clamp here instead of panicking.
var maxUint = sdkmath.NewUintFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)))

func addSaturating(a, b sdkmath.Uint) sdkmath.Uint {
	if b.GT(maxUint.Sub(a)) {
		return maxUint
	}
	return a.Add(b)
}

func subSaturating(a, b sdkmath.Uint) sdkmath.Uint {
	if b.GT(a) {
		return sdkmath.ZeroUint()
	}
	return a.Sub(b)
}

// NewFlow creates an empty flow whose first window closes at periodEnd
func NewFlow(periodEnd time.Time) Flow {
	return Flow{
		Inflow:    sdkmath.ZeroUint(),
		Outflow:   sdkmath.ZeroUint(),
		PeriodEnd: periodEnd,
	}
}

// BalanceOn returns the net flow for the given direction. Traffic in the
// opposite direction refunds capacity: net outflow is outflow minus
// inflow and net inflow is inflow minus outflow, both floored at zero.
func (f *Flow) BalanceOn(direction FlowDirection) sdkmath.Uint {
	if direction == FlowIn {
		return subSaturating(f.Inflow, f.Outflow)
	}
	return subSaturating(f.Outflow, f.Inflow)
}

// IsExpired returns true if the window closed strictly before now. An
// observation exactly at PeriodEnd still belongs to the closing window.
func (f *Flow) IsExpired(now time.Time) bool {
	return f.PeriodEnd.Before(now)
}

// Expire zeroes both accumulators and opens a fresh window anchored at
// now. Windows that elapsed without traffic are not replayed.
func (f *Flow) Expire(now time.Time, durationSeconds uint64) {
	f.Inflow = sdkmath.ZeroUint()
	f.Outflow = sdkmath.ZeroUint()
	f.PeriodEnd = now.Add(time.Duration(durationSeconds) * time.Second)
}

// AddFlow accumulates amount on the gross counter for the direction,
// clamping at the top of the Uint range. It never rejects.
func (f *Flow) AddFlow(direction FlowDirection, amount sdkmath.Uint) {
	if direction == FlowIn {
		f.Inflow = addSaturating(f.Inflow, amount)
	} else {
		f.Outflow = addSaturating(f.Outflow, amount)
	}
}

// ApplyTransfer rolls the window first if it has expired, then
// accumulates the amount. It reports whether the window rolled.
func (f *Flow) ApplyTransfer(direction FlowDirection, amount sdkmath.Uint, now time.Time, durationSeconds uint64) bool {
	rolled := f.IsExpired(now)
	if rolled {
		f.Expire(now, durationSeconds)
	}
	f.AddFlow(direction, amount)
	return rolled
}

// UndoFlow removes amount from the gross counter for the direction,
// flooring at zero. The window is left untouched: a reversal landing
// after a rollover must not resurrect the old window, so it quietly
// floors against the new one.
func (f *Flow) UndoFlow(direction FlowDirection, amount sdkmath.Uint) {
	if direction == FlowIn {
		f.Inflow = subSaturating(f.Inflow, amount)
	} else {
		f.Outflow = subSaturating(f.Outflow, amount)
	}
}
