package types

const (
	// DefaultEnabled is the default value for the enabled param (set to true)
	DefaultEnabled = true
)

// NewParams creates a new parameter configuration for the rate-limiter module
func NewParams(enabled bool) Params {
	return Params{
		Enabled: enabled,
	}
}

// DefaultParams is the default parameter configuration for the rate-limiter module
func DefaultParams() Params {
	return NewParams(DefaultEnabled)
}

// Validate validates the rate-limiter module parameters
func (p Params) Validate() error {
	return nil
}
