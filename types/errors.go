package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrRateLimitExceeded = errorsmod.Register(ModuleName, 2,
		"rate limit exceeded")
	ErrQuotaNotFound = errorsmod.Register(ModuleName, 3,
		"quota not found")
	ErrPathNotFound = errorsmod.Register(ModuleName, 4,
		"path not found")
	ErrInvalidQuota = errorsmod.Register(ModuleName, 5,
		"invalid quota")
	ErrInvalidPath = errorsmod.Register(ModuleName, 6,
		"invalid path")
	ErrBadPacketData = errorsmod.Register(ModuleName, 7,
		"invalid transfer packet data")
)
