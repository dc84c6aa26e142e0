package types

import (
	"regexp"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// NewPath creates a new transfer path from an owner, channel id and denom
func NewPath(owner, channelID, denom string) Path {
	return Path{
		Owner:     owner,
		ChannelId: channelID,
		Denom:     denom,
	}
}

// Validate performs basic validation of the path fields
func (p Path) Validate() error {
	if p.Owner == "" {
		return errorsmod.Wrap(ErrInvalidPath, "owner cannot be empty")
	}
	// A slash in the owner would let two distinct paths build the same
	// store key, since the key joins its segments with slashes.
	if strings.Contains(p.Owner, "/") {
		return errorsmod.Wrapf(ErrInvalidPath, "owner (%s) cannot contain '/'", p.Owner)
	}

	matched, err := regexp.MatchString(`^channel-\d+$`, p.ChannelId)
	if err != nil || !matched {
		return errorsmod.Wrapf(ErrInvalidPath,
			"invalid channel-id (%s), must be of the format 'channel-{N}'", p.ChannelId)
	}

	if p.Denom == "" {
		return errorsmod.Wrap(ErrInvalidPath, "denom cannot be empty")
	}

	return nil
}

// Key returns the store key for the path's limits
func (p Path) Key() []byte {
	return PathKey(p.Owner, p.ChannelId, p.Denom)
}
