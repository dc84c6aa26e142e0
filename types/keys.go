package types

const (
	// ModuleName defines the IBC rate-limiter name
	ModuleName = "ratelimiter"

	// StoreKey is the store key string for the IBC rate-limiter
	StoreKey = ModuleName

	// RouterKey is the message route for the IBC rate-limiter
	RouterKey = ModuleName

	// QuerierRoute is the querier route for the IBC rate-limiter
	QuerierRoute = ModuleName
)

func bytes(p string) []byte {
	return []byte(p)
}

var (
	ParamsKey           = bytes("params")
	PathLimitsKeyPrefix = bytes("path-limits")
)

// Get the path limits byte key built from the owner, channelId and denom.
// The denom goes last: owners and channel ids never contain a slash, so a
// slash inside a denom cannot collide with another path's key.
func PathKey(owner, channelID, denom string) []byte {
	return bytes(owner + "/" + channelID + "/" + denom)
}
