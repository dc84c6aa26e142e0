package types

// IBC rate-limiter events
const (
	EventTypeTransferAllowed = "transfer_allowed"
	EventTypeUndoTransfer    = "undo_transfer"
	EventTypeAddPath         = "add_rate_limit_path"
	EventTypeRemovePath      = "remove_rate_limit_path"
	EventTypeResetPathQuota  = "reset_path_quota"

	AttributeKeyOwner     = "owner"
	AttributeKeyChannelID = "channel_id"
	AttributeKeyDenom     = "denom"
	AttributeKeyDirection = "direction"
	AttributeKeyAmount    = "amount"
	AttributeKeyQuotaName = "quota_name"
	AttributeKeyUsedIn    = "used_in"
	AttributeKeyUsedOut   = "used_out"
	AttributeKeyMaxIn     = "max_in"
	AttributeKeyMaxOut    = "max_out"
	AttributeKeyPeriodEnd = "period_end"

	// AttributeValueQuotaNone marks transfers that passed through a path
	// with no quotas configured.
	AttributeValueQuotaNone = "none"
)
