package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/legacy"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/msgservice"
)

// RegisterLegacyAminoCodec registers the necessary rate-limiter interfaces and concrete types
// on the provided LegacyAmino codec. These types are used for Amino JSON serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	legacy.RegisterAminoMsg(cdc, &MsgAddPath{}, "cosmos-sdk/MsgAddPath")
	legacy.RegisterAminoMsg(cdc, &MsgRemovePath{}, "cosmos-sdk/MsgRemovePath")
	legacy.RegisterAminoMsg(cdc, &MsgResetPathQuota{}, "cosmos-sdk/MsgResetPathQuota")
	legacy.RegisterAminoMsg(cdc, &MsgUpdateParams{}, "cosmos-sdk/ratelimiter/MsgUpdateParams")
}

// RegisterInterfaces registers the rate-limiter message types with the interface registry
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations(
		(*sdk.Msg)(nil),
		&MsgAddPath{},
		&MsgRemovePath{},
		&MsgResetPathQuota{},
		&MsgUpdateParams{},
	)

	msgservice.RegisterMsgServiceDesc(registry, &_Msg_serviceDesc)
}

// ModuleCdc references the global rate-limiter module codec. Note, the codec should
// ONLY be used in certain instances of tests and for JSON encoding.
var ModuleCdc = codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
