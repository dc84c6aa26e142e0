package types

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/x/auth/migrations/legacytx"
)

const (
	TypeMsgAddPath        = "AddPath"
	TypeMsgRemovePath     = "RemovePath"
	TypeMsgResetPathQuota = "ResetPathQuota"
)

// TypeMsgUpdateParams defines the type for MsgUpdateParams
const TypeMsgUpdateParams = "UpdateParams"

var (
	_ sdk.Msg = &MsgAddPath{}
	_ sdk.Msg = &MsgRemovePath{}
	_ sdk.Msg = &MsgResetPathQuota{}
	_ sdk.Msg = &MsgUpdateParams{}

	// Implement legacy interface for ledger support
	_ legacytx.LegacyMsg = &MsgAddPath{}
	_ legacytx.LegacyMsg = &MsgRemovePath{}
	_ legacytx.LegacyMsg = &MsgResetPathQuota{}
	_ legacytx.LegacyMsg = &MsgUpdateParams{}
)

// ----------------------------------------------
//               MsgAddPath
// ----------------------------------------------

func NewMsgAddPath(signer string, path Path, quotas []Quota) *MsgAddPath {
	return &MsgAddPath{
		Signer: signer,
		Path:   path,
		Quotas: quotas,
	}
}

func (msg MsgAddPath) Type() string {
	return TypeMsgAddPath
}

func (msg MsgAddPath) Route() string {
	return RouterKey
}

func (msg *MsgAddPath) GetSigners() []sdk.AccAddress {
	signerAddr, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signerAddr}
}

func (msg *MsgAddPath) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg *MsgAddPath) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid signer address (%s)", err)
	}

	if err := msg.Path.Validate(); err != nil {
		return err
	}

	return ValidateQuotas(msg.Quotas)
}

// ----------------------------------------------
//               MsgRemovePath
// ----------------------------------------------

func NewMsgRemovePath(signer string, path Path) *MsgRemovePath {
	return &MsgRemovePath{
		Signer: signer,
		Path:   path,
	}
}

func (msg MsgRemovePath) Type() string {
	return TypeMsgRemovePath
}

func (msg MsgRemovePath) Route() string {
	return RouterKey
}

func (msg *MsgRemovePath) GetSigners() []sdk.AccAddress {
	signerAddr, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signerAddr}
}

func (msg *MsgRemovePath) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg *MsgRemovePath) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid signer address (%s)", err)
	}

	return msg.Path.Validate()
}

// ----------------------------------------------
//               MsgResetPathQuota
// ----------------------------------------------

func NewMsgResetPathQuota(signer string, path Path, quotaName string) *MsgResetPathQuota {
	return &MsgResetPathQuota{
		Signer:    signer,
		Path:      path,
		QuotaName: quotaName,
	}
}

func (msg MsgResetPathQuota) Type() string {
	return TypeMsgResetPathQuota
}

func (msg MsgResetPathQuota) Route() string {
	return RouterKey
}

func (msg *MsgResetPathQuota) GetSigners() []sdk.AccAddress {
	signerAddr, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signerAddr}
}

func (msg *MsgResetPathQuota) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg *MsgResetPathQuota) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid signer address (%s)", err)
	}

	if err := msg.Path.Validate(); err != nil {
		return err
	}

	if msg.QuotaName == "" {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "quota name cannot be empty")
	}

	return nil
}

// ----------------------------------------------
//               MsgUpdateParams
// ----------------------------------------------

// NewMsgUpdateParams creates a new MsgUpdateParams instance
func NewMsgUpdateParams(signer string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{
		Signer: signer,
		Params: params,
	}
}

// Route implements sdk.Msg
func (msg MsgUpdateParams) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg MsgUpdateParams) Type() string {
	return TypeMsgUpdateParams
}

// GetSigners implements sdk.Msg
func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	signerAddr, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signerAddr}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgUpdateParams) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgUpdateParams) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid signer address (%s)", err)
	}

	return msg.Params.Validate()
}
