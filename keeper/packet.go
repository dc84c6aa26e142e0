package keeper

import (
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
	transfertypes "github.com/cosmos/ibc-go/v10/modules/apps/transfer/types"
	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

// PacketTransfer is the rate-limited view of an ICS-20 packet: the path
// it moves value along and the amount it carries.
type PacketTransfer struct {
	Path   types.Path
	Amount sdkmath.Uint
}

// ParsePacketTransfer extracts the rate-limited path and amount from an
// ICS-20 packet. The denom is taken verbatim from the packet data. The
// owner and channel come from the local end for the given direction: the
// source port and channel for sends, the destination port and channel for
// receives.
func ParsePacketTransfer(packet channeltypes.Packet, direction types.FlowDirection) (PacketTransfer, error) {
	var packetData transfertypes.FungibleTokenPacketData
	if err := json.Unmarshal(packet.GetData(), &packetData); err != nil {
		return PacketTransfer{}, errorsmod.Wrapf(types.ErrBadPacketData, "cannot unmarshal ICS-20 transfer packet data: %s", err.Error())
	}

	var owner, channelID string
	if direction == types.FlowOut {
		owner = packet.GetSourcePort()
		channelID = packet.GetSourceChannel()
	} else {
		owner = packet.GetDestPort()
		channelID = packet.GetDestChannel()
	}

	amount, err := sdkmath.ParseUint(packetData.Amount)
	if err != nil {
		return PacketTransfer{}, errorsmod.Wrapf(types.ErrBadPacketData, "unable to cast packet amount '%s' to sdkmath.Uint", packetData.Amount)
	}

	return PacketTransfer{
		Path:   types.NewPath(owner, channelID, packetData.Denom),
		Amount: amount,
	}, nil
}

// Middleware implementation for SendPacket with rate limiting
// Checks whether the outflow quotas admit the packet - and if they don't, refuses the send
func (k *Keeper) SendRateLimitedPacket(ctx sdk.Context, sourcePort, sourceChannel string, timeoutHeight clienttypes.Height, timeoutTimestamp uint64, data []byte) error {
	if !k.IsEnabled(ctx) {
		return nil
	}

	packet := channeltypes.Packet{
		SourcePort:       sourcePort,
		SourceChannel:    sourceChannel,
		TimeoutHeight:    timeoutHeight,
		TimeoutTimestamp: timeoutTimestamp,
		Data:             data,
	}

	transfer, err := ParsePacketTransfer(packet, types.FlowOut)
	if err != nil {
		// An unparseable outbound packet cannot be accounted for, so the
		// send is refused rather than let value slip past the quotas.
		return err
	}

	return k.ApplyTransfer(ctx, transfer.Path, types.FlowOut, transfer.Amount)
}

// Middleware implementation for RecvPacket with rate limiting
// Checks whether the inflow quotas admit the packet - and if they do, allows the packet
func (k *Keeper) ReceiveRateLimitedPacket(ctx sdk.Context, packet channeltypes.Packet) error {
	if !k.IsEnabled(ctx) {
		return nil
	}

	transfer, err := ParsePacketTransfer(packet, types.FlowIn)
	if err != nil {
		// If the packet data is unparseable, we can't apply rate limiting.
		// Log the error and allow the packet to proceed to the underlying app
		// which is responsible for handling invalid packet data.
		k.Logger(ctx).Error("unable to parse packet data for rate limiting", "error", err)
		return nil
	}

	return k.ApplyTransfer(ctx, transfer.Path, types.FlowIn, transfer.Amount)
}

// AcknowledgeRateLimitedPacket implements OnAcknowledgementPacket for porttypes.Middleware.
// If the transfer failed on the receiving chain, the recorded outflow is reversed.
func (k *Keeper) AcknowledgeRateLimitedPacket(ctx sdk.Context, packet channeltypes.Packet, acknowledgement []byte) error {
	if !k.IsEnabled(ctx) {
		return nil
	}

	ackSuccess, err := k.CheckAcknowledgementSucceeded(ctx, acknowledgement)
	if err != nil {
		return err
	}
	if ackSuccess {
		return nil
	}

	transfer, err := ParsePacketTransfer(packet, types.FlowOut)
	if err != nil {
		return err
	}

	return k.UndoTransfer(ctx, transfer.Path, types.FlowOut, transfer.Amount)
}

// Middleware implementation for OnTimeoutPacket with rate limiting
// The recorded outflow is reversed since the transfer never completed
func (k *Keeper) TimeoutRateLimitedPacket(ctx sdk.Context, packet channeltypes.Packet) error {
	if !k.IsEnabled(ctx) {
		return nil
	}

	transfer, err := ParsePacketTransfer(packet, types.FlowOut)
	if err != nil {
		return err
	}

	return k.UndoTransfer(ctx, transfer.Path, types.FlowOut, transfer.Amount)
}

// CheckAcknowledgementSucceeded unmarshals an IBC acknowledgement and
// reports whether the transfer succeeded on the receiving chain.
func (k *Keeper) CheckAcknowledgementSucceeded(ctx sdk.Context, ack []byte) (bool, error) {
	var acknowledgement channeltypes.Acknowledgement
	if err := transfertypes.ModuleCdc.UnmarshalJSON(ack, &acknowledgement); err != nil {
		return false, errorsmod.Wrapf(sdkerrors.ErrUnknownRequest, "cannot unmarshal ICS-20 transfer packet acknowledgement: %s", err.Error())
	}

	switch response := acknowledgement.Response.(type) {
	case *channeltypes.Acknowledgement_Result:
		if len(response.Result) == 0 {
			return false, errorsmod.Wrapf(channeltypes.ErrInvalidAcknowledgement, "acknowledgement result cannot be empty")
		}
		return true, nil

	case *channeltypes.Acknowledgement_Error:
		k.Logger(ctx).Error(fmt.Sprintf("acknowledgement error: %s", response.Error))
		return false, nil

	default:
		return false, errorsmod.Wrapf(channeltypes.ErrInvalidAcknowledgement, "unsupported acknowledgement response field type %T", response)
	}
}
