package validate

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	host "github.com/cosmos/ibc-go/v10/modules/core/24-host"
)

// GRPCPathRequest validates that the owner and channel of a gRPC path
// query are valid port and channel identifiers.
func GRPCPathRequest(owner, channelID string) error {
	if err := host.PortIdentifierValidator(owner); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	return GRPCChannelRequest(channelID)
}

// GRPCChannelRequest validates that the channel of a gRPC query is a
// valid channel identifier.
func GRPCChannelRequest(channelID string) error {
	if err := host.ChannelIdentifierValidator(channelID); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	return nil
}
