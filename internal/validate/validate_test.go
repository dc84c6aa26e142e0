package validate_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/ibc-go/modules/rate-limiter/internal/validate"
)

func TestGRPCPathRequest(t *testing.T) {
	const (
		validID   = "validIdentifier"
		invalidID = ""
	)
	testCases := []struct {
		msg       string
		owner     string
		channelID string
		expPass   bool
	}{
		{
			"success",
			validID,
			validID,
			true,
		},
		{
			"invalid owner",
			invalidID,
			validID,
			false,
		},
		{
			"invalid channelID",
			validID,
			invalidID,
			false,
		},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("Case %s", tc.msg), func(t *testing.T) {
			err := validate.GRPCPathRequest(tc.owner, tc.channelID)
			if tc.expPass {
				require.NoError(t, err, tc.msg)
			} else {
				require.Error(t, err, tc.msg)
			}
		})
	}
}

func TestGRPCChannelRequest(t *testing.T) {
	require.NoError(t, validate.GRPCChannelRequest("channel-0"))
	require.Error(t, validate.GRPCChannelRequest(""))
}
