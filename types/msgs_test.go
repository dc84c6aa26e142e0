package types_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
)

type MsgsTestSuite struct {
	suite.Suite

	authority string
	path      types.Path
	quota     types.Quota
}

func (s *MsgsTestSuite) SetupTest() {
	s.authority = "cosmos10h9stc5v6ntgeygf5xf945njqq5h32r53uquvw"
	s.path = types.NewPath("transfer", "channel-0", "uatom")
	s.quota = types.NewQuota("daily", sdkmath.NewUint(1000), sdkmath.NewUint(1000), 86400)
}

func TestMsgsTestSuite(t *testing.T) {
	suite.Run(t, new(MsgsTestSuite))
}

func (s *MsgsTestSuite) TestMsgAddPath() {
	testCases := []struct {
		name    string
		msg     *types.MsgAddPath
		expPass bool
	}{
		{
			name:    "success: valid add msg",
			msg:     types.NewMsgAddPath(s.authority, s.path, []types.Quota{s.quota}),
			expPass: true,
		},
		{
			name:    "success: empty quota list",
			msg:     types.NewMsgAddPath(s.authority, s.path, nil),
			expPass: true,
		},
		{
			name:    "failure: empty signer",
			msg:     types.NewMsgAddPath("", s.path, []types.Quota{s.quota}),
			expPass: false,
		},
		{
			name:    "failure: malformed signer",
			msg:     types.NewMsgAddPath("invalid", s.path, []types.Quota{s.quota}),
			expPass: false,
		},
		{
			name:    "failure: empty owner",
			msg:     types.NewMsgAddPath(s.authority, types.NewPath("", "channel-0", "uatom"), []types.Quota{s.quota}),
			expPass: false,
		},
		{
			name:    "failure: invalid channel id",
			msg:     types.NewMsgAddPath(s.authority, types.NewPath("transfer", "channel", "uatom"), []types.Quota{s.quota}),
			expPass: false,
		},
		{
			name:    "failure: empty denom",
			msg:     types.NewMsgAddPath(s.authority, types.NewPath("transfer", "channel-0", ""), []types.Quota{s.quota}),
			expPass: false,
		},
		{
			name:    "failure: duplicate quota names",
			msg:     types.NewMsgAddPath(s.authority, s.path, []types.Quota{s.quota, s.quota}),
			expPass: false,
		},
		{
			name: "failure: unnamed quota",
			msg: types.NewMsgAddPath(s.authority, s.path, []types.Quota{
				types.NewQuota("", sdkmath.NewUint(1000), sdkmath.NewUint(1000), 86400),
			}),
			expPass: false,
		},
	}

	for i, tc := range testCases {
		err := tc.msg.ValidateBasic()
		if tc.expPass {
			s.Require().NoError(err, "valid test case %d failed: %s", i, tc.name)
		} else {
			s.Require().Error(err, "invalid test case %d passed: %s", i, tc.name)
		}
	}
}

func (s *MsgsTestSuite) TestMsgRemovePath() {
	testCases := []struct {
		name    string
		msg     *types.MsgRemovePath
		expPass bool
	}{
		{
			name:    "success: valid remove msg",
			msg:     types.NewMsgRemovePath(s.authority, s.path),
			expPass: true,
		},
		{
			name:    "failure: empty signer",
			msg:     types.NewMsgRemovePath("", s.path),
			expPass: false,
		},
		{
			name:    "failure: invalid channel id",
			msg:     types.NewMsgRemovePath(s.authority, types.NewPath("transfer", "0-channel", "uatom")),
			expPass: false,
		},
	}

	for i, tc := range testCases {
		err := tc.msg.ValidateBasic()
		if tc.expPass {
			s.Require().NoError(err, "valid test case %d failed: %s", i, tc.name)
		} else {
			s.Require().Error(err, "invalid test case %d passed: %s", i, tc.name)
		}
	}
}

func (s *MsgsTestSuite) TestMsgResetPathQuota() {
	testCases := []struct {
		name    string
		msg     *types.MsgResetPathQuota
		expPass bool
	}{
		{
			name:    "success: valid reset msg",
			msg:     types.NewMsgResetPathQuota(s.authority, s.path, "daily"),
			expPass: true,
		},
		{
			name:    "failure: empty quota name",
			msg:     types.NewMsgResetPathQuota(s.authority, s.path, ""),
			expPass: false,
		},
		{
			name:    "failure: malformed signer",
			msg:     types.NewMsgResetPathQuota("invalid", s.path, "daily"),
			expPass: false,
		},
		{
			name:    "failure: empty denom",
			msg:     types.NewMsgResetPathQuota(s.authority, types.NewPath("transfer", "channel-0", ""), "daily"),
			expPass: false,
		},
	}

	for i, tc := range testCases {
		err := tc.msg.ValidateBasic()
		if tc.expPass {
			s.Require().NoError(err, "valid test case %d failed: %s", i, tc.name)
		} else {
			s.Require().Error(err, "invalid test case %d passed: %s", i, tc.name)
		}
	}
}

func (s *MsgsTestSuite) TestMsgUpdateParams() {
	testCases := []struct {
		name    string
		msg     *types.MsgUpdateParams
		expPass bool
	}{
		{
			name:    "success: enabled",
			msg:     types.NewMsgUpdateParams(s.authority, types.NewParams(true)),
			expPass: true,
		},
		{
			name:    "success: disabled",
			msg:     types.NewMsgUpdateParams(s.authority, types.NewParams(false)),
			expPass: true,
		},
		{
			name:    "failure: empty signer",
			msg:     types.NewMsgUpdateParams("", types.DefaultParams()),
			expPass: false,
		},
	}

	for i, tc := range testCases {
		err := tc.msg.ValidateBasic()
		if tc.expPass {
			s.Require().NoError(err, "valid test case %d failed: %s", i, tc.name)
		} else {
			s.Require().Error(err, "invalid test case %d passed: %s", i, tc.name)
		}
	}
}
