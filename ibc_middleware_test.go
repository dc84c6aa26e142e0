package ratelimiter_test

import (
	"encoding/json"
	"testing"
	"time"

	testifysuite "github.com/stretchr/testify/suite"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"

	ratelimiter "github.com/cosmos/ibc-go/modules/rate-limiter"
	"github.com/cosmos/ibc-go/modules/rate-limiter/keeper"
	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
	transfertypes "github.com/cosmos/ibc-go/v10/modules/apps/transfer/types"
	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	ibcexported "github.com/cosmos/ibc-go/v10/modules/core/exported"
)

const (
	transferPort        = "transfer"
	uatom               = "uatom"
	channelID           = "channel-0"
	counterpartyChannel = "channel-1"
)

var (
	authority = authtypes.NewModuleAddress(govtypes.ModuleName).String()

	testStartTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
)

// mockIBCModule records the callbacks the middleware forwards to it.
type mockIBCModule struct {
	recvCalled    bool
	ackCalled     bool
	timeoutCalled bool
	handshakes    []string
}

func (m *mockIBCModule) OnChanOpenInit(_ sdk.Context, _ channeltypes.Order, _ []string, _, _ string, _ channeltypes.Counterparty, version string) (string, error) {
	m.handshakes = append(m.handshakes, "OnChanOpenInit")
	return version, nil
}

func (m *mockIBCModule) OnChanOpenTry(_ sdk.Context, _ channeltypes.Order, _ []string, _, _ string, _ channeltypes.Counterparty, counterpartyVersion string) (string, error) {
	m.handshakes = append(m.handshakes, "OnChanOpenTry")
	return counterpartyVersion, nil
}

func (m *mockIBCModule) OnChanOpenAck(_ sdk.Context, _, _, _, _ string) error {
	m.handshakes = append(m.handshakes, "OnChanOpenAck")
	return nil
}

func (m *mockIBCModule) OnChanOpenConfirm(_ sdk.Context, _, _ string) error {
	m.handshakes = append(m.handshakes, "OnChanOpenConfirm")
	return nil
}

func (m *mockIBCModule) OnChanCloseInit(_ sdk.Context, _, _ string) error {
	m.handshakes = append(m.handshakes, "OnChanCloseInit")
	return nil
}

func (m *mockIBCModule) OnChanCloseConfirm(_ sdk.Context, _, _ string) error {
	m.handshakes = append(m.handshakes, "OnChanCloseConfirm")
	return nil
}

func (m *mockIBCModule) OnRecvPacket(_ sdk.Context, _ string, _ channeltypes.Packet, _ sdk.AccAddress) ibcexported.Acknowledgement {
	m.recvCalled = true
	return channeltypes.NewResultAcknowledgement([]byte{1})
}

func (m *mockIBCModule) OnAcknowledgementPacket(_ sdk.Context, _ string, _ channeltypes.Packet, _ []byte, _ sdk.AccAddress) error {
	m.ackCalled = true
	return nil
}

func (m *mockIBCModule) OnTimeoutPacket(_ sdk.Context, _ string, _ channeltypes.Packet, _ sdk.AccAddress) error {
	m.timeoutCalled = true
	return nil
}

// mockTransferModule additionally satisfies porttypes.PacketDataUnmarshaler.
type mockTransferModule struct {
	mockIBCModule
}

func (*mockTransferModule) UnmarshalPacketData(_ sdk.Context, _, _ string, bz []byte) (interface{}, string, error) {
	var data transfertypes.FungibleTokenPacketData
	if err := json.Unmarshal(bz, &data); err != nil {
		return nil, "", err
	}
	return data, transfertypes.V1, nil
}

// mockICS4Wrapper stands in for the channel keeper below the middleware.
type mockICS4Wrapper struct {
	sendCalls int
}

func (w *mockICS4Wrapper) SendPacket(sdk.Context, string, string, clienttypes.Height, uint64, []byte) (uint64, error) {
	w.sendCalls++
	return uint64(w.sendCalls), nil
}

func (*mockICS4Wrapper) WriteAcknowledgement(sdk.Context, ibcexported.PacketI, ibcexported.Acknowledgement) error {
	return nil
}

func (*mockICS4Wrapper) GetAppVersion(sdk.Context, string, string) (string, bool) {
	return transfertypes.V1, true
}

type MiddlewareTestSuite struct {
	testifysuite.Suite

	ctx    sdk.Context
	keeper keeper.Keeper

	app        *mockIBCModule
	ics4       *mockICS4Wrapper
	middleware ratelimiter.IBCMiddleware
}

func TestMiddlewareTestSuite(t *testing.T) {
	testifysuite.Run(t, new(MiddlewareTestSuite))
}

func (s *MiddlewareTestSuite) SetupTest() {
	encodingCfg := moduletestutil.MakeTestEncodingConfig(ratelimiter.AppModuleBasic{})
	key := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	cms := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)

	err := cms.LoadLatestVersion()
	s.Require().NoError(err)

	s.ctx = sdk.NewContext(cms, tmproto.Header{Time: testStartTime}, false, log.NewNopLogger())

	s.ics4 = &mockICS4Wrapper{}
	s.keeper = keeper.NewKeeper(encodingCfg.Codec, runtime.NewKVStoreService(key), s.ics4, authority)

	s.app = &mockIBCModule{}
	s.middleware = ratelimiter.NewIBCMiddleware(s.app, s.keeper)
}

// configurePath stores a single weekly quota for the test path.
func (s *MiddlewareTestSuite) configurePath(maxSend, maxRecv uint64) types.Path {
	path := types.NewPath(transferPort, channelID, uatom)
	quota := types.NewQuota("weekly", sdkmath.NewUint(maxSend), sdkmath.NewUint(maxRecv), 604800)
	s.Require().NoError(s.keeper.AddPath(s.ctx, path, []types.Quota{quota}))
	return path
}

func (s *MiddlewareTestSuite) packetData(amount string) []byte {
	bz, err := json.Marshal(transfertypes.FungibleTokenPacketData{
		Denom:    uatom,
		Amount:   amount,
		Sender:   "sender",
		Receiver: "receiver",
	})
	s.Require().NoError(err)
	return bz
}

func (s *MiddlewareTestSuite) storedFlow(path types.Path) types.Flow {
	pathLimits, found := s.keeper.GetPathLimits(s.ctx, path)
	s.Require().True(found)
	return pathLimits.Limits[0].Flow
}

func (s *MiddlewareTestSuite) TestOnRecvPacketAllowed() {
	path := s.configurePath(1000, 1000)

	packet := channeltypes.Packet{
		Sequence:           1,
		SourcePort:         transferPort,
		SourceChannel:      counterpartyChannel,
		DestinationPort:    transferPort,
		DestinationChannel: channelID,
		Data:               s.packetData("400"),
	}

	ack := s.middleware.OnRecvPacket(s.ctx, transfertypes.V1, packet, nil)
	s.Require().True(ack.Success())
	s.Require().True(s.app.recvCalled, "the packet must reach the underlying app")
	s.Require().True(s.storedFlow(path).Inflow.Equal(sdkmath.NewUint(400)))
}

func (s *MiddlewareTestSuite) TestOnRecvPacketRateLimited() {
	path := s.configurePath(1000, 1000)

	packet := channeltypes.Packet{
		Sequence:           1,
		SourcePort:         transferPort,
		SourceChannel:      counterpartyChannel,
		DestinationPort:    transferPort,
		DestinationChannel: channelID,
		Data:               s.packetData("1001"),
	}

	ack := s.middleware.OnRecvPacket(s.ctx, transfertypes.V1, packet, nil)
	s.Require().False(ack.Success(), "a throttled packet must return an error acknowledgement")
	s.Require().False(s.app.recvCalled, "a throttled packet must not reach the underlying app")
	s.Require().True(s.storedFlow(path).Inflow.IsZero())
}

func (s *MiddlewareTestSuite) TestSendPacket() {
	path := s.configurePath(1000, 1000)

	seq, err := s.middleware.SendPacket(s.ctx, transferPort, channelID, clienttypes.Height{}, 0, s.packetData("600"))
	s.Require().NoError(err)
	s.Require().Equal(uint64(1), seq)
	s.Require().Equal(1, s.ics4.sendCalls)
	s.Require().True(s.storedFlow(path).Outflow.Equal(sdkmath.NewUint(600)))

	// The next send breaches the cap and never reaches the channel keeper
	seq, err = s.middleware.SendPacket(s.ctx, transferPort, channelID, clienttypes.Height{}, 0, s.packetData("600"))
	s.Require().ErrorIs(err, types.ErrRateLimitExceeded)
	s.Require().Equal(uint64(0), seq)
	s.Require().Equal(1, s.ics4.sendCalls, "a refused send must not reach the channel keeper")
	s.Require().True(s.storedFlow(path).Outflow.Equal(sdkmath.NewUint(600)))
}

func (s *MiddlewareTestSuite) TestSendPacketDisabled() {
	path := s.configurePath(10, 10)
	s.keeper.SetParams(s.ctx, types.NewParams(false))

	_, err := s.middleware.SendPacket(s.ctx, transferPort, channelID, clienttypes.Height{}, 0, s.packetData("5000"))
	s.Require().NoError(err)
	s.Require().Equal(1, s.ics4.sendCalls)
	s.Require().True(s.storedFlow(path).Outflow.IsZero(), "no flow is recorded while disabled")
}

func (s *MiddlewareTestSuite) TestOnAcknowledgementPacket() {
	path := s.configurePath(1000, 1000)
	s.Require().NoError(s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(100)))

	packet := channeltypes.Packet{
		Sequence:           1,
		SourcePort:         transferPort,
		SourceChannel:      channelID,
		DestinationPort:    transferPort,
		DestinationChannel: counterpartyChannel,
		Data:               s.packetData("10"),
	}
	ackFailure := transfertypes.ModuleCdc.MustMarshalJSON(&channeltypes.Acknowledgement{
		Response: &channeltypes.Acknowledgement_Error{Error: "error"},
	})

	err := s.middleware.OnAcknowledgementPacket(s.ctx, transfertypes.V1, packet, ackFailure, nil)
	s.Require().NoError(err)
	s.Require().True(s.app.ackCalled)
	s.Require().True(s.storedFlow(path).Outflow.Equal(sdkmath.NewUint(90)), "a failed delivery hands the outflow back")
}

func (s *MiddlewareTestSuite) TestOnAcknowledgementPacketBadAck() {
	path := s.configurePath(1000, 1000)
	s.Require().NoError(s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(100)))

	packet := channeltypes.Packet{
		Sequence:           1,
		SourcePort:         transferPort,
		SourceChannel:      channelID,
		DestinationPort:    transferPort,
		DestinationChannel: counterpartyChannel,
		Data:               s.packetData("10"),
	}

	// An unreadable acknowledgement is logged, not surfaced, and the app
	// still sees the callback
	err := s.middleware.OnAcknowledgementPacket(s.ctx, transfertypes.V1, packet, []byte("garbage"), nil)
	s.Require().NoError(err)
	s.Require().True(s.app.ackCalled)
	s.Require().True(s.storedFlow(path).Outflow.Equal(sdkmath.NewUint(100)), "outflow unchanged")
}

func (s *MiddlewareTestSuite) TestOnTimeoutPacket() {
	path := s.configurePath(1000, 1000)
	s.Require().NoError(s.keeper.ApplyTransfer(s.ctx, path, types.FlowOut, sdkmath.NewUint(100)))

	packet := channeltypes.Packet{
		Sequence:           1,
		SourcePort:         transferPort,
		SourceChannel:      channelID,
		DestinationPort:    transferPort,
		DestinationChannel: counterpartyChannel,
		Data:               s.packetData("10"),
	}

	err := s.middleware.OnTimeoutPacket(s.ctx, transfertypes.V1, packet, nil)
	s.Require().NoError(err)
	s.Require().True(s.app.timeoutCalled)
	s.Require().True(s.storedFlow(path).Outflow.Equal(sdkmath.NewUint(90)), "a timed out transfer hands the outflow back")
}

func (s *MiddlewareTestSuite) TestHandshakePassthrough() {
	counterparty := channeltypes.Counterparty{PortId: transferPort, ChannelId: counterpartyChannel}

	version, err := s.middleware.OnChanOpenInit(s.ctx, channeltypes.UNORDERED, []string{"connection-0"}, transferPort, channelID, counterparty, transfertypes.V1)
	s.Require().NoError(err)
	s.Require().Equal(transfertypes.V1, version)

	version, err = s.middleware.OnChanOpenTry(s.ctx, channeltypes.UNORDERED, []string{"connection-0"}, transferPort, channelID, counterparty, transfertypes.V1)
	s.Require().NoError(err)
	s.Require().Equal(transfertypes.V1, version)

	s.Require().NoError(s.middleware.OnChanOpenAck(s.ctx, transferPort, channelID, counterpartyChannel, transfertypes.V1))
	s.Require().NoError(s.middleware.OnChanOpenConfirm(s.ctx, transferPort, channelID))
	s.Require().NoError(s.middleware.OnChanCloseInit(s.ctx, transferPort, channelID))
	s.Require().NoError(s.middleware.OnChanCloseConfirm(s.ctx, transferPort, channelID))

	s.Require().Equal([]string{
		"OnChanOpenInit",
		"OnChanOpenTry",
		"OnChanOpenAck",
		"OnChanOpenConfirm",
		"OnChanCloseInit",
		"OnChanCloseConfirm",
	}, s.app.handshakes)
}

func (s *MiddlewareTestSuite) TestICS4WrapperPassthrough() {
	err := s.middleware.WriteAcknowledgement(s.ctx, channeltypes.Packet{}, channeltypes.NewResultAcknowledgement([]byte{1}))
	s.Require().NoError(err)

	version, found := s.middleware.GetAppVersion(s.ctx, transferPort, channelID)
	s.Require().True(found)
	s.Require().Equal(transfertypes.V1, version)
}

func (s *MiddlewareTestSuite) TestUnmarshalPacketData() {
	// The plain app underneath cannot unmarshal, so the middleware reports it
	_, _, err := s.middleware.UnmarshalPacketData(s.ctx, transferPort, channelID, s.packetData("100"))
	s.Require().ErrorIs(err, types.ErrBadPacketData)

	// A transfer-style app underneath handles the request
	middleware := ratelimiter.NewIBCMiddleware(&mockTransferModule{}, s.keeper)

	data, version, err := middleware.UnmarshalPacketData(s.ctx, transferPort, channelID, s.packetData("100"))
	s.Require().NoError(err)
	s.Require().Equal(transfertypes.V1, version)

	packetData, ok := data.(transfertypes.FungibleTokenPacketData)
	s.Require().True(ok)
	s.Require().Equal(uatom, packetData.Denom)
	s.Require().Equal("100", packetData.Amount)
}
