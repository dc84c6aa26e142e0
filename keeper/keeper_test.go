package keeper_test

import (
	"testing"
	"time"

	testifysuite "github.com/stretchr/testify/suite"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"

	ratelimiter "github.com/cosmos/ibc-go/modules/rate-limiter"
	"github.com/cosmos/ibc-go/modules/rate-limiter/keeper"
	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	ibcexported "github.com/cosmos/ibc-go/v10/modules/core/exported"
)

var (
	authority = authtypes.NewModuleAddress(govtypes.ModuleName).String()

	// Window openings are anchored to the block time, so every test pins it.
	testStartTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
)

// dummyICS4Wrapper satisfies the ICS4Wrapper interface for keeper construction.
type dummyICS4Wrapper struct{}

func (dummyICS4Wrapper) SendPacket(sdk.Context, string, string, clienttypes.Height, uint64, []byte) (uint64, error) {
	return 0, nil
}

func (dummyICS4Wrapper) WriteAcknowledgement(sdk.Context, ibcexported.PacketI, ibcexported.Acknowledgement) error {
	return nil
}

func (dummyICS4Wrapper) GetAppVersion(sdk.Context, string, string) (string, bool) {
	return "", false
}

type KeeperTestSuite struct {
	testifysuite.Suite

	cdc codec.Codec
	ctx sdk.Context

	keeper keeper.Keeper

	storeKey *storetypes.KVStoreKey
}

func TestKeeperTestSuite(t *testing.T) {
	testifysuite.Run(t, new(KeeperTestSuite))
}

func (s *KeeperTestSuite) SetupTest() {
	encodingCfg := moduletestutil.MakeTestEncodingConfig(ratelimiter.AppModuleBasic{})
	s.cdc = encodingCfg.Codec

	s.storeKey = storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	cms := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	cms.MountStoreWithDB(s.storeKey, storetypes.StoreTypeIAVL, db)

	err := cms.LoadLatestVersion()
	s.Require().NoError(err)

	s.ctx = sdk.NewContext(cms, tmproto.Header{Time: testStartTime}, false, log.NewNopLogger())
	s.keeper = keeper.NewKeeper(s.cdc, runtime.NewKVStoreService(s.storeKey), dummyICS4Wrapper{}, authority)
}

// advanceTime moves the block time of the test context forward.
func (s *KeeperTestSuite) advanceTime(d time.Duration) {
	s.ctx = s.ctx.WithBlockTime(s.ctx.BlockTime().Add(d))
}

func (s *KeeperTestSuite) TestNewKeeper() {
	testCases := []struct {
		name          string
		instantiateFn func()
		panicMsg      string
	}{
		{
			name: "success",
			instantiateFn: func() {
				keeper.NewKeeper(
					s.cdc,
					runtime.NewKVStoreService(s.storeKey),
					dummyICS4Wrapper{},
					authority,
				)
			},
			panicMsg: "",
		},
		{
			name: "failure: empty authority",
			instantiateFn: func() {
				keeper.NewKeeper(
					s.cdc,
					runtime.NewKVStoreService(s.storeKey),
					dummyICS4Wrapper{},
					"", // empty authority
				)
			},
			panicMsg: "authority must be non-empty",
		},
	}

	for _, tc := range testCases {
		tc := tc
		s.SetupTest()

		s.Run(tc.name, func() {
			if tc.panicMsg == "" {
				s.Require().NotPanics(
					tc.instantiateFn,
				)
			} else {
				s.Require().PanicsWithError(
					tc.panicMsg,
					tc.instantiateFn,
				)
			}
		})
	}
}

func (s *KeeperTestSuite) TestGetAuthority() {
	s.Require().Equal(authority, s.keeper.GetAuthority())
}

func (s *KeeperTestSuite) TestSetICS4Wrapper() {
	wrapper := dummyICS4Wrapper{}
	s.keeper.SetICS4Wrapper(wrapper)
	s.Require().Equal(wrapper, s.keeper.ICS4Wrapper())
}
