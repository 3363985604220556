package main

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/nootlab/nootmint/internal/domain/mint"
	"github.com/nootlab/nootmint/mocks"
	"github.com/nootlab/nootmint/pkg/testutil"
	"github.com/nootlab/nootmint/pkg/xcontext"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApp_Help(t *testing.T) {
	var s srv
	s.loadApp()

	out := &bytes.Buffer{}
	s.app.Writer = out

	require.NoError(t, s.app.Run([]string{"nootmint", "--log-level", "silence"}))
	require.Contains(t, out.String(), "free-mint")
	require.Contains(t, out.String(), "paid-mint")
	require.Equal(t, "silence", xcontext.Configs(s.ctx).Log.Level)
}

func TestApp_InvalidLogLevel(t *testing.T) {
	var s srv
	s.loadApp()
	s.app.Writer = &bytes.Buffer{}

	require.Error(t, s.app.Run([]string{"nootmint", "--log-level", "verbose"}))
}

func TestApp_StatusRequiresContract(t *testing.T) {
	var s srv
	s.loadApp()
	s.app.Writer = &bytes.Buffer{}
	s.app.ErrWriter = &bytes.Buffer{}

	err := s.app.Run([]string{"nootmint", "--log-level", "silence", "status"})
	require.ErrorContains(t, err, "contract")
}

type snapshotController struct {
	mint.Controller
	state chan mint.State
	last  mint.State
}

func (c *snapshotController) Snapshot() mint.State {
	select {
	case c.last = <-c.state:
	default:
	}
	return c.last
}

func Test_waitReceipt(t *testing.T) {
	c := &snapshotController{state: make(chan mint.State, 1)}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, waitReceipt(ctx, c, mint.KindPaid, time.Millisecond), context.DeadlineExceeded)

	c.state <- mint.State{Paid: &mint.TransactionAttempt{Status: mint.AttemptSucceeded, Receipt: &ethtypes.Receipt{}}}
	require.NoError(t, waitReceipt(context.Background(), c, mint.KindPaid, time.Millisecond))
}

func Test_waitReceipt_ObservationStopped(t *testing.T) {
	ctx := testutil.MockContext()
	account := mint.NewAccount(common.HexToAddress("0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"))
	fee := big.NewInt(1e16)
	hash := common.HexToHash("0xabc")

	reader := &mocks.ContractReader{}
	reader.On("HasClaimedFreeMint", mock.Anything, account.Address()).Return(false, nil)
	reader.On("FreeMintAmount", mock.Anything).Return(big.NewInt(1e18), nil)
	reader.On("PaidMintFee", mock.Anything).Return(fee, nil)

	paid := &mocks.PaidWriter{}
	paid.On("WritePaidMint", mock.Anything, account.Address(), fee).Return(hash, nil)

	receipts := &mocks.ReceiptWatcher{}
	receipts.On("WaitReceipt", mock.Anything, hash).Return(nil, errors.New("cannot get receipt: retries exhausted"))

	c := mint.NewController(ctx, account, reader, nil, paid, receipts, nil)
	defer c.Close()

	require.NoError(t, c.Load(ctx))
	_, err := c.SubmitPaidMint(ctx)
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = waitReceipt(waitCtx, c, mint.KindPaid, time.Millisecond)
	require.ErrorContains(t, err, "retries exhausted")
	require.NotErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, mint.AttemptPending, c.Snapshot().Paid.Status)
}
