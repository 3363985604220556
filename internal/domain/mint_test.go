package domain

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/nootlab/nootmint/internal/domain/mint"
	"github.com/nootlab/nootmint/internal/model"
	"github.com/nootlab/nootmint/mocks"
	"github.com/nootlab/nootmint/pkg/errorx"
	"github.com/nootlab/nootmint/pkg/testutil"
	"github.com/nootlab/nootmint/pkg/xcontext"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAccount = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"

type mintDeps struct {
	reader    *mocks.ContractReader
	sponsored *mocks.SponsoredWriter
	paid      *mocks.PaidWriter
	receipts  *mocks.ReceiptWatcher
}

func newTestMintDomain(t *testing.T) (MintDomain, *mintDeps, context.Context) {
	ctx := testutil.MockContext()
	deps := &mintDeps{
		reader:    &mocks.ContractReader{},
		sponsored: &mocks.SponsoredWriter{},
		paid:      &mocks.PaidWriter{},
		receipts:  &mocks.ReceiptWatcher{},
	}

	sessions := mint.NewSessionTable(ctx, func(ctx context.Context, account mint.Account) mint.Controller {
		return mint.NewController(ctx, account, deps.reader, deps.sponsored, deps.paid, deps.receipts, nil)
	})
	t.Cleanup(sessions.Close)

	return NewMintDomain(sessions, mint.DefaultViewOptions()), deps, ctx
}

// withKind attaches a routed request carrying the {kind} path parameter.
func withKind(ctx context.Context, kind string) context.Context {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("kind", kind)

	r := httptest.NewRequest(http.MethodPost, "/api/mint/"+kind, nil)
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	return xcontext.WithHTTPRequest(ctx, r)
}

func (d *mintDeps) expectReads(claimed bool) {
	address := common.HexToAddress(testAccount)
	d.reader.On("HasClaimedFreeMint", mock.Anything, address).Return(claimed, nil).Once()
	d.reader.On("FreeMintAmount", mock.Anything).
		Return(new(big.Int).Mul(big.NewInt(100_000), big.NewInt(1e18)), nil).Once()
	d.reader.On("PaidMintFee", mock.Anything).Return(big.NewInt(1e16), nil).Once()
}

func Test_mintDomain_Get(t *testing.T) {
	domain, deps, ctx := newTestMintDomain(t)
	deps.expectReads(false)

	resp, err := domain.Get(ctx, &model.GetMintRequest{Account: testAccount})
	require.NoError(t, err)
	require.True(t, resp.Connected)
	require.True(t, resp.Loaded)
	require.NotNil(t, resp.FreeMint)
	require.Equal(t, "Free Mint (100,000 Tokens)", resp.FreeMint.Label)
	require.Equal(t, "0.01 ETH", resp.PaidMint.FeeLabel)

	// The session is reused, the chain is not read again.
	_, err = domain.Get(ctx, &model.GetMintRequest{Account: testAccount})
	require.NoError(t, err)
	deps.reader.AssertExpectations(t)
}

func Test_mintDomain_Get_InvalidAccount(t *testing.T) {
	domain, _, ctx := newTestMintDomain(t)

	_, err := domain.Get(ctx, &model.GetMintRequest{Account: "0x1234"})
	require.ErrorIs(t, err, errorx.Error{Code: errorx.BadRequest})
}

func Test_mintDomain_FreeMint_Rejected(t *testing.T) {
	domain, deps, ctx := newTestMintDomain(t)
	deps.expectReads(false)
	deps.sponsored.On("WriteFreeMint", mock.Anything, common.HexToAddress(testAccount)).
		Return(common.Hash{}, errors.New("user rejected")).Once()

	resp, err := domain.Mint(withKind(ctx, "free"), &model.MintRequest{Account: testAccount})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AttemptID)
	require.Empty(t, resp.TxHash)
	require.Equal(t, "Error: user rejected", resp.View.FreeMint.Error)
	require.False(t, resp.View.FreeMint.Disabled)
}

func Test_mintDomain_FreeMint_AlreadyClaimed(t *testing.T) {
	domain, deps, ctx := newTestMintDomain(t)
	deps.expectReads(true)

	_, err := domain.Mint(withKind(ctx, "free"), &model.MintRequest{Account: testAccount})
	require.ErrorIs(t, err, errorx.Error{Code: errorx.AlreadyClaimed})
	deps.sponsored.AssertNotCalled(t, "WriteFreeMint", mock.Anything, mock.Anything)
}

func Test_mintDomain_PaidMint(t *testing.T) {
	domain, deps, ctx := newTestMintDomain(t)
	deps.expectReads(false)

	hash := common.HexToHash("0xabc")
	deps.paid.On("WritePaidMint", mock.Anything, common.HexToAddress(testAccount), big.NewInt(1e16)).
		Return(hash, nil).Once()
	deps.receipts.On("WaitReceipt", mock.Anything, hash).
		Run(func(args mock.Arguments) { <-args.Get(0).(context.Context).Done() }).
		Return(nil, context.Canceled)

	resp, err := domain.Mint(withKind(ctx, "paid"), &model.MintRequest{Account: testAccount})
	require.NoError(t, err)
	require.Equal(t, hash.Hex(), resp.TxHash)
	require.Equal(t, "paid", resp.Kind)
	require.True(t, resp.View.PaidMint.Pending)
	require.True(t, resp.View.PaidMint.Disabled)

	_, err = domain.Mint(withKind(ctx, "paid"), &model.MintRequest{Account: testAccount})
	require.ErrorIs(t, err, errorx.Error{Code: errorx.MintPending})
}

func Test_mintDomain_Mint_InvalidKind(t *testing.T) {
	domain, deps, ctx := newTestMintDomain(t)

	for _, kind := range []string{"", "bonus", "FREE"} {
		_, err := domain.Mint(withKind(ctx, kind), &model.MintRequest{Account: testAccount})
		require.ErrorIs(t, err, errorx.Error{Code: errorx.BadRequest}, kind)
	}

	_, err := domain.Mint(ctx, &model.MintRequest{Account: testAccount})
	require.ErrorIs(t, err, errorx.Error{Code: errorx.BadRequest})
	deps.reader.AssertNotCalled(t, "PaidMintFee", mock.Anything)
}

func Test_mintDomain_NoAccount(t *testing.T) {
	domain, deps, ctx := newTestMintDomain(t)

	resp, err := domain.Get(ctx, &model.GetMintRequest{})
	require.NoError(t, err)
	require.False(t, resp.Connected)

	_, err = domain.Mint(withKind(ctx, "free"), &model.MintRequest{})
	require.ErrorIs(t, err, errorx.Error{Code: errorx.AccountRequired})
	deps.reader.AssertNotCalled(t, "PaidMintFee", mock.Anything)
}

func Test_mintDomain_Reload(t *testing.T) {
	domain, deps, ctx := newTestMintDomain(t)
	deps.expectReads(false)
	deps.expectReads(true)

	resp, err := domain.Get(ctx, &model.GetMintRequest{Account: testAccount})
	require.NoError(t, err)
	require.NotNil(t, resp.FreeMint)

	reloaded, err := domain.Reload(ctx, &model.MintRequest{Account: testAccount})
	require.NoError(t, err)
	require.Nil(t, reloaded.FreeMint)
	deps.reader.AssertExpectations(t)
}
