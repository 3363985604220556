package eth

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/nootlab/nootmint/internal/domain/blockchain/types"
	"github.com/nootlab/nootmint/mocks"
	"github.com/nootlab/nootmint/pkg/errorx"
	"github.com/nootlab/nootmint/pkg/ethutil"
	"github.com/nootlab/nootmint/pkg/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPrivateKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

var testContract = common.HexToAddress(testutil.ContractAddress)

type fakeDispatcher struct {
	requests []*types.DispatchedTxRequest
	fail     types.DispatchError
	message  string
}

func (d *fakeDispatcher) Dispatch(ctx context.Context, request *types.DispatchedTxRequest) *types.DispatchedTxResult {
	d.requests = append(d.requests, request)
	if d.fail != types.ErrNil {
		return types.NewDispatchTxError(request, d.fail, d.message)
	}

	return types.NewDispatchTxSuccess(request)
}

func TestPaidMinter_WritePaidMint(t *testing.T) {
	key, err := ethutil.LoadPrivateKey(testPrivateKey)
	require.NoError(t, err)

	fee := big.NewInt(1e16)
	tx := testTx()

	client := &mocks.EthClient{}
	client.On("GetSignedPaidMintTx", mock.Anything, testContract, key, fee).Return(tx, nil)

	dispatcher := &fakeDispatcher{}
	minter := NewPaidMinter("abstract-testnet", client, dispatcher, testContract, key)
	require.Equal(t, testFrom, minter.SignerAddress())

	hash, err := minter.WritePaidMint(testContext(), testFrom, fee)
	require.NoError(t, err)
	require.Equal(t, tx.Hash(), hash)
	require.Len(t, dispatcher.requests, 1)
	require.Equal(t, testFrom, dispatcher.requests[0].From)
	require.Equal(t, "abstract-testnet", dispatcher.requests[0].Chain)
}

func TestPaidMinter_WritePaidMint_DispatchFailure(t *testing.T) {
	key, err := ethutil.LoadPrivateKey(testPrivateKey)
	require.NoError(t, err)

	tests := []struct {
		name    string
		fail    types.DispatchError
		message string
		wantErr string
	}{
		{
			name:    "not enough balance",
			fail:    types.ErrNotEnoughBalance,
			message: "balance 0 is smaller than required 10000000000000000",
			wantErr: "not enough balance: balance 0 is smaller than required 10000000000000000",
		},
		{
			name:    "rejected by node",
			fail:    types.ErrSubmitTx,
			message: "insufficient funds for gas * price + value",
			wantErr: "insufficient funds for gas * price + value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mocks.EthClient{}
			client.On("GetSignedPaidMintTx", mock.Anything, testContract, key, mock.Anything).Return(testTx(), nil)

			dispatcher := &fakeDispatcher{fail: tt.fail, message: tt.message}
			minter := NewPaidMinter("abstract-testnet", client, dispatcher, testContract, key)

			_, err := minter.WritePaidMint(testContext(), testFrom, big.NewInt(1e16))
			require.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestPaidMinter_WritePaidMint_PermissionDenied(t *testing.T) {
	key, err := ethutil.LoadPrivateKey(testPrivateKey)
	require.NoError(t, err)

	tests := []struct {
		name    string
		minter  *PaidMinter
		account common.Address
	}{
		{
			name:    "no signer",
			minter:  NewPaidMinter("abstract-testnet", &mocks.EthClient{}, &fakeDispatcher{}, testContract, nil),
			account: testFrom,
		},
		{
			name:    "other account",
			minter:  NewPaidMinter("abstract-testnet", &mocks.EthClient{}, &fakeDispatcher{}, testContract, key),
			account: common.HexToAddress("0x00000000000000000000000000000000000000bb"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.minter.WritePaidMint(testContext(), tt.account, big.NewInt(1e16))
			require.ErrorIs(t, err, errorx.Error{Code: errorx.PermissionDenied})
		})
	}

	require.Equal(t, common.Address{}, NewPaidMinter("", nil, nil, testContract, nil).SignerAddress())
}
