package mocks

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

type ContractReader struct {
	mock.Mock
}

func (r *ContractReader) HasClaimedFreeMint(arg1 context.Context, arg2 common.Address) (bool, error) {
	args := r.Called(arg1, arg2)
	return args.Bool(0), args.Error(1)
}

func (r *ContractReader) FreeMintAmount(arg1 context.Context) (*big.Int, error) {
	args := r.Called(arg1)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (r *ContractReader) PaidMintFee(arg1 context.Context) (*big.Int, error) {
	args := r.Called(arg1)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

type SponsoredWriter struct {
	mock.Mock
}

func (w *SponsoredWriter) WriteFreeMint(arg1 context.Context, arg2 common.Address) (common.Hash, error) {
	args := w.Called(arg1, arg2)
	return args.Get(0).(common.Hash), args.Error(1)
}

type PaidWriter struct {
	mock.Mock
}

func (w *PaidWriter) WritePaidMint(arg1 context.Context, arg2 common.Address, arg3 *big.Int) (common.Hash, error) {
	args := w.Called(arg1, arg2, arg3)
	return args.Get(0).(common.Hash), args.Error(1)
}

type ReceiptWatcher struct {
	mock.Mock
}

func (w *ReceiptWatcher) WaitReceipt(arg1 context.Context, arg2 common.Hash) (*ethtypes.Receipt, error) {
	args := w.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ethtypes.Receipt), args.Error(1)
}
