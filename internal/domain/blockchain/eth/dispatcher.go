package eth

import (
	"context"
	"fmt"
	"strings"

	"github.com/nootlab/nootmint/internal/domain/blockchain/types"
	"github.com/nootlab/nootmint/pkg/xcontext"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, request *types.DispatchedTxRequest) *types.DispatchedTxResult
}

type EthDispatcher struct {
	client EthClient
}

func NewEthDispatcher(client EthClient) *EthDispatcher {
	return &EthDispatcher{client: client}
}

func (d *EthDispatcher) Dispatch(ctx context.Context, request *types.DispatchedTxRequest) *types.DispatchedTxResult {
	tx := request.Tx
	if tx == nil {
		xcontext.Logger(ctx).Errorf("Cannot dispatch an empty transaction on chain %s", request.Chain)
		return types.NewDispatchTxError(request, types.ErrMarshal, "")
	}

	from := request.From
	// Check the balance to see if we have enough native token.
	balance, err := d.client.BalanceAt(ctx, from, nil)
	if balance == nil {
		xcontext.Logger(ctx).Errorf("Cannot get balance for account %s: %v", from, err)
		return types.NewDispatchTxError(request, types.ErrGeneric, fmt.Sprintf("cannot get balance of %s", from))
	}

	// Cost is gas * gasPrice + value.
	minimum := tx.Cost()
	if minimum.Cmp(balance) > 0 {
		xcontext.Logger(ctx).Errorf("Balance smaller than minimum required for this transaction, "+
			"from = %s, balance = %s, minimum = %s, chain = %s", from, balance, minimum, request.Chain)
		return types.NewDispatchTxError(request, types.ErrNotEnoughBalance,
			fmt.Sprintf("balance %s is smaller than required %s", balance, minimum))
	}

	// Dispath tx.
	err = d.tryDispatchTx(ctx, request)
	if err == nil {
		xcontext.Logger(ctx).Infof("Tx is dispatched successfully for chain %s from %s txHash = %s",
			request.Chain, from, tx.Hash())
		return types.NewDispatchTxSuccess(request)
	} else if strings.Contains(err.Error(), "already known") {
		// This is a tx submission duplication. The same signed transaction is already in the
		// mempool, so it is counted as a successful submission. Ethereum does not return error
		// code in its JSON RPC, so we have to rely on string matching.
		return types.NewDispatchTxSuccess(request)
	}

	xcontext.Logger(ctx).Errorf("Failed to dispatch tx: %v", err)
	return types.NewDispatchTxError(request, types.ErrSubmitTx, err.Error())
}

func (d *EthDispatcher) tryDispatchTx(ctx context.Context, request *types.DispatchedTxRequest) error {
	return d.client.SendTransaction(ctx, request.Tx)
}
