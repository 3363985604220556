package eth

import (
	"context"
	"errors"
	"fmt"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/nootlab/nootmint/pkg/xcontext"
)

const (
	MaxReceiptRetry = 5
)

// ReceiptFetcher polls for the receipt of a single transaction until it is mined.
type ReceiptFetcher struct {
	chain     string
	client    EthClient
	retryTime time.Duration
}

func NewReceiptFetcher(client EthClient, chain string, retryTime time.Duration) *ReceiptFetcher {
	if retryTime <= 0 {
		retryTime = time.Second * 5
	}

	return &ReceiptFetcher{
		chain:     chain,
		client:    client,
		retryTime: retryTime,
	}
}

// WaitReceipt blocks until the receipt is available, ctx is done, or the RPC fails
// MaxReceiptRetry times in a row. A transaction that is not mined yet is not a failure.
func (rf *ReceiptFetcher) WaitReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
	retry := 0
	for {
		receipt, err := rf.client.TransactionReceipt(ctx, txHash)
		switch {
		case err == nil && receipt != nil:
			return receipt, nil

		case err == nil || errors.Is(err, ethereum.NotFound):
			retry = 0

		case ctx.Err() != nil:
			return nil, ctx.Err()

		default:
			if retry == MaxReceiptRetry {
				xcontext.Logger(ctx).Errorf("Cannot get receipt for tx with hash %s on chain %s",
					txHash, rf.chain)
				return nil, fmt.Errorf("cannot get receipt for tx %s: %w", txHash, err)
			}

			xcontext.Logger(ctx).Warnf("Cannot get receipt for tx hash %s: %v", txHash, err)
			retry++
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(rf.retryTime):
		}
	}
}
