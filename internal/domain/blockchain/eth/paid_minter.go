package eth

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/nootlab/nootmint/internal/domain/blockchain/types"
	"github.com/nootlab/nootmint/pkg/errorx"
	"github.com/nootlab/nootmint/pkg/ethutil"
	"github.com/nootlab/nootmint/pkg/xcontext"
)

// PaidMinter signs paidMint() with the configured wallet key and dispatches it. It can only act
// for the account that key controls.
type PaidMinter struct {
	chain      string
	client     EthClient
	dispatcher Dispatcher
	contract   common.Address
	signer     *ecdsa.PrivateKey
}

func NewPaidMinter(
	chain string,
	client EthClient,
	dispatcher Dispatcher,
	contract common.Address,
	signer *ecdsa.PrivateKey,
) *PaidMinter {
	return &PaidMinter{
		chain:      chain,
		client:     client,
		dispatcher: dispatcher,
		contract:   contract,
		signer:     signer,
	}
}

// SignerAddress returns the account this minter can sign for, or the zero address.
func (m *PaidMinter) SignerAddress() common.Address {
	if m.signer == nil {
		return common.Address{}
	}

	return ethutil.AddressFromKey(m.signer)
}

func (m *PaidMinter) WritePaidMint(ctx context.Context, account common.Address, fee *big.Int) (common.Hash, error) {
	if m.signer == nil {
		return common.Hash{}, errorx.New(errorx.PermissionDenied, "No wallet key is configured for paid mint")
	}

	if signer := m.SignerAddress(); signer != account {
		return common.Hash{}, errorx.New(errorx.PermissionDenied,
			"Account %s cannot be signed for, only %s can", account, signer)
	}

	tx, err := m.client.GetSignedPaidMintTx(ctx, m.contract, m.signer, fee)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot sign paid mint tx for %s: %v", account, err)
		return common.Hash{}, err
	}

	result := m.dispatcher.Dispatch(ctx, &types.DispatchedTxRequest{
		Chain: m.chain,
		From:  account,
		Tx:    tx,
	})
	if !result.Success {
		xcontext.Logger(ctx).Warnf("Cannot dispatch paid mint tx %s: %s: %s", result.TxHash, result.Err, result.Message)
		return common.Hash{}, result.Error()
	}

	return tx.Hash(), nil
}
