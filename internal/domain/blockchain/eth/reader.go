package eth

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ContractReader serves the three view calls of a deployed Noot contract.
type ContractReader struct {
	client   EthClient
	contract common.Address
}

func NewContractReader(client EthClient, contract common.Address) *ContractReader {
	return &ContractReader{client: client, contract: contract}
}

func (r *ContractReader) HasClaimedFreeMint(ctx context.Context, account common.Address) (bool, error) {
	claimed, err := r.client.HasClaimedFreeMint(ctx, r.contract, account)
	if err != nil {
		return false, fmt.Errorf("cannot read hasClaimedFreeMint(%s): %w", account, err)
	}

	return claimed, nil
}

func (r *ContractReader) FreeMintAmount(ctx context.Context) (*big.Int, error) {
	amount, err := r.client.FreeMintAmount(ctx, r.contract)
	if err != nil {
		return nil, fmt.Errorf("cannot read FREE_MINT_AMOUNT: %w", err)
	}

	return amount, nil
}

func (r *ContractReader) PaidMintFee(ctx context.Context) (*big.Int, error) {
	fee, err := r.client.PaidMintFee(ctx, r.contract)
	if err != nil {
		return nil, fmt.Errorf("cannot read PAID_MINT_FEE: %w", err)
	}

	return fee, nil
}
