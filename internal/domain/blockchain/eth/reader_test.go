package eth

import (
	"errors"
	"math/big"
	"testing"

	"github.com/nootlab/nootmint/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContractReader(t *testing.T) {
	amount := new(big.Int).Mul(big.NewInt(100_000), big.NewInt(1e18))

	client := &mocks.EthClient{}
	client.On("HasClaimedFreeMint", mock.Anything, testContract, testFrom).Return(true, nil)
	client.On("FreeMintAmount", mock.Anything, testContract).Return(amount, nil)
	client.On("PaidMintFee", mock.Anything, testContract).Return(nil, errors.New("execution reverted"))

	reader := NewContractReader(client, testContract)

	claimed, err := reader.HasClaimedFreeMint(testContext(), testFrom)
	require.NoError(t, err)
	require.True(t, claimed)

	got, err := reader.FreeMintAmount(testContext())
	require.NoError(t, err)
	require.Equal(t, amount, got)

	_, err = reader.PaidMintFee(testContext())
	require.EqualError(t, err, "cannot read PAID_MINT_FEE: execution reverted")
}
