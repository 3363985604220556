package mint

import (
	"errors"
	"testing"

	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/nootlab/nootmint/internal/model"
	"github.com/stretchr/testify/require"
)

func loadedState(claimed bool) State {
	return State{
		Account:            testAccount,
		Load:               LoadLoaded,
		HasClaimedFreeMint: claimed,
		Terms:              MintTerms{FreeMintAmount: testAmount, PaidMintFee: testFee},
	}
}

func TestRender_Loaded(t *testing.T) {
	view := Render(loadedState(false), DefaultViewOptions())

	require.True(t, view.Connected)
	require.True(t, view.Loaded)
	require.Equal(t, &model.MintControl{Label: "Free Mint (100,000 Tokens)"}, view.FreeMint)
	require.Equal(t, model.MintControl{
		Label:    "Paid Mint (100,000 Tokens)",
		FeeLabel: "0.01 ETH",
	}, view.PaidMint)
}

func TestRender_Claimed(t *testing.T) {
	view := Render(loadedState(true), DefaultViewOptions())

	require.Nil(t, view.FreeMint)
	require.False(t, view.PaidMint.Disabled)
}

func TestRender_NoAccount(t *testing.T) {
	view := Render(State{Load: LoadUnloaded}, DefaultViewOptions())

	require.False(t, view.Connected)
	require.False(t, view.Loaded)
	require.Empty(t, view.Account)
	require.NotNil(t, view.FreeMint)
	require.Equal(t, "Free Mint (100,000 Tokens)", view.FreeMint.Label)
	require.False(t, view.FreeMint.Disabled)
	require.Equal(t, "0.01 ETH", view.PaidMint.FeeLabel)
	require.False(t, view.PaidMint.Disabled)
}

func TestRender_Loading(t *testing.T) {
	view := Render(State{Account: testAccount, Load: LoadLoading}, DefaultViewOptions())

	require.True(t, view.Loading)
	require.NotNil(t, view.FreeMint)
}

func TestRender_Attempts(t *testing.T) {
	opts := DefaultViewOptions()

	tests := []struct {
		name    string
		attempt *TransactionAttempt
		want    model.MintControl
	}{
		{
			name:    "idle",
			attempt: nil,
			want:    model.MintControl{},
		},
		{
			name:    "pending",
			attempt: &TransactionAttempt{Status: AttemptPending, TxHash: testTxHash},
			want:    model.MintControl{Pending: true, Disabled: true},
		},
		{
			name:    "failed",
			attempt: &TransactionAttempt{Status: AttemptFailed, Err: errors.New("user rejected")},
			want:    model.MintControl{Error: "Error: user rejected"},
		},
		{
			name: "succeeded",
			attempt: &TransactionAttempt{
				Status:  AttemptSucceeded,
				TxHash:  testTxHash,
				Receipt: &ethtypes.Receipt{Status: ethtypes.ReceiptStatusSuccessful},
			},
			want: model.MintControl{
				Disabled: true,
				Success: &model.MintSuccess{
					Title:       "Paid Mint Success",
					TxHash:      testTxHash.Hex(),
					ExplorerURL: "https://sepolia.abscan.org/tx/" + testTxHash.Hex(),
				},
			},
		},
		{
			name: "reverted",
			attempt: &TransactionAttempt{
				Status:  AttemptSucceeded,
				Receipt: &ethtypes.Receipt{TxHash: testTxHash, Status: ethtypes.ReceiptStatusFailed},
			},
			want: model.MintControl{
				Disabled: true,
				Success: &model.MintSuccess{
					Title:       "Paid Mint Success",
					TxHash:      testTxHash.Hex(),
					ExplorerURL: "https://sepolia.abscan.org/tx/" + testTxHash.Hex(),
					Reverted:    true,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := loadedState(true)
			state.Paid = tt.attempt

			got := Render(state, opts).PaidMint
			got.Label, got.FeeLabel = "", ""
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRender_FreeMintSuccessTitle(t *testing.T) {
	state := loadedState(false)
	state.Free = &TransactionAttempt{
		Status:  AttemptSucceeded,
		TxHash:  testTxHash,
		Receipt: &ethtypes.Receipt{Status: ethtypes.ReceiptStatusSuccessful},
	}

	view := Render(state, ViewOptions{ExplorerURL: "https://explorer.example", CurrencySymbol: "ETH"})
	require.True(t, view.FreeMint.Disabled)
	require.Equal(t, "Free Mint Success", view.FreeMint.Success.Title)
	require.Equal(t, "https://explorer.example/tx/"+testTxHash.Hex(), view.FreeMint.Success.ExplorerURL)
	require.False(t, view.PaidMint.Disabled)
}

func TestParseAccount(t *testing.T) {
	account, err := ParseAccount("")
	require.NoError(t, err)
	require.False(t, account.IsPresent())

	account, err = ParseAccount("0x2c7536e3605d9c16a7a3d7b1898e529396a65c23")
	require.NoError(t, err)
	require.Equal(t, testAccount, account)
	require.Equal(t, "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23", account.String())

	_, err = ParseAccount("0x1234")
	require.Error(t, err)
}
