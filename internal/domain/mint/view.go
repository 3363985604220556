package mint

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/nootlab/nootmint/internal/model"
	"github.com/nootlab/nootmint/pkg/ethutil"
)

var (
	// Shown until the contract values are loaded.
	PlaceholderFreeMintAmount = new(big.Int).Mul(big.NewInt(100_000), big.NewInt(1e18))
	PlaceholderPaidMintFee    = big.NewInt(1e16)
)

type ViewOptions struct {
	ExplorerURL    string
	CurrencySymbol string
}

func DefaultViewOptions() ViewOptions {
	return ViewOptions{
		ExplorerURL:    "https://sepolia.abscan.org",
		CurrencySymbol: "ETH",
	}
}

// Render derives what to present from a controller state.
func Render(state State, opts ViewOptions) model.MintView {
	amount := state.Terms.FreeMintAmount
	if amount == nil {
		amount = PlaceholderFreeMintAmount
	}

	fee := state.Terms.PaidMintFee
	if fee == nil {
		fee = PlaceholderPaidMintFee
	}

	formattedAmount := ethutil.FormatGrouped(amount, ethutil.EtherDecimals)

	view := model.MintView{
		Account:   state.Account.String(),
		Connected: state.Account.IsPresent(),
		Loading:   state.Load == LoadLoading,
		Loaded:    state.Load == LoadLoaded,
	}

	// Eligibility is only known once loaded, until then the free mint is offered.
	if !(state.Load == LoadLoaded && state.HasClaimedFreeMint) {
		free := renderControl(state.Free, "Free Mint", opts)
		free.Label = fmt.Sprintf("Free Mint (%s Tokens)", formattedAmount)
		view.FreeMint = &free
	}

	view.PaidMint = renderControl(state.Paid, "Paid Mint", opts)
	view.PaidMint.Label = fmt.Sprintf("Paid Mint (%s Tokens)", formattedAmount)
	view.PaidMint.FeeLabel = fmt.Sprintf("%s %s",
		ethutil.FormatUnits(fee, ethutil.EtherDecimals), opts.CurrencySymbol)

	return view
}

func renderControl(attempt *TransactionAttempt, title string, opts ViewOptions) model.MintControl {
	control := model.MintControl{
		Pending:  attempt.IsPending(),
		Disabled: attempt.IsPending() || attempt.HasReceipt(),
	}

	if attempt == nil {
		return control
	}

	if attempt.HasReceipt() {
		hash := attempt.TxHash
		if hash == (common.Hash{}) {
			hash = attempt.Receipt.TxHash
		}

		control.Success = &model.MintSuccess{
			Title:       title + " Success",
			TxHash:      hash.Hex(),
			ExplorerURL: ethutil.ExplorerTxURL(opts.ExplorerURL, hash.Hex()),
			Reverted:    attempt.Receipt.Status == ethtypes.ReceiptStatusFailed,
		}
	}

	if attempt.Status == AttemptFailed && attempt.Err != nil {
		control.Error = "Error: " + attempt.Err.Error()
	}

	return control
}
