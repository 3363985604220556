package mint

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/nootlab/nootmint/pkg/enum"
)

type Kind string

var (
	KindFree = enum.New(Kind("free"), "free")
	KindPaid = enum.New(Kind("paid"), "paid")
)

type LoadStatus string

var (
	LoadUnloaded = enum.New(LoadStatus("unloaded"), "unloaded")
	LoadLoading  = enum.New(LoadStatus("loading"), "loading")
	LoadLoaded   = enum.New(LoadStatus("loaded"), "loaded")
)

type AttemptStatus string

var (
	AttemptPending   = enum.New(AttemptStatus("pending"), "pending")
	AttemptSucceeded = enum.New(AttemptStatus("succeeded"), "succeeded")
	AttemptFailed    = enum.New(AttemptStatus("failed"), "failed")
)

// MintTerms are the contract constants. Fields are nil until loaded.
type MintTerms struct {
	FreeMintAmount *big.Int
	PaidMintFee    *big.Int
}

// TransactionAttempt is one submitted mint. A kind with no attempt is idle.
type TransactionAttempt struct {
	ID          uuid.UUID
	Kind        Kind
	Status      AttemptStatus
	TxHash      common.Hash
	Receipt     *ethtypes.Receipt
	Err         error
	SubmittedAt time.Time

	// ObserveErr is set when waiting for the receipt stopped. The attempt stays pending.
	ObserveErr error
}

func newAttempt(kind Kind) *TransactionAttempt {
	return &TransactionAttempt{
		ID:          uuid.New(),
		Kind:        kind,
		Status:      AttemptPending,
		SubmittedAt: time.Now(),
	}
}

func (a *TransactionAttempt) IsPending() bool {
	return a != nil && a.Status == AttemptPending
}

func (a *TransactionAttempt) HasReceipt() bool {
	return a != nil && a.Receipt != nil
}

// ObservationStopped reports whether nothing will update a pending attempt anymore.
func (a *TransactionAttempt) ObservationStopped() bool {
	return a != nil && a.ObserveErr != nil
}

func (a *TransactionAttempt) copy() *TransactionAttempt {
	if a == nil {
		return nil
	}

	c := *a
	return &c
}

// State is a point-in-time copy of a controller, safe to read without locking.
type State struct {
	Account            Account
	Load               LoadStatus
	HasClaimedFreeMint bool
	Terms              MintTerms
	Free               *TransactionAttempt
	Paid               *TransactionAttempt
}

func (s State) Attempt(kind Kind) *TransactionAttempt {
	if kind == KindFree {
		return s.Free
	}

	return s.Paid
}
