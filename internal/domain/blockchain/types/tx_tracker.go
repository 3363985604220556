package types

import (
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

type TrackResult int

const (
	TrackResultConfirmed TrackResult = iota
	TrackResultReverted
)

func (r TrackResult) String() string {
	if r == TrackResultReverted {
		return "reverted"
	}

	return "confirmed"
}

// TrackUpdate is the outcome of observing one transaction until it is included in a block.
type TrackUpdate struct {
	Chain       string
	Hash        common.Hash
	BlockHeight int64
	GasUsed     uint64
	Result      TrackResult
}

func NewTrackUpdate(chain string, receipt *ethtypes.Receipt) TrackUpdate {
	update := TrackUpdate{
		Chain:   chain,
		Hash:    receipt.TxHash,
		GasUsed: receipt.GasUsed,
		Result:  TrackResultConfirmed,
	}

	if receipt.BlockNumber != nil {
		update.BlockHeight = receipt.BlockNumber.Int64()
	}

	if receipt.Status == ethtypes.ReceiptStatusFailed {
		update.Result = TrackResultReverted
	}

	return update
}
