package types

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

type DispatchError int

const (
	ErrNil DispatchError = iota // no error
	ErrGeneric
	ErrNotEnoughBalance
	ErrMarshal
	ErrSubmitTx
)

func (e DispatchError) String() string {
	switch e {
	case ErrNil:
		return "no error"
	case ErrNotEnoughBalance:
		return "not enough balance"
	case ErrMarshal:
		return "malformed transaction"
	case ErrSubmitTx:
		return "failed to submit transaction"
	default:
		return "dispatch failed"
	}
}

type DispatchedTxRequest struct {
	Chain string
	From  common.Address
	Tx    *ethtypes.Transaction
}

type DispatchedTxResult struct {
	Success bool
	Err     DispatchError
	Message string
	Chain   string
	TxHash  string
}

// Error converts a failed result into an error. It returns nil for successful results. A
// transaction rejected by the node yields the node's message unchanged.
func (r *DispatchedTxResult) Error() error {
	if r.Success {
		return nil
	}

	if r.Err == ErrSubmitTx && r.Message != "" {
		return errors.New(r.Message)
	}

	if r.Message != "" {
		return fmt.Errorf("%s: %s", r.Err, r.Message)
	}

	return fmt.Errorf("%s", r.Err)
}

func NewDispatchTxError(request *DispatchedTxRequest, err DispatchError, message string) *DispatchedTxResult {
	result := &DispatchedTxResult{
		Chain:   request.Chain,
		Success: false,
		Err:     err,
		Message: message,
	}

	if request.Tx != nil {
		result.TxHash = request.Tx.Hash().Hex()
	}

	return result
}

func NewDispatchTxSuccess(request *DispatchedTxRequest) *DispatchedTxResult {
	return &DispatchedTxResult{
		Chain:   request.Chain,
		TxHash:  request.Tx.Hash().Hex(),
		Success: true,
		Err:     ErrNil,
	}
}
