package eth

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/nootlab/nootmint/contract/noot"
	"github.com/nootlab/nootmint/pkg/ethutil"
	"github.com/nootlab/nootmint/pkg/xcontext"
)

const DefaultRelayMethod = "relay_sendSponsoredTransaction"

// RPCCaller is the subset of *rpc.Client used by the relay.
type RPCCaller interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}

// SponsoredCall is a contract call whose gas is paid by a paymaster. Field names follow the
// zkSync transaction request.
type SponsoredCall struct {
	From           common.Address `json:"from"`
	To             common.Address `json:"to"`
	Data           hexutil.Bytes  `json:"data"`
	Paymaster      common.Address `json:"paymaster"`
	PaymasterInput hexutil.Bytes  `json:"paymasterInput"`
}

// SponsoredRelay submits freeMint() through a relay that attaches the paymaster and forwards the
// transaction on behalf of the account.
type SponsoredRelay struct {
	client         RPCCaller
	method         string
	contract       common.Address
	paymaster      common.Address
	data           []byte
	paymasterInput []byte
}

func NewSponsoredRelay(client RPCCaller, method string, contract, paymaster common.Address) (*SponsoredRelay, error) {
	if method == "" {
		method = DefaultRelayMethod
	}

	parsed, err := noot.NootMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	data, err := parsed.Pack("freeMint")
	if err != nil {
		return nil, err
	}

	paymasterInput, err := ethutil.GeneralPaymasterInput(nil)
	if err != nil {
		return nil, err
	}

	return &SponsoredRelay{
		client:         client,
		method:         method,
		contract:       contract,
		paymaster:      paymaster,
		data:           data,
		paymasterInput: paymasterInput,
	}, nil
}

func (r *SponsoredRelay) Call(account common.Address) SponsoredCall {
	return SponsoredCall{
		From:           account,
		To:             r.contract,
		Data:           r.data,
		Paymaster:      r.paymaster,
		PaymasterInput: r.paymasterInput,
	}
}

func (r *SponsoredRelay) WriteFreeMint(ctx context.Context, account common.Address) (common.Hash, error) {
	var hash common.Hash
	if err := r.client.CallContext(ctx, &hash, r.method, r.Call(account)); err != nil {
		xcontext.Logger(ctx).Errorf("Relay rejected free mint for %s: %v", account, err)
		return common.Hash{}, err
	}

	if hash == (common.Hash{}) {
		return common.Hash{}, fmt.Errorf("relay returned an empty transaction hash")
	}

	xcontext.Logger(ctx).Infof("Free mint for %s relayed, txHash = %s", account, hash)
	return hash, nil
}
