package mint

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/nootlab/nootmint/pkg/errorx"
)

// Account is the connected wallet. The zero value means no wallet is connected.
type Account struct {
	address common.Address
}

func NewAccount(address common.Address) Account {
	return Account{address: address}
}

// ParseAccount accepts an empty string as "no account".
func ParseAccount(s string) (Account, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Account{}, nil
	}

	if !common.IsHexAddress(s) {
		return Account{}, errorx.New(errorx.BadRequest, "Invalid account address %s", s)
	}

	return NewAccount(common.HexToAddress(s)), nil
}

func (a Account) IsPresent() bool {
	return a.address != (common.Address{})
}

func (a Account) Address() common.Address {
	return a.address
}

func (a Account) String() string {
	if !a.IsPresent() {
		return ""
	}

	return a.address.Hex()
}
