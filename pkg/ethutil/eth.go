package ethutil

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"
)

// GeneralPaymasterFlow is the signature of the zkSync paymaster flow used for sponsored calls
// that need no token approval.
const GeneralPaymasterFlow = "general(bytes)"

var bytesArguments abi.Arguments

func init() {
	bytesType, err := abi.NewType("bytes", "", nil)
	if err != nil {
		panic(err)
	}

	bytesArguments = abi.Arguments{{Type: bytesType}}
}

// MethodID returns the 4-byte selector of a canonical function signature such as
// "transfer(address,uint256)".
func MethodID(signature string) []byte {
	hash := sha3.NewLegacyKeccak256()
	hash.Write([]byte(signature))
	return hash.Sum(nil)[:4]
}

// GeneralPaymasterInput encodes general(bytes innerInput). Sponsored mints pass an empty
// inner input.
func GeneralPaymasterInput(innerInput []byte) ([]byte, error) {
	if innerInput == nil {
		innerInput = []byte{}
	}

	packed, err := bytesArguments.Pack(innerInput)
	if err != nil {
		return nil, err
	}

	return append(MethodID(GeneralPaymasterFlow), packed...), nil
}

// LoadPrivateKey parses a hex private key, with or without 0x prefix.
func LoadPrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if hexKey == "" {
		return nil, fmt.Errorf("private key is empty")
	}

	key, err := ethcrypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return key, nil
}

func AddressFromKey(key *ecdsa.PrivateKey) common.Address {
	return ethcrypto.PubkeyToAddress(key.PublicKey)
}

// ParseAddress accepts only well-formed 20-byte hex addresses. common.HexToAddress silently
// truncates longer input, which would send transactions to the wrong contract.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %q", s)
	}

	return common.HexToAddress(s), nil
}

// ExplorerTxURL builds the block-explorer link for a transaction hash.
func ExplorerTxURL(explorerURL, txHash string) string {
	return fmt.Sprintf("%s/tx/%s", strings.TrimRight(explorerURL, "/"), txHash)
}
