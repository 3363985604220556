package ethutil

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMethodID(t *testing.T) {
	require.Equal(t, "a9059cbb", hex.EncodeToString(MethodID("transfer(address,uint256)")))
	require.Equal(t, "8c5a3445", hex.EncodeToString(MethodID(GeneralPaymasterFlow)))
}

func TestGeneralPaymasterInput(t *testing.T) {
	input, err := GeneralPaymasterInput(nil)
	require.NoError(t, err)

	want := "8c5a3445" +
		"0000000000000000000000000000000000000000000000000000000000000020" +
		"0000000000000000000000000000000000000000000000000000000000000000"
	require.Equal(t, want, hex.EncodeToString(input))
}

func TestLoadPrivateKey(t *testing.T) {
	const key = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

	pk, err := LoadPrivateKey(key)
	require.NoError(t, err)
	require.Equal(t, "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23", AddressFromKey(pk).Hex())

	_, err = LoadPrivateKey("")
	require.Error(t, err)

	_, err = LoadPrivateKey("0xzz")
	require.Error(t, err)
}

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress(" 0x2c7536E3605D9C16a7a3D7b1898e529396a65c23 ")
	require.NoError(t, err)
	require.Equal(t, "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23", addr.Hex())

	_, err = ParseAddress("0xe3d94b74131f3d831b407fcef76e7b8ee78f8096ab")
	require.Error(t, err)
}

func TestExplorerTxURL(t *testing.T) {
	require.Equal(t,
		"https://sepolia.abscan.org/tx/0xabc",
		ExplorerTxURL("https://sepolia.abscan.org/", "0xabc"),
	)
}

func TestFormatUnits(t *testing.T) {
	ether := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	tests := []struct {
		name  string
		value *big.Int
		want  string
	}{
		{name: "nil", value: nil, want: "0"},
		{name: "zero", value: big.NewInt(0), want: "0"},
		{name: "fee", value: big.NewInt(10_000_000_000_000_000), want: "0.01"},
		{name: "whole", value: new(big.Int).Mul(big.NewInt(100_000), ether), want: "100000"},
		{name: "one wei", value: big.NewInt(1), want: "0.000000000000000001"},
		{name: "negative", value: big.NewInt(-1_500_000_000_000_000_000), want: "-1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatUnits(tt.value, EtherDecimals))
		})
	}
}

func TestFormatGrouped(t *testing.T) {
	ether := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	require.Equal(t, "100,000", FormatGrouped(new(big.Int).Mul(big.NewInt(100_000), ether), EtherDecimals))
	require.Equal(t, "0.01", FormatGrouped(big.NewInt(10_000_000_000_000_000), EtherDecimals))
	require.Equal(t, "1,234.568", FormatGrouped(big.NewInt(1_234_567_800_000_000_000), 15))

	// 2^53 + 1 tokens rounds to 2^53.
	require.Equal(t, "9,007,199,254,740,992", FormatGrouped(big.NewInt(9_007_199_254_740_993), 0))
}
