package ethutil

import (
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const EtherDecimals = 18

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatUnits renders value / 10^decimals as an exact decimal string without trailing zeros,
// e.g. 10000000000000000 with 18 decimals is "0.01".
func FormatUnits(value *big.Int, decimals int) string {
	if value == nil {
		return "0"
	}

	negative := value.Sign() < 0
	digits := new(big.Int).Abs(value).String()
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}

	integer := digits[:len(digits)-decimals]
	fraction := strings.TrimRight(digits[len(digits)-decimals:], "0")

	result := integer
	if fraction != "" {
		result += "." + fraction
	}
	if negative {
		result = "-" + result
	}

	return result
}

// FormatGrouped renders value / 10^decimals the way a browser's default en-US locale prints a
// number: thousands separators and at most three fraction digits, e.g. "100,000". The value goes
// through float64 like the browser's Number, so whole parts above 2^53 are rounded.
func FormatGrouped(value *big.Int, decimals int) string {
	f, err := strconv.ParseFloat(FormatUnits(value, decimals), 64)
	if err != nil {
		return FormatUnits(value, decimals)
	}

	return printer.Sprint(number.Decimal(f, number.MaxFractionDigits(3)))
}
