package domain

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// DefaultTokenDecimals matches USDC.
const DefaultTokenDecimals int32 = 6

// ToDisplay converts base units into display units (amount / 10^decimals).
// The result is exact.
func ToDisplay(amount *big.Int, decimals int32) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(amount, -decimals)
}

// ToBaseUnits converts a display amount into base units, flooring any
// fraction finer than the token's precision.
func ToBaseUnits(display decimal.Decimal, decimals int32) *big.Int {
	return display.Shift(decimals).Floor().BigInt()
}

// FormatDisplay renders base units as a plain decimal string with no
// trailing zeros, e.g. 12500000 with 6 decimals is "12.5".
func FormatDisplay(amount *big.Int, decimals int32) string {
	return ToDisplay(amount, decimals).String()
}
