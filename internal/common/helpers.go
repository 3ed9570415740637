package common

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	XMRDecimals  = 12 // XMR has 12 decimals (piconero)
	FiatDecimals = 2
)

// PiconeroToXMR converts piconero to an XMR string without float precision loss.
// Trailing fractional zeros are dropped, so 10^12 renders as "1".
func PiconeroToXMR(piconero uint64) string {
	s := formatWithDecimals(piconero, XMRDecimals)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// XMRToPiconero converts an XMR string to piconero without float precision loss
func XMRToPiconero(xmr string) (uint64, error) {
	return parseWithDecimals(xmr, XMRDecimals)
}

// FiatTotal returns unitPrice * amount rounded to cents, e.g. "150.00".
func FiatTotal(piconero uint64, unitPrice float64) string {
	amount := decimal.RequireFromString(formatWithDecimals(piconero, XMRDecimals))
	return amount.Mul(decimal.NewFromFloat(unitPrice)).StringFixed(FiatDecimals)
}

// FormatFiat formats a fiat price with two decimals
func FormatFiat(price float64) string {
	return decimal.NewFromFloat(price).StringFixed(FiatDecimals)
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// Example: formatWithDecimals(24981836, 9) = "0.024981836"
func formatWithDecimals(value uint64, decimals int) string {
	s := fmt.Sprintf("%d", value)

	// Pad with leading zeros if needed
	for len(s) <= decimals {
		s = "0" + s
	}

	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}

// parseWithDecimals converts decimal string to integer by removing decimal point
// Example: parseWithDecimals("0.024981836", 9) = 24981836
func parseWithDecimals(s string, decimals int) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty string")
	}

	parts := strings.Split(s, ".")

	if len(parts) == 1 {
		n, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return 0, err
		}
		for i := 0; i < decimals; i++ {
			if n > (^uint64(0))/10 {
				return 0, fmt.Errorf("amount %q overflows", s)
			}
			n *= 10
		}
		return n, nil
	}

	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid decimal format")
	}

	whole := parts[0]
	if whole == "" {
		whole = "0"
	}
	frac := parts[1]

	// Pad or truncate fractional part to exact decimals
	if len(frac) < decimals {
		frac += strings.Repeat("0", decimals-len(frac))
	} else if len(frac) > decimals {
		frac = frac[:decimals]
	}

	return strconv.ParseUint(whole+frac, 10, 64)
}
