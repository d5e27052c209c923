package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPLN formats an amount the way the panel shows money.
// Example: 1234.5 returns "1234.50 zł"
func FormatPLN(amount decimal.Decimal) string {
	return amount.StringFixed(2) + " zł"
}

// FormatHours drops trailing zeros, 8.50 returns "8.5".
func FormatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}

// ParseAmount accepts both "12.50" and "12,50".
func ParseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
}
