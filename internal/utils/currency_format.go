package utils

import "github.com/shopspring/decimal"

// FormatMinorUnits renders an integer minor-unit amount as a display string
// with the given currency precision.
// Example: 123456 with precision 2 returns "1234.56"
// Example: 123456 with precision 0 returns "123456"
func FormatMinorUnits(amount int64, precision int) string {
	return decimal.New(amount, -int32(precision)).StringFixed(int32(precision))
}

// MinorUnitsToDecimal converts an integer minor-unit amount to its decimal
// major-unit value, for response payloads that carry display amounts.
func MinorUnitsToDecimal(amount int64, precision int) decimal.Decimal {
	return decimal.New(amount, -int32(precision))
}
