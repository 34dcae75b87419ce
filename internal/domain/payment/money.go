package payment

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrAmountOutOfRange = errors.New("amount out of range")

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts a major-unit amount (taka, dollars) into the provider's
// smallest currency unit. Fractions of a minor unit are rounded half away from zero.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	if !amount.IsPositive() {
		return 0, ErrInvalidAmount
	}
	minor := amount.Mul(hundred).Round(0)
	if !minor.IsInteger() || minor.GreaterThan(decimal.NewFromInt(1<<53)) {
		return 0, ErrAmountOutOfRange
	}
	return minor.IntPart(), nil
}

func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}
