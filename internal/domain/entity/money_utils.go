package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	errs "github.com/vooz/donation-processor/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseAmount validates a money string with at most two decimal places and
// returns it as a decimal. Negative values are rejected.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return decimal.Zero, errs.ErrNegativeAmount
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	if value.Exponent() < -MaxDecimalPlaces && !value.Equal(value.Round(MaxDecimalPlaces)) {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	return value.Round(MaxDecimalPlaces), nil
}

// FormatAmount renders whole amounts without a fraction ("1000") and
// fractional ones with exactly two places ("1000.50")
func FormatAmount(amount decimal.Decimal) string {
	if amount.IsInteger() {
		return amount.Truncate(0).String()
	}
	return amount.StringFixed(MaxDecimalPlaces)
}

// AmountToFloat converts an amount for JSON consumers that expect a number
func AmountToFloat(amount decimal.Decimal) float64 {
	return amount.Round(MaxDecimalPlaces).InexactFloat64()
}
