// Package money provides exact decimal arithmetic for a single currency at
// two-decimal precision, plus the canonical equal-split used by the ledger.
package money

import (
	"fmt"

	"github.com/duosplit/duo_expense_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	// MinAmount and MaxAmount bound every externally supplied amount.
	MinAmount = decimal.New(1, -2)      // 0.01
	MaxAmount = decimal.NewFromInt(1e6) // 1,000,000
)

// Round2 rounds v to the nearest cent using banker's rounding. It is applied
// only at projection boundaries, where inputs are already cent-exact sums, so
// it never competes with the floor split below for remainder placement.
func Round2(v decimal.Decimal) decimal.Decimal {
	return v.RoundBank(2)
}

// ValidateAmount checks that v is a spendable amount: at least one cent, at
// most MaxAmount, and expressible exactly in integer cents.
func ValidateAmount(v decimal.Decimal) error {
	if !v.Equal(v.Truncate(2)) {
		return fmt.Errorf("%w: %s has more than two decimal places", apperrors.ErrInvalidAmount, v.String())
	}
	if v.LessThan(MinAmount) {
		return fmt.Errorf("%w: %s is below the minimum of %s", apperrors.ErrInvalidAmount, v.String(), MinAmount.String())
	}
	if v.GreaterThan(MaxAmount) {
		return fmt.Errorf("%w: %s exceeds the maximum of %s", apperrors.ErrInvalidAmount, v.String(), MaxAmount.String())
	}
	return nil
}

// SplitEqually divides total into two equal cent shares using integer-cent
// floor division. The leftover cent, 0 or 1, is returned separately; callers
// route it to the payer's receivable, never into an expense share.
// Invariant: 2*share + remainder == total exactly.
func SplitEqually(total decimal.Decimal) (share, remainder decimal.Decimal) {
	cents := total.Mul(hundred).IntPart()
	half := cents / 2
	return decimal.New(half, -2), decimal.New(cents-2*half, -2)
}

// FormatCurrency renders v as a fixed two-decimal string. Presentation only.
func FormatCurrency(v decimal.Decimal) string {
	return v.StringFixed(2)
}
