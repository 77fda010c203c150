package dto

import (
	"fmt"
	"regexp"

	"github.com/duosplit/duo_expense_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Amounts cross the wire as decimal strings with exactly two fractional
// digits, e.g. "120.00". The integer part is capped at seven digits so the
// schema alone bounds values at 9,999,999.99; the 1,000,000 business maximum
// is enforced right after parsing and again in the money package.
var amountPattern = regexp.MustCompile(`^\d{1,7}\.\d{2}$`)

var maxWireAmount = decimal.NewFromInt(1e6)

// ParseAmount validates the wire format of s and returns its decimal value.
func ParseAmount(s string) (decimal.Decimal, error) {
	if !amountPattern.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w: amount %q must be a positive decimal string with exactly two fractional digits", apperrors.ErrInvalidAmount, s)
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a valid decimal", apperrors.ErrInvalidAmount, s)
	}
	if v.GreaterThan(maxWireAmount) {
		return decimal.Zero, fmt.Errorf("%w: amount %q exceeds the maximum of %s", apperrors.ErrInvalidAmount, s, maxWireAmount.String())
	}
	return v, nil
}
