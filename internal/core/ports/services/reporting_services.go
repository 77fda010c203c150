package services

import (
	"context"

	"github.com/duosplit/duo_expense_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvcFacade derives presentation state from the full entry history.
// Every method recomputes from scratch; results depend only on the history.
type ReportingSvcFacade interface {
	// WalletBalance is the sum of the party's CASH deltas, rounded to cents.
	WalletBalance(ctx context.Context, party domain.Party) (decimal.Decimal, error)

	// BudgetByCategory is the party's cumulative spend per category. All
	// categories are always present in the result, zero when untouched.
	BudgetByCategory(ctx context.Context, party domain.Party) (map[domain.Category]decimal.Decimal, error)

	// NetDue is the single signed quantity summarizing who owes whom.
	NetDue(ctx context.Context) (*domain.NetDue, error)

	// CompleteSummary bundles both user summaries with the net debt.
	CompleteSummary(ctx context.Context) (*domain.CompleteSummary, error)
}
