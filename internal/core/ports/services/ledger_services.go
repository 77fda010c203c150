package services

import (
	"context"

	"github.com/duosplit/duo_expense_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read operations over the posted history.
type LedgerReaderSvc interface {
	// ListTransactions returns every recorded transaction summary, oldest first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListEntries returns the raw entry history in insertion order.
	ListEntries(ctx context.Context) ([]domain.Entry, error)
}

// LedgerWriterSvc defines the posting operations. Each call either appends a
// complete, balanced entry set or fails with no state change.
type LedgerWriterSvc interface {
	// PostGroupExpense splits amount equally between the parties, debiting the
	// payer's wallet and routing the odd cent into the payer's receivable.
	PostGroupExpense(ctx context.Context, payer domain.Party, amount decimal.Decimal, category domain.Category) (*domain.Transaction, error)

	// PostSettlement moves amount from one party's wallet to the other's and
	// unwinds the matching receivable/payable pair. Never touches expenses.
	PostSettlement(ctx context.Context, from, to domain.Party, amount decimal.Decimal) (*domain.Transaction, error)

	// SeedWallets initializes both wallets with starting cash.
	SeedWallets(ctx context.Context, amountA, amountB decimal.Decimal) (*domain.Transaction, error)

	// Clear discards the whole ledger history.
	Clear(ctx context.Context) error
}

// LedgerSvcFacade combines ledger read and write operations.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
