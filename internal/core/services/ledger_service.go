package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duosplit/duo_expense_app/internal/apperrors"
	"github.com/duosplit/duo_expense_app/internal/core/domain"
	"github.com/duosplit/duo_expense_app/internal/core/money"
	portsrepo "github.com/duosplit/duo_expense_app/internal/core/ports/repositories"
	portssvc "github.com/duosplit/duo_expense_app/internal/core/ports/services"
	"github.com/duosplit/duo_expense_app/internal/middleware"
)

// ledgerService turns transaction intents into balanced entry sets and
// appends them to the entry store. Both posting operations fail synchronously
// with no partial entries committed.
type ledgerService struct {
	entryRepo portsrepo.EntryRepositoryFacade
}

// NewLedgerService creates a new LedgerService backed by the given entry store.
func NewLedgerService(entryRepo portsrepo.EntryRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{entryRepo: entryRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func newEntry(txnID string, kind domain.TransactionKind, account domain.Account, delta decimal.Decimal, ts time.Time) domain.Entry {
	return domain.Entry{
		EntryID:       uuid.NewString(),
		TransactionID: txnID,
		Kind:          kind,
		Account:       account,
		Delta:         delta,
		Timestamp:     ts,
	}
}

// PostGroupExpense posts a shared expense paid by one party on behalf of both.
//
// The amount is split into equal integer-cent shares; both parties' expense
// buckets receive exactly the same share, and the truncation remainder (0 or
// 1 cent) is routed into the payer's receivable. Budgets therefore always
// reflect an exact even split; only the inter-party debt tracks who fronted
// the extra cent.
func (s *ledgerService) PostGroupExpense(ctx context.Context, payer domain.Party, amount decimal.Decimal, category domain.Category) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !payer.Valid() {
		return nil, fmt.Errorf("%w: unknown party %q", apperrors.ErrValidation, payer)
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, category)
	}
	if err := money.ValidateAmount(amount); err != nil {
		return nil, err
	}

	other := payer.Other()
	share, remainder := money.SplitEqually(amount)
	receivable := share.Add(remainder)

	now := time.Now().UTC()
	txnID := uuid.NewString()

	entries := []domain.Entry{
		newEntry(txnID, domain.KindGroupExpense, domain.CashAccount(payer), amount.Neg(), now),
		newEntry(txnID, domain.KindGroupExpense, domain.ExpenseAccount(payer, category), share, now),
		newEntry(txnID, domain.KindGroupExpense, domain.ExpenseAccount(other, category), share, now),
		newEntry(txnID, domain.KindGroupExpense, domain.ReceivableAccount(payer, other), receivable, now),
		newEntry(txnID, domain.KindGroupExpense, domain.PayableAccount(other, payer), receivable.Neg(), now),
	}

	if err := ValidateEntries(entries); err != nil {
		// Unreachable when the construction above is correct.
		logger.Error("Group expense produced an invalid entry set", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}

	txn := domain.Transaction{
		TransactionID: txnID,
		Kind:          domain.KindGroupExpense,
		From:          payer,
		To:            other,
		Category:      category,
		Amount:        amount,
		Share:         share,
		Remainder:     remainder,
		Timestamp:     now,
	}

	if err := s.entryRepo.SaveTransaction(ctx, txn, entries); err != nil {
		logger.Error("Failed to save group expense", slog.String("error", err.Error()), slog.String("transaction_id", txnID))
		return nil, fmt.Errorf("failed to save group expense: %w", err)
	}

	logger.Info("Group expense posted",
		slog.String("transaction_id", txnID),
		slog.String("payer", string(payer)),
		slog.String("category", string(category)),
		slog.String("amount", money.FormatCurrency(amount)),
	)
	return &txn, nil
}

// PostSettlement posts a debt repayment from one party to the other. It moves
// cash and unwinds the receivable/payable pair; expense buckets are never
// touched, so budgets are unaffected by settling up.
func (s *ledgerService) PostSettlement(ctx context.Context, from, to domain.Party, amount decimal.Decimal) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !from.Valid() {
		return nil, fmt.Errorf("%w: unknown party %q", apperrors.ErrValidation, from)
	}
	if !to.Valid() {
		return nil, fmt.Errorf("%w: unknown party %q", apperrors.ErrValidation, to)
	}
	if from == to {
		return nil, fmt.Errorf("%w: %q cannot settle with itself", apperrors.ErrSelfSettlement, from)
	}
	if err := money.ValidateAmount(amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txnID := uuid.NewString()

	entries := []domain.Entry{
		newEntry(txnID, domain.KindSettlement, domain.CashAccount(from), amount.Neg(), now),
		newEntry(txnID, domain.KindSettlement, domain.CashAccount(to), amount, now),
		newEntry(txnID, domain.KindSettlement, domain.ReceivableAccount(to, from), amount.Neg(), now),
		newEntry(txnID, domain.KindSettlement, domain.PayableAccount(from, to), amount, now),
	}

	if err := ValidateEntries(entries); err != nil {
		logger.Error("Settlement produced an invalid entry set", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}

	txn := domain.Transaction{
		TransactionID: txnID,
		Kind:          domain.KindSettlement,
		From:          from,
		To:            to,
		Amount:        amount,
		Timestamp:     now,
	}

	if err := s.entryRepo.SaveTransaction(ctx, txn, entries); err != nil {
		logger.Error("Failed to save settlement", slog.String("error", err.Error()), slog.String("transaction_id", txnID))
		return nil, fmt.Errorf("failed to save settlement: %w", err)
	}

	logger.Info("Settlement posted",
		slog.String("transaction_id", txnID),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
		slog.String("amount", money.FormatCurrency(amount)),
	)
	return &txn, nil
}

// SeedWallets appends one CASH entry per party with starting cash and no
// other side effects. Seed amounts may be zero; negative or sub-cent amounts
// are rejected. Seeds are exempt from the zero-sum invariant, which is why
// they go through SaveSeed rather than SaveTransaction.
func (s *ledgerService) SeedWallets(ctx context.Context, amountA, amountB decimal.Decimal) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	for _, amount := range []decimal.Decimal{amountA, amountB} {
		if amount.IsNegative() {
			return nil, fmt.Errorf("%w: seed amount %s is negative", apperrors.ErrInvalidAmount, amount.String())
		}
		if !amount.Equal(amount.Truncate(2)) {
			return nil, fmt.Errorf("%w: seed amount %s has more than two decimal places", apperrors.ErrInvalidAmount, amount.String())
		}
		if amount.GreaterThan(money.MaxAmount) {
			return nil, fmt.Errorf("%w: seed amount %s exceeds the maximum of %s", apperrors.ErrInvalidAmount, amount.String(), money.MaxAmount.String())
		}
	}

	now := time.Now().UTC()
	txnID := uuid.NewString()

	entries := []domain.Entry{
		newEntry(txnID, domain.KindSeed, domain.CashAccount(domain.PartyA), amountA, now),
		newEntry(txnID, domain.KindSeed, domain.CashAccount(domain.PartyB), amountB, now),
	}

	txn := domain.Transaction{
		TransactionID: txnID,
		Kind:          domain.KindSeed,
		From:          domain.PartyA,
		To:            domain.PartyB,
		Amount:        amountA.Add(amountB),
		Timestamp:     now,
	}

	if err := s.entryRepo.SaveSeed(ctx, txn, entries); err != nil {
		logger.Error("Failed to save wallet seed", slog.String("error", err.Error()), slog.String("transaction_id", txnID))
		return nil, fmt.Errorf("failed to save wallet seed: %w", err)
	}

	logger.Info("Wallets seeded",
		slog.String("transaction_id", txnID),
		slog.String("amount_a", money.FormatCurrency(amountA)),
		slog.String("amount_b", money.FormatCurrency(amountB)),
	)
	return &txn, nil
}

// ListTransactions returns every recorded transaction summary, oldest first.
func (s *ledgerService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.entryRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// ListEntries returns the raw entry history in insertion order.
func (s *ledgerService) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	entries, err := s.entryRepo.AllEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

// Clear discards the whole ledger history.
func (s *ledgerService) Clear(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.entryRepo.Clear(ctx); err != nil {
		logger.Error("Failed to clear ledger", slog.String("error", err.Error()))
		return fmt.Errorf("failed to clear ledger: %w", err)
	}
	logger.Info("Ledger history cleared")
	return nil
}

// ValidateEntries re-verifies a transaction's entry set: the deltas must sum
// to exactly zero, and every receivable entry must be offset by a payable
// entry on the mirrored account with the exactly negated delta (and vice
// versa). Posting never produces a failing set; this exists for
// defense-in-depth and tests.
func ValidateEntries(entries []domain.Entry) error {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Delta)
	}
	if !sum.IsZero() {
		return fmt.Errorf("%w: deltas sum to %s", apperrors.ErrUnbalanced, sum.String())
	}

	for _, e := range entries {
		mirror, ok := e.Account.Mirror()
		if !ok {
			continue
		}
		found := false
		for _, m := range entries {
			if m.Account == mirror && m.Delta.Equal(e.Delta.Neg()) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: no %s entry offsetting %s for %s", apperrors.ErrMissingMirror, mirror.Kind, e.Delta.String(), e.Account.Kind)
		}
	}
	return nil
}
