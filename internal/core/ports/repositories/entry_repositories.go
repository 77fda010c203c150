package repositories

import (
	"context"

	"github.com/duosplit/duo_expense_app/internal/core/domain"
)

// EntryReader defines read operations over the posted history.
type EntryReader interface {
	// AllEntries returns every entry ever appended, in stable insertion order.
	// Insertion order is also chronological because entries are append-only.
	AllEntries(ctx context.Context) ([]domain.Entry, error)

	// ListTransactions returns the recorded transaction summaries, one per
	// posting call, oldest first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// EntryWriter defines the append-only write operations. The atomicity unit is
// one transaction's whole entry set: a reader must never observe a partially
// appended transaction.
type EntryWriter interface {
	// SaveTransaction appends a transaction summary and its balanced entries
	// atomically.
	SaveTransaction(ctx context.Context, txn domain.Transaction, entries []domain.Entry) error

	// SaveSeed appends the wallet-initialization entries. Seeds are the one
	// posting exempt from the zero-sum balance invariant.
	SaveSeed(ctx context.Context, txn domain.Transaction, entries []domain.Entry) error

	// Clear discards the entire history, entries and summaries together.
	Clear(ctx context.Context) error
}

// EntryRepositoryFacade combines all entry store operations.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
