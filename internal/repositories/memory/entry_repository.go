// Package memory provides the default entry store: an append-only, in-process
// history guarded by a single lock.
package memory

import (
	"context"
	"sync"

	"github.com/duosplit/duo_expense_app/internal/core/domain"
	portsrepo "github.com/duosplit/duo_expense_app/internal/core/ports/repositories"
)

// EntryRepository keeps all entries and transaction summaries in memory.
// One RWMutex guards both slices so a projection can never observe a
// partially appended transaction.
type EntryRepository struct {
	mu           sync.RWMutex
	entries      []domain.Entry
	transactions []domain.Transaction
}

// NewEntryRepository creates an empty in-memory entry store.
func NewEntryRepository() *EntryRepository {
	return &EntryRepository{}
}

var _ portsrepo.EntryRepositoryFacade = (*EntryRepository)(nil)

// SaveTransaction appends the transaction summary and its entries under one
// lock acquisition.
func (r *EntryRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, entries []domain.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = append(r.transactions, txn)
	r.entries = append(r.entries, entries...)
	return nil
}

// SaveSeed appends the wallet-initialization entries. Storage-wise a seed is
// an ordinary append; the distinction matters only to the posting rules.
func (r *EntryRepository) SaveSeed(ctx context.Context, txn domain.Transaction, entries []domain.Entry) error {
	return r.SaveTransaction(ctx, txn, entries)
}

// AllEntries returns a copy of the full history in insertion order.
func (r *EntryRepository) AllEntries(ctx context.Context) ([]domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	copied := make([]domain.Entry, len(r.entries))
	copy(copied, r.entries)
	return copied, nil
}

// ListTransactions returns a copy of the recorded summaries, oldest first.
func (r *EntryRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	copied := make([]domain.Transaction, len(r.transactions))
	copy(copied, r.transactions)
	return copied, nil
}

// Clear discards entries and summaries together.
func (r *EntryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.transactions = nil
	return nil
}
