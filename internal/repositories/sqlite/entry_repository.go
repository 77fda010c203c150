// Package sqlite provides the durable entry store, backed by an embedded
// sqlite database. Rows are only ever inserted; insertion order is preserved
// by the autoincrement sequence.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/duosplit/duo_expense_app/internal/core/domain"
	portsrepo "github.com/duosplit/duo_expense_app/internal/core/ports/repositories"
)

// EntryRepository stores entries and transaction summaries in a sqlite file.
// The mutex serializes writers with readers so no query observes a partially
// inserted transaction even across connections.
type EntryRepository struct {
	mu sync.RWMutex
	db *sql.DB
}

// NewEntryRepository opens (creating if necessary) the database at dbPath and
// applies pending migrations.
func NewEntryRepository(dbPath string) (*EntryRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &EntryRepository{db: db}, nil
}

var _ portsrepo.EntryRepositoryFacade = (*EntryRepository)(nil)

// Close releases the underlying database handle.
func (r *EntryRepository) Close() error {
	return r.db.Close()
}

// SaveTransaction inserts the summary row and all entry rows in one database
// transaction.
func (r *EntryRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, entries []domain.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO transactions (transaction_id, kind, from_party, to_party, category, amount, share, remainder, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		txn.TransactionID, string(txn.Kind), string(txn.From), string(txn.To), string(txn.Category),
		txn.Amount.String(), txn.Share.String(), txn.Remainder.String(), txn.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	for _, e := range entries {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO entries (entry_id, transaction_id, transaction_kind, account_kind, owner, counterparty, category, delta, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.EntryID, e.TransactionID, string(e.Kind), string(e.Account.Kind), string(e.Account.Owner),
			string(e.Account.Counterparty), string(e.Account.Category), e.Delta.String(), e.Timestamp.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// SaveSeed inserts the wallet-initialization entries. Same path as
// SaveTransaction; the distinction matters only to the posting rules.
func (r *EntryRepository) SaveSeed(ctx context.Context, txn domain.Transaction, entries []domain.Entry) error {
	return r.SaveTransaction(ctx, txn, entries)
}

// AllEntries returns the full history ordered by insertion sequence.
func (r *EntryRepository) AllEntries(ctx context.Context) ([]domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.db.QueryContext(ctx,
		`SELECT entry_id, transaction_id, transaction_kind, account_kind, owner, counterparty, category, delta, created_at
		 FROM entries ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		var kind, accountKind, owner, counterparty, cat, delta, createdAt string
		if err := rows.Scan(&e.EntryID, &e.TransactionID, &kind, &accountKind, &owner, &counterparty, &cat, &delta, &createdAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Kind = domain.TransactionKind(kind)
		e.Account = domain.Account{
			Kind:         domain.AccountKind(accountKind),
			Owner:        domain.Party(owner),
			Counterparty: domain.Party(counterparty),
			Category:     domain.Category(cat),
		}
		if e.Delta, err = decimal.NewFromString(delta); err != nil {
			return nil, fmt.Errorf("parse delta %q: %w", delta, err)
		}
		if e.Timestamp, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse timestamp %q: %w", createdAt, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// ListTransactions returns the recorded summaries ordered oldest first.
func (r *EntryRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.db.QueryContext(ctx,
		`SELECT transaction_id, kind, from_party, to_party, category, amount, share, remainder, created_at
		 FROM transactions ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		var kind, from, to, cat, amount, share, remainder, created string
		if err := rows.Scan(&t.TransactionID, &kind, &from, &to, &cat, &amount, &share, &remainder, &created); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Kind = domain.TransactionKind(kind)
		t.From = domain.Party(from)
		t.To = domain.Party(to)
		t.Category = domain.Category(cat)
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse amount %q: %w", amount, err)
		}
		if t.Share, err = decimal.NewFromString(share); err != nil {
			return nil, fmt.Errorf("parse share %q: %w", share, err)
		}
		if t.Remainder, err = decimal.NewFromString(remainder); err != nil {
			return nil, fmt.Errorf("parse remainder %q: %w", remainder, err)
		}
		if t.Timestamp, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parse timestamp %q: %w", created, err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txns, nil
}

// Clear discards entries and summaries together.
func (r *EntryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
