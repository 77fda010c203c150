package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one immutable signed delta against one account, belonging to
// exactly one transaction. Entries are only ever appended; the full history is
// the sole source of truth for every projection.
type Entry struct {
	EntryID       string          `json:"entryID"`
	TransactionID string          `json:"transactionID"`
	Kind          TransactionKind `json:"transactionKind"`
	Account       Account         `json:"account"`
	Delta         decimal.Decimal `json:"delta"`
	Timestamp     time.Time       `json:"timestamp"`
}
