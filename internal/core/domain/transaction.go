package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates which posting produced a transaction.
type TransactionKind string

const (
	KindGroupExpense TransactionKind = "GROUP_EXPENSE"
	KindSettlement   TransactionKind = "SETTLEMENT"
	KindSeed         TransactionKind = "SEED"
)

// Transaction is the recorded summary of one atomic posting. It exists beside
// the raw entries so listings never have to re-derive shares from history.
//
// From/To depend on the kind: for a group expense From is the payer and To the
// other party; for a settlement From pays To; a seed is recorded as A/B.
// Share and Remainder are populated for group expenses only: both parties'
// expense buckets receive Share, and the payer's receivable carries
// Share+Remainder so only the debt absorbs the odd cent.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Kind          TransactionKind `json:"kind"`
	From          Party           `json:"from"`
	To            Party           `json:"to"`
	Category      Category        `json:"category,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Share         decimal.Decimal `json:"perPartyShare"`
	Remainder     decimal.Decimal `json:"remainder"`
	Timestamp     time.Time       `json:"timestamp"`
}
