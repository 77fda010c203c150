package domain

import (
	"github.com/shopspring/decimal"
)

// NetDue summarizes which party currently owes the other. Owes is nil when
// the pair is settled up, in which case Amount is zero.
type NetDue struct {
	Owes   *Party          `json:"owes"`
	Amount decimal.Decimal `json:"amount"`
}

// UserSummary bundles one party's wallet balance and per-category spend.
type UserSummary struct {
	Party         Party                        `json:"party"`
	WalletBalance decimal.Decimal              `json:"walletBalance"`
	Budget        map[Category]decimal.Decimal `json:"budget"`
}

// CompleteSummary is the full presentation state: both user summaries plus the
// net debt between them, derived from the same entry history in one pass.
type CompleteSummary struct {
	Users  [2]UserSummary `json:"users"`
	NetDue NetDue         `json:"netDue"`
}
