package dto

import (
	"time"

	"github.com/duosplit/duo_expense_app/internal/core/domain"
	"github.com/duosplit/duo_expense_app/internal/core/money"
)

// TransactionResponse is the recorded summary of one posting. Monetary fields
// are fixed two-decimal strings, matching the inbound wire format.
type TransactionResponse struct {
	TransactionID string    `json:"transactionID"`
	Kind          string    `json:"kind"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Category      string    `json:"category,omitempty"`
	Amount        string    `json:"amount"`
	PerPartyShare string    `json:"perPartyShare,omitempty"`
	Remainder     string    `json:"remainder,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID: txn.TransactionID,
		Kind:          string(txn.Kind),
		From:          string(txn.From),
		To:            string(txn.To),
		Category:      string(txn.Category),
		Amount:        money.FormatCurrency(txn.Amount),
		Timestamp:     txn.Timestamp,
	}
	if txn.Kind == domain.KindGroupExpense {
		resp.PerPartyShare = money.FormatCurrency(txn.Share)
		resp.Remainder = money.FormatCurrency(txn.Remainder)
	}
	return resp
}

// ToTransactionResponses converts a slice of transactions to DTOs.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// EntryResponse is one immutable ledger entry.
type EntryResponse struct {
	EntryID       string         `json:"entryID"`
	TransactionID string         `json:"transactionID"`
	Kind          string         `json:"transactionKind"`
	Account       domain.Account `json:"account"`
	Delta         string         `json:"delta"`
	Timestamp     time.Time      `json:"timestamp"`
}

// ToEntryResponses converts a slice of entries to DTOs.
func ToEntryResponses(entries []domain.Entry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = EntryResponse{
			EntryID:       e.EntryID,
			TransactionID: e.TransactionID,
			Kind:          string(e.Kind),
			Account:       e.Account,
			Delta:         money.FormatCurrency(e.Delta),
			Timestamp:     e.Timestamp,
		}
	}
	return responses
}
