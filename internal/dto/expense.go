package dto

import (
	"github.com/duosplit/duo_expense_app/internal/core/domain"
)

// CreateExpenseRequest defines the payload for posting a group expense.
type CreateExpenseRequest struct {
	Payer    domain.Party    `json:"payer" binding:"required,oneof=A B"`
	Amount   string          `json:"amount" binding:"required"`
	Category domain.Category `json:"category" binding:"required,oneof=food groceries transport entertainment other"`
}

// CreateSettlementRequest defines the payload for posting a settlement.
type CreateSettlementRequest struct {
	From   domain.Party `json:"from" binding:"required,oneof=A B"`
	To     domain.Party `json:"to" binding:"required,oneof=A B"`
	Amount string       `json:"amount" binding:"required"`
}

// SeedWalletsRequest defines the payload for initializing both wallets.
// Zero amounts are allowed, so the format check happens at parse time rather
// than through money.ValidateAmount.
type SeedWalletsRequest struct {
	AmountA string `json:"amountA" binding:"required"`
	AmountB string `json:"amountB" binding:"required"`
}
