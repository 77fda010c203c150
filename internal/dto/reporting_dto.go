package dto

import (
	"github.com/duosplit/duo_expense_app/internal/core/domain"
	"github.com/duosplit/duo_expense_app/internal/core/money"
	"github.com/shopspring/decimal"
)

// WalletBalanceResponse is one party's current wallet balance.
type WalletBalanceResponse struct {
	Party   string `json:"party"`
	Balance string `json:"balance"`
}

// BudgetResponse is one party's cumulative spend per category. Every category
// is always present, "0.00" when untouched.
type BudgetResponse struct {
	Party  string            `json:"party"`
	Budget map[string]string `json:"budget"`
}

// NetDueResponse is the single signed debt summary. Owes is null when the
// parties are settled up.
type NetDueResponse struct {
	Owes   *string `json:"owes"`
	Amount string  `json:"amount"`
}

// UserSummaryResponse bundles one party's wallet and budget.
type UserSummaryResponse struct {
	Party         string            `json:"party"`
	WalletBalance string            `json:"walletBalance"`
	Budget        map[string]string `json:"budget"`
}

// CompleteSummaryResponse is the full presentation state.
type CompleteSummaryResponse struct {
	Users  []UserSummaryResponse `json:"users"`
	NetDue NetDueResponse        `json:"netDue"`
}

// ToBudgetMap renders a budget projection with formatted amounts.
func ToBudgetMap(budget map[domain.Category]decimal.Decimal) map[string]string {
	out := make(map[string]string, len(budget))
	for category, total := range budget {
		out[string(category)] = money.FormatCurrency(total)
	}
	return out
}

// ToNetDueResponse converts a domain.NetDue to its DTO.
func ToNetDueResponse(netDue *domain.NetDue) NetDueResponse {
	resp := NetDueResponse{Amount: money.FormatCurrency(netDue.Amount)}
	if netDue.Owes != nil {
		owes := string(*netDue.Owes)
		resp.Owes = &owes
	}
	return resp
}

// ToCompleteSummaryResponse converts a domain.CompleteSummary to its DTO.
func ToCompleteSummaryResponse(summary *domain.CompleteSummary) CompleteSummaryResponse {
	users := make([]UserSummaryResponse, len(summary.Users))
	for i, u := range summary.Users {
		users[i] = UserSummaryResponse{
			Party:         string(u.Party),
			WalletBalance: money.FormatCurrency(u.WalletBalance),
			Budget:        ToBudgetMap(u.Budget),
		}
	}
	return CompleteSummaryResponse{
		Users:  users,
		NetDue: ToNetDueResponse(&summary.NetDue),
	}
}
