package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/duosplit/duo_expense_app/internal/core/domain"
	"github.com/duosplit/duo_expense_app/internal/core/money"
	portsrepo "github.com/duosplit/duo_expense_app/internal/core/ports/repositories"
	portssvc "github.com/duosplit/duo_expense_app/internal/core/ports/services"
)

// reportingService folds the full entry history into presentation state.
// Every call recomputes from scratch; there is no incremental caching.
// History sizes are small enough that replay stays cheap, and recomputation
// keeps the projections trivially consistent with the ledger.
type reportingService struct {
	entryRepo portsrepo.EntryReader
}

// NewReportingService creates a new ReportingService reading from the given
// entry store.
func NewReportingService(entryRepo portsrepo.EntryReader) portssvc.ReportingSvcFacade {
	return &reportingService{entryRepo: entryRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) WalletBalance(ctx context.Context, party domain.Party) (decimal.Decimal, error) {
	if !party.Valid() {
		return decimal.Zero, fmt.Errorf("unknown party %q", party)
	}
	entries, err := s.entryRepo.AllEntries(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load entries: %w", err)
	}
	return WalletBalanceOf(party, entries), nil
}

func (s *reportingService) BudgetByCategory(ctx context.Context, party domain.Party) (map[domain.Category]decimal.Decimal, error) {
	if !party.Valid() {
		return nil, fmt.Errorf("unknown party %q", party)
	}
	entries, err := s.entryRepo.AllEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	return BudgetByCategoryOf(party, entries), nil
}

func (s *reportingService) NetDue(ctx context.Context) (*domain.NetDue, error) {
	entries, err := s.entryRepo.AllEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	netDue := NetDueOf(entries)
	return &netDue, nil
}

func (s *reportingService) CompleteSummary(ctx context.Context) (*domain.CompleteSummary, error) {
	entries, err := s.entryRepo.AllEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	parties := domain.Parties()
	summary := &domain.CompleteSummary{NetDue: NetDueOf(entries)}
	for i, party := range parties {
		summary.Users[i] = domain.UserSummary{
			Party:         party,
			WalletBalance: WalletBalanceOf(party, entries),
			Budget:        BudgetByCategoryOf(party, entries),
		}
	}
	return summary, nil
}

// WalletBalanceOf sums the CASH deltas of one party over the given history.
// Pure: the result depends only on the arguments.
func WalletBalanceOf(party domain.Party, entries []domain.Entry) decimal.Decimal {
	account := domain.CashAccount(party)
	balance := decimal.Zero
	for _, e := range entries {
		if e.Account == account {
			balance = balance.Add(e.Delta)
		}
	}
	return money.Round2(balance)
}

// BudgetByCategoryOf sums one party's EXPENSE deltas per category. Every
// category is present in the result, zero when never touched. Pure.
func BudgetByCategoryOf(party domain.Party, entries []domain.Entry) map[domain.Category]decimal.Decimal {
	budget := make(map[domain.Category]decimal.Decimal, len(domain.Categories()))
	for _, c := range domain.Categories() {
		budget[c] = decimal.Zero
	}
	for _, e := range entries {
		if e.Account.Kind != domain.Expense || e.Account.Owner != party {
			continue
		}
		budget[e.Account.Category] = budget[e.Account.Category].Add(e.Delta)
	}
	for c, total := range budget {
		budget[c] = money.Round2(total)
	}
	return budget
}

// NetDueOf reduces the two receivable accounts to a single signed quantity.
// Positive net means B owes A; negative means A owes B; zero means settled
// up, reported with a nil Owes. Deltas are integer cents so the zero check is
// exact, no epsilon involved. Pure.
func NetDueOf(entries []domain.Entry) domain.NetDue {
	receivableAB := domain.ReceivableAccount(domain.PartyA, domain.PartyB)
	receivableBA := domain.ReceivableAccount(domain.PartyB, domain.PartyA)

	net := decimal.Zero
	for _, e := range entries {
		switch e.Account {
		case receivableAB:
			net = net.Add(e.Delta)
		case receivableBA:
			net = net.Sub(e.Delta)
		}
	}

	if net.IsZero() {
		return domain.NetDue{Amount: decimal.Zero}
	}
	if net.IsPositive() {
		owes := domain.PartyB
		return domain.NetDue{Owes: &owes, Amount: money.Round2(net)}
	}
	owes := domain.PartyA
	return domain.NetDue{Owes: &owes, Amount: money.Round2(net.Neg())}
}
