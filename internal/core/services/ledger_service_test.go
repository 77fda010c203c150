package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/duosplit/duo_expense_app/internal/apperrors"
	"github.com/duosplit/duo_expense_app/internal/core/domain"
	portsrepo "github.com/duosplit/duo_expense_app/internal/core/ports/repositories"
	portssvc "github.com/duosplit/duo_expense_app/internal/core/ports/services"
	"github.com/duosplit/duo_expense_app/internal/core/services"
)

// --- Mock EntryRepository ---
type MockEntryRepository struct {
	mock.Mock
}

// Ensure MockEntryRepository implements portsrepo.EntryRepositoryFacade
var _ portsrepo.EntryRepositoryFacade = (*MockEntryRepository)(nil)

func (m *MockEntryRepository) AllEntries(ctx context.Context) ([]domain.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockEntryRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, entries []domain.Entry) error {
	args := m.Called(ctx, txn, entries)
	return args.Error(0)
}

func (m *MockEntryRepository) SaveSeed(ctx context.Context, txn domain.Transaction, entries []domain.Entry) error {
	args := m.Called(ctx, txn, entries)
	return args.Error(0)
}

func (m *MockEntryRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEntryRepository
	service  portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEntryRepository)
	suite.service = services.NewLedgerService(suite.mockRepo)
}

func deltaFor(entries []domain.Entry, account domain.Account) (decimal.Decimal, bool) {
	for _, e := range entries {
		if e.Account == account {
			return e.Delta, true
		}
	}
	return decimal.Zero, false
}

func (suite *LedgerServiceTestSuite) TestPostGroupExpense_Success() {
	ctx := context.Background()
	amount := decimal.RequireFromString("120.50")

	var saved []domain.Entry
	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("[]domain.Entry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(2).([]domain.Entry)
		}).Return(nil).Once()

	txn, err := suite.service.PostGroupExpense(ctx, domain.PartyA, amount, domain.CategoryFood)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.KindGroupExpense, txn.Kind)
	suite.Equal(domain.PartyA, txn.From)
	suite.Equal(domain.PartyB, txn.To)
	suite.True(txn.Amount.Equal(amount))
	suite.True(txn.Share.Equal(decimal.RequireFromString("60.25")))
	suite.True(txn.Remainder.IsZero())

	suite.Require().Len(saved, 5)
	suite.NoError(services.ValidateEntries(saved))

	cash, ok := deltaFor(saved, domain.CashAccount(domain.PartyA))
	suite.Require().True(ok)
	suite.True(cash.Equal(amount.Neg()))

	expA, ok := deltaFor(saved, domain.ExpenseAccount(domain.PartyA, domain.CategoryFood))
	suite.Require().True(ok)
	expB, ok := deltaFor(saved, domain.ExpenseAccount(domain.PartyB, domain.CategoryFood))
	suite.Require().True(ok)
	suite.True(expA.Equal(expB), "both expense shares must be identical")

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostGroupExpense_OddCentGoesToReceivable() {
	ctx := context.Background()
	amount := decimal.RequireFromString("100.01")

	var saved []domain.Entry
	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("[]domain.Entry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(2).([]domain.Entry)
		}).Return(nil).Once()

	txn, err := suite.service.PostGroupExpense(ctx, domain.PartyB, amount, domain.CategoryTransport)

	suite.Require().NoError(err)
	suite.True(txn.Share.Equal(decimal.RequireFromString("50.00")))
	suite.True(txn.Remainder.Equal(decimal.RequireFromString("0.01")))

	// Both expense buckets get exactly 50.00; the payer's receivable carries
	// the extra cent.
	expA, _ := deltaFor(saved, domain.ExpenseAccount(domain.PartyA, domain.CategoryTransport))
	expB, _ := deltaFor(saved, domain.ExpenseAccount(domain.PartyB, domain.CategoryTransport))
	suite.True(expA.Equal(decimal.RequireFromString("50.00")))
	suite.True(expB.Equal(decimal.RequireFromString("50.00")))

	recv, ok := deltaFor(saved, domain.ReceivableAccount(domain.PartyB, domain.PartyA))
	suite.Require().True(ok)
	suite.True(recv.Equal(decimal.RequireFromString("50.01")))

	pay, ok := deltaFor(saved, domain.PayableAccount(domain.PartyA, domain.PartyB))
	suite.Require().True(ok)
	suite.True(pay.Equal(decimal.RequireFromString("-50.01")))

	suite.NoError(services.ValidateEntries(saved))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostGroupExpense_InvalidAmount() {
	ctx := context.Background()

	for _, amountStr := range []string{"0.00", "-5.00", "10.001", "1000000.01"} {
		_, err := suite.service.PostGroupExpense(ctx, domain.PartyA, decimal.RequireFromString(amountStr), domain.CategoryFood)
		suite.Require().Error(err, "amount %s should be rejected", amountStr)
		suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	}

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostGroupExpense_UnknownPartyAndCategory() {
	ctx := context.Background()
	amount := decimal.RequireFromString("10.00")

	_, err := suite.service.PostGroupExpense(ctx, domain.Party("C"), amount, domain.CategoryFood)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.PostGroupExpense(ctx, domain.PartyA, amount, domain.Category("rent"))
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostGroupExpense_RepoFailure() {
	ctx := context.Background()
	repoErr := errors.New("disk full")
	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("[]domain.Entry")).Return(repoErr).Once()

	_, err := suite.service.PostGroupExpense(ctx, domain.PartyA, decimal.RequireFromString("20.00"), domain.CategoryOther)

	suite.Require().Error(err)
	suite.ErrorIs(err, repoErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostSettlement_Success() {
	ctx := context.Background()
	amount := decimal.RequireFromString("60.00")

	var saved []domain.Entry
	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("[]domain.Entry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(2).([]domain.Entry)
		}).Return(nil).Once()

	txn, err := suite.service.PostSettlement(ctx, domain.PartyB, domain.PartyA, amount)

	suite.Require().NoError(err)
	suite.Equal(domain.KindSettlement, txn.Kind)
	suite.Equal(domain.PartyB, txn.From)
	suite.Equal(domain.PartyA, txn.To)

	suite.Require().Len(saved, 4)
	suite.NoError(services.ValidateEntries(saved))

	// A settlement only moves cash and unwinds debt.
	for _, e := range saved {
		suite.NotEqual(domain.Expense, e.Account.Kind, "settlements must never touch expense accounts")
	}

	fromCash, _ := deltaFor(saved, domain.CashAccount(domain.PartyB))
	toCash, _ := deltaFor(saved, domain.CashAccount(domain.PartyA))
	suite.True(fromCash.Equal(amount.Neg()))
	suite.True(toCash.Equal(amount))

	recv, ok := deltaFor(saved, domain.ReceivableAccount(domain.PartyA, domain.PartyB))
	suite.Require().True(ok)
	suite.True(recv.Equal(amount.Neg()))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostSettlement_SelfSettlement() {
	ctx := context.Background()

	_, err := suite.service.PostSettlement(ctx, domain.PartyA, domain.PartyA, decimal.RequireFromString("10.00"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSelfSettlement)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostSettlement_InvalidAmount() {
	ctx := context.Background()

	_, err := suite.service.PostSettlement(ctx, domain.PartyA, domain.PartyB, decimal.Zero)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestSeedWallets_Success() {
	ctx := context.Background()
	amountA := decimal.RequireFromString("500.00")
	amountB := decimal.RequireFromString("250.00")

	var saved []domain.Entry
	suite.mockRepo.On("SaveSeed", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("[]domain.Entry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(2).([]domain.Entry)
		}).Return(nil).Once()

	txn, err := suite.service.SeedWallets(ctx, amountA, amountB)

	suite.Require().NoError(err)
	suite.Equal(domain.KindSeed, txn.Kind)
	suite.True(txn.Amount.Equal(decimal.RequireFromString("750.00")))

	suite.Require().Len(saved, 2)
	cashA, _ := deltaFor(saved, domain.CashAccount(domain.PartyA))
	cashB, _ := deltaFor(saved, domain.CashAccount(domain.PartyB))
	suite.True(cashA.Equal(amountA))
	suite.True(cashB.Equal(amountB))

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestSeedWallets_ZeroAllowed() {
	ctx := context.Background()
	suite.mockRepo.On("SaveSeed", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("[]domain.Entry")).Return(nil).Once()

	_, err := suite.service.SeedWallets(ctx, decimal.Zero, decimal.Zero)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestSeedWallets_NegativeRejected() {
	ctx := context.Background()

	_, err := suite.service.SeedWallets(ctx, decimal.RequireFromString("-1.00"), decimal.Zero)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSeed", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestClear() {
	ctx := context.Background()
	suite.mockRepo.On("Clear", ctx).Return(nil).Once()

	err := suite.service.Clear(ctx)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

// --- ValidateEntries ---

func TestValidateEntries_Unbalanced(t *testing.T) {
	entries := []domain.Entry{
		{Account: domain.CashAccount(domain.PartyA), Delta: decimal.RequireFromString("-10.00")},
		{Account: domain.CashAccount(domain.PartyB), Delta: decimal.RequireFromString("9.99")},
	}
	err := services.ValidateEntries(entries)
	if !errors.Is(err, apperrors.ErrUnbalanced) {
		t.Fatalf("expected unbalanced error, got %v", err)
	}
}

func TestValidateEntries_MissingMirror(t *testing.T) {
	entries := []domain.Entry{
		{Account: domain.ReceivableAccount(domain.PartyA, domain.PartyB), Delta: decimal.RequireFromString("5.00")},
		{Account: domain.CashAccount(domain.PartyA), Delta: decimal.RequireFromString("-5.00")},
	}
	err := services.ValidateEntries(entries)
	if !errors.Is(err, apperrors.ErrMissingMirror) {
		t.Fatalf("expected missing mirror error, got %v", err)
	}
}
