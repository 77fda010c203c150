package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/duosplit/duo_expense_app/internal/dto"
)

// ReportingHandlerTestSuite exercises the projection and admin endpoints over
// the same full-router fixture as the ledger suite.
type ReportingHandlerTestSuite struct {
	LedgerHandlerTestSuite
}

func (suite *ReportingHandlerTestSuite) seed(amountA, amountB string) {
	w := suite.postJSON("/api/v1/wallets/seed", dto.SeedWalletsRequest{AmountA: amountA, AmountB: amountB})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (suite *ReportingHandlerTestSuite) TestGetWalletBalance() {
	suite.seed("500.00", "300.00")

	var resp dto.WalletBalanceResponse
	w := suite.getJSON("/api/v1/wallets/A", &resp)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("A", resp.Party)
	suite.Equal("500.00", resp.Balance)

	w = suite.getJSON("/api/v1/wallets/B", &resp)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("300.00", resp.Balance)
}

func (suite *ReportingHandlerTestSuite) TestGetWalletBalance_UnknownParty() {
	w := suite.getJSON("/api/v1/wallets/C", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "application/problem+json")
}

func (suite *ReportingHandlerTestSuite) TestGetBudget_AllCategoriesPresent() {
	w := suite.postJSON("/api/v1/expenses", dto.CreateExpenseRequest{Payer: "A", Amount: "40.00", Category: "groceries"})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var resp dto.BudgetResponse
	w = suite.getJSON("/api/v1/budgets/B", &resp)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("B", resp.Party)
	suite.Len(resp.Budget, 5)
	suite.Equal("20.00", resp.Budget["groceries"])
	suite.Equal("0.00", resp.Budget["food"])
}

func (suite *ReportingHandlerTestSuite) TestGetSummary() {
	suite.seed("100.00", "100.00")
	w := suite.postJSON("/api/v1/expenses", dto.CreateExpenseRequest{Payer: "B", Amount: "30.00", Category: "entertainment"})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var resp dto.CompleteSummaryResponse
	w = suite.getJSON("/api/v1/summary", &resp)
	suite.Require().Equal(http.StatusOK, w.Code)

	suite.Require().Len(resp.Users, 2)
	suite.Equal("A", resp.Users[0].Party)
	suite.Equal("100.00", resp.Users[0].WalletBalance)
	suite.Equal("B", resp.Users[1].Party)
	suite.Equal("70.00", resp.Users[1].WalletBalance)
	suite.Equal("15.00", resp.Users[0].Budget["entertainment"])
	suite.Equal("15.00", resp.Users[1].Budget["entertainment"])

	suite.Require().NotNil(resp.NetDue.Owes)
	suite.Equal("A", *resp.NetDue.Owes)
	suite.Equal("15.00", resp.NetDue.Amount)
}

func (suite *ReportingHandlerTestSuite) TestReset() {
	suite.seed("50.00", "50.00")
	w := suite.postJSON("/api/v1/expenses", dto.CreateExpenseRequest{Payer: "A", Amount: "10.00", Category: "food"})
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.postJSON("/api/v1/reset", struct{}{})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var txns []dto.TransactionResponse
	suite.getJSON("/api/v1/transactions", &txns)
	suite.Empty(txns)

	var bal dto.WalletBalanceResponse
	suite.getJSON("/api/v1/wallets/A", &bal)
	suite.Equal("0.00", bal.Balance)
}

func (suite *ReportingHandlerTestSuite) TestSeedWallets_InvalidAmount() {
	w := suite.postJSON("/api/v1/wallets/seed", dto.SeedWalletsRequest{AmountA: "-10.00", AmountB: "5.00"})
	suite.Equal(http.StatusBadRequest, w.Code)

	var problem dto.ProblemDetails
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &problem))
	suite.Equal(http.StatusBadRequest, problem.Status)
}

func (suite *ReportingHandlerTestSuite) TestHealth() {
	w := suite.getJSON("/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func TestReportingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
