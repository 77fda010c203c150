package handlers

import (
	"net/http"

	"github.com/duosplit/duo_expense_app/internal/core/domain"
	"github.com/duosplit/duo_expense_app/internal/core/money"
	portssvc "github.com/duosplit/duo_expense_app/internal/core/ports/services"
	"github.com/duosplit/duo_expense_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles the read-only projection endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the projection query routes.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := newReportingHandler(rs)

	rg.GET("/summary", h.getSummary)
	rg.GET("/wallets/:party", h.getWalletBalance)
	rg.GET("/budgets/:party", h.getBudget)
	rg.GET("/debts", h.getNetDue)
}

func parseParty(c *gin.Context) (domain.Party, bool) {
	party := domain.Party(c.Param("party"))
	if !party.Valid() {
		respondProblem(c, http.StatusNotFound, "Unknown party", "party must be A or B")
		return "", false
	}
	return party, true
}

// getSummary godoc
// @Summary Complete summary
// @Description Returns both parties' wallet balances and budgets plus the net debt, recomputed from the full entry history.
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.CompleteSummaryResponse
// @Router /summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	summary, err := h.reportingService.CompleteSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCompleteSummaryResponse(summary))
}

// getWalletBalance godoc
// @Summary Wallet balance
// @Description Returns one party's current wallet balance.
// @Tags reporting
// @Produce json
// @Param party path string true "Party (A or B)"
// @Success 200 {object} dto.WalletBalanceResponse
// @Failure 404 {object} dto.ProblemDetails "Unknown party"
// @Router /wallets/{party} [get]
func (h *reportingHandler) getWalletBalance(c *gin.Context) {
	party, ok := parseParty(c)
	if !ok {
		return
	}

	balance, err := h.reportingService.WalletBalance(c.Request.Context(), party)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WalletBalanceResponse{
		Party:   string(party),
		Balance: money.FormatCurrency(balance),
	})
}

// getBudget godoc
// @Summary Budget by category
// @Description Returns one party's cumulative spend per category; all categories are always present.
// @Tags reporting
// @Produce json
// @Param party path string true "Party (A or B)"
// @Success 200 {object} dto.BudgetResponse
// @Failure 404 {object} dto.ProblemDetails "Unknown party"
// @Router /budgets/{party} [get]
func (h *reportingHandler) getBudget(c *gin.Context) {
	party, ok := parseParty(c)
	if !ok {
		return
	}

	budget, err := h.reportingService.BudgetByCategory(c.Request.Context(), party)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BudgetResponse{
		Party:  string(party),
		Budget: dto.ToBudgetMap(budget),
	})
}

// getNetDue godoc
// @Summary Net debt between the parties
// @Description Returns who currently owes whom and how much; owes is null when settled up.
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.NetDueResponse
// @Router /debts [get]
func (h *reportingHandler) getNetDue(c *gin.Context) {
	netDue, err := h.reportingService.NetDue(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNetDueResponse(netDue))
}
