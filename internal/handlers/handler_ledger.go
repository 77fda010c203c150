package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/duosplit/duo_expense_app/internal/apperrors"
	"github.com/duosplit/duo_expense_app/internal/core/domain"
	"github.com/duosplit/duo_expense_app/internal/core/money"
	portssvc "github.com/duosplit/duo_expense_app/internal/core/ports/services"
	"github.com/duosplit/duo_expense_app/internal/dto"
	"github.com/duosplit/duo_expense_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ledgerHandler handles the posting endpoints.
type ledgerHandler struct {
	ledgerService    portssvc.LedgerSvcFacade
	reportingService portssvc.ReportingSvcFacade

	// postMu serializes the net-due check with the settlement posting that
	// depends on it, so two concurrent settlements cannot both pass the
	// over-settlement guard.
	postMu sync.Mutex
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade, rs portssvc.ReportingSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls, reportingService: rs}
}

// registerLedgerRoutes registers the posting and history routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade, rs portssvc.ReportingSvcFacade) {
	h := newLedgerHandler(ls, rs)

	rg.POST("/expenses", h.createExpense)
	rg.POST("/settlements", h.createSettlement)
	rg.GET("/transactions", h.listTransactions)
	rg.GET("/entries", h.listEntries)
}

// createExpense godoc
// @Summary Post a group expense
// @Description Splits the amount equally between both parties; the payer's wallet is debited and the odd cent lands in the payer's receivable.
// @Tags ledger
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ProblemDetails "Invalid amount, party or category"
// @Router /expenses [post]
func (h *ledgerHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createExpense", slog.String("error", err.Error()))
		respondProblem(c, http.StatusBadRequest, "Invalid request format", err.Error())
		return
	}

	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		logger.Warn("Rejected expense amount", slog.String("amount", req.Amount), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	txn, err := h.ledgerService.PostGroupExpense(c.Request.Context(), req.Payer, amount, req.Category)
	if err != nil {
		logger.Warn("Failed to post group expense", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// createSettlement godoc
// @Summary Post a settlement
// @Description Moves cash between the parties and unwinds the matching debt. Rejected when nothing is owed, when the direction is wrong, or when the amount exceeds the outstanding debt.
// @Tags ledger
// @Accept json
// @Produce json
// @Param settlement body dto.CreateSettlementRequest true "Settlement details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ProblemDetails "Invalid amount, party or self settlement"
// @Failure 409 {object} dto.ProblemDetails "Nothing owed, wrong direction, or over-settlement"
// @Router /settlements [post]
func (h *ledgerHandler) createSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createSettlement", slog.String("error", err.Error()))
		respondProblem(c, http.StatusBadRequest, "Invalid request format", err.Error())
		return
	}

	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		logger.Warn("Rejected settlement amount", slog.String("amount", req.Amount), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	h.postMu.Lock()
	defer h.postMu.Unlock()

	// Pre-posting rule: a settlement may only repay existing debt, in the
	// right direction, up to the outstanding amount. Evaluated strictly
	// before posting; the core itself has no notion of a debt limit.
	if req.From != req.To {
		if err := h.guardSettlement(c, req.From, amount); err != nil {
			logger.Warn("Rejected settlement", slog.String("from", string(req.From)), slog.String("error", err.Error()))
			respondError(c, err)
			return
		}
	}

	txn, err := h.ledgerService.PostSettlement(c.Request.Context(), req.From, req.To, amount)
	if err != nil {
		logger.Warn("Failed to post settlement", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// guardSettlement enforces the non-negative-debt property: nothing owed,
// wrong direction, and over-settlement all reject before any entries exist.
// Self-settlements skip the guard so the core reports them as such.
func (h *ledgerHandler) guardSettlement(c *gin.Context, from domain.Party, amount decimal.Decimal) error {
	netDue, err := h.reportingService.NetDue(c.Request.Context())
	if err != nil {
		return err
	}
	if netDue.Owes == nil {
		return fmt.Errorf("%w: nothing is currently owed", apperrors.ErrOverSettlement)
	}
	if *netDue.Owes != from {
		return fmt.Errorf("%w: %q owes nothing, the debt runs the other way", apperrors.ErrOverSettlement, from)
	}
	if amount.GreaterThan(netDue.Amount) {
		return fmt.Errorf("%w: %s exceeds the outstanding %s", apperrors.ErrOverSettlement, money.FormatCurrency(amount), money.FormatCurrency(netDue.Amount))
	}
	return nil
}

// listTransactions godoc
// @Summary List transaction summaries
// @Description Returns every recorded transaction, oldest first.
// @Tags ledger
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Router /transactions [get]
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	txns, err := h.ledgerService.ListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// listEntries godoc
// @Summary List raw ledger entries
// @Description Returns the full entry history in insertion order.
// @Tags ledger
// @Produce json
// @Success 200 {array} dto.EntryResponse
// @Router /entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	entries, err := h.ledgerService.ListEntries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}
