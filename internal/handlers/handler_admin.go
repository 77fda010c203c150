package handlers

import (
	"log/slog"
	"net/http"

	"github.com/duosplit/duo_expense_app/internal/cache"
	portssvc "github.com/duosplit/duo_expense_app/internal/core/ports/services"
	"github.com/duosplit/duo_expense_app/internal/dto"
	"github.com/duosplit/duo_expense_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler handles wallet seeding and the full reset.
type adminHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	idemCache     *cache.LRUCache[middleware.CachedResponse]
}

func newAdminHandler(ls portssvc.LedgerSvcFacade, idemCache *cache.LRUCache[middleware.CachedResponse]) *adminHandler {
	return &adminHandler{ledgerService: ls, idemCache: idemCache}
}

// registerAdminRoutes registers the seeding and reset routes.
func registerAdminRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade, idemCache *cache.LRUCache[middleware.CachedResponse]) {
	h := newAdminHandler(ls, idemCache)

	rg.POST("/wallets/seed", h.seedWallets)
	rg.POST("/reset", h.reset)
}

// seedWallets godoc
// @Summary Seed both wallets
// @Description Creates one CASH entry per party with starting cash and no other side effects.
// @Tags admin
// @Accept json
// @Produce json
// @Param seed body dto.SeedWalletsRequest true "Starting amounts"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ProblemDetails "Invalid amount"
// @Router /wallets/seed [post]
func (h *adminHandler) seedWallets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SeedWalletsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for seedWallets", slog.String("error", err.Error()))
		respondProblem(c, http.StatusBadRequest, "Invalid request format", err.Error())
		return
	}

	amountA, err := dto.ParseAmount(req.AmountA)
	if err != nil {
		respondError(c, err)
		return
	}
	amountB, err := dto.ParseAmount(req.AmountB)
	if err != nil {
		respondError(c, err)
		return
	}

	txn, err := h.ledgerService.SeedWallets(c.Request.Context(), amountA, amountB)
	if err != nil {
		logger.Warn("Failed to seed wallets", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// reset godoc
// @Summary Reset the ledger
// @Description Discards the entire entry history, transaction summaries and the idempotency cache together.
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Router /reset [post]
func (h *adminHandler) reset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.ledgerService.Clear(c.Request.Context()); err != nil {
		logger.Error("Failed to reset ledger", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	h.idemCache.Purge()

	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
