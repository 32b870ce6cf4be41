package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bankcore/txn_limit_app/internal/apperrors"
	portssvc "github.com/bankcore/txn_limit_app/internal/core/ports/services"
	"github.com/bankcore/txn_limit_app/internal/dto"
	"github.com/bankcore/txn_limit_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("/exceeded", h.getExceededTransactions)
	}
}

// createTransaction processes and persists a new transaction, returning it
// with its limit-exceedance flag and the applied limit snapshot.
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to process transaction",
		slog.String("account_from", req.AccountFrom),
		slog.String("currency", req.CurrencyShortname),
		slog.Any("sum", req.Sum),
		slog.String("category", req.ExpenseCategory),
	)

	resp, err := h.transactionService.ProcessTransaction(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error processing transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrRateUnavailable):
			logger.Warn("Rate unavailable for transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrRateProvider):
			logger.Error("Rate provider failure processing transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to process transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transaction"})
		}
		return
	}

	logger.Info("Transaction processed",
		slog.String("transaction_id", resp.TransactionID),
		slog.Bool("limit_exceeded", resp.LimitExceeded))
	c.JSON(http.StatusCreated, resp)
}

// getExceededTransactions lists transactions that exceeded their limit,
// paired with the limit applicable at their datetime.
func (h *transactionHandler) getExceededTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	responses, err := h.transactionService.GetExceededTransactions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list exceeded transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exceeded transactions"})
		return
	}

	c.JSON(http.StatusOK, responses)
}
