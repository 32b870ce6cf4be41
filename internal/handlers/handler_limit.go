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

// limitHandler handles HTTP requests related to spending limits.
type limitHandler struct {
	limitService portssvc.LimitSvcFacade
}

// newLimitHandler creates a new limitHandler.
func newLimitHandler(ls portssvc.LimitSvcFacade) *limitHandler {
	return &limitHandler{limitService: ls}
}

// registerLimitRoutes registers routes related to limits.
func registerLimitRoutes(rg *gin.RouterGroup, limitService portssvc.LimitSvcFacade) {
	h := newLimitHandler(limitService)

	limits := rg.Group("/limits")
	{
		limits.POST("", h.setLimit)
		limits.GET("", h.listLimits)
	}
}

// setLimit creates a new limit version for a category, effective immediately.
func (h *limitHandler) setLimit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for setLimit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	limit, err := h.limitService.SetLimit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error setting limit", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to set limit", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set limit"})
		}
		return
	}

	logger.Info("Limit set",
		slog.String("limit_id", limit.LimitID),
		slog.String("category", string(limit.Category)),
		slog.Any("limit_sum", limit.LimitSum))
	c.JSON(http.StatusCreated, dto.ToLimitResponse(limit))
}

// listLimits returns all configured limits, newest first.
func (h *limitHandler) listLimits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limits, err := h.limitService.ListLimits(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list limits", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list limits"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLimitResponse(limits))
}
