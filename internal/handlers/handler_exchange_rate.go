package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bankcore/txn_limit_app/internal/apperrors"
	"github.com/bankcore/txn_limit_app/internal/core/domain"
	"github.com/bankcore/txn_limit_app/internal/core/ports"
	portssvc "github.com/bankcore/txn_limit_app/internal/core/ports/services"
	"github.com/bankcore/txn_limit_app/internal/dto"
	"github.com/bankcore/txn_limit_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	rateResolver portssvc.RateResolverSvcFacade
	clock        ports.Clock
	loc          *time.Location
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(rr portssvc.RateResolverSvcFacade, clk ports.Clock, loc *time.Location) *exchangeRateHandler {
	return &exchangeRateHandler{rateResolver: rr, clock: clk, loc: loc}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, rateResolver portssvc.RateResolverSvcFacade, clk ports.Clock, loc *time.Location) {
	h := newExchangeRateHandler(rateResolver, clk, loc)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("/:currency", h.getRate)
	}
}

// getRate resolves the USD-relative close rate for a currency, fetching and
// caching it if absent. The optional `date` query (YYYY-MM-DD) names a calendar
// day in the market's reference timezone and defaults to today.
func (h *exchangeRateHandler) getRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currency := c.Param("currency")

	date := h.clock.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	logger = logger.With(slog.String("currency", currency), slog.Time("date", date))
	logger.Info("Received request to resolve exchange rate")

	rate, err := h.rateResolver.GetRate(c.Request.Context(), currency, date)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error resolving rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrRateUnavailable):
			logger.Warn("Rate unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrRateProvider):
			logger.Error("Rate provider failure", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to resolve exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve exchange rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ExchangeRateResponse{
		Currency:  currency,
		RateDate:  domain.DateOf(date, h.loc),
		CloseRate: rate,
	})
}
