package handlers

import (
	"net/http"
	"time"

	"github.com/bankcore/txn_limit_app/internal/core/ports"
	portssvc "github.com/bankcore/txn_limit_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces. The clock and reference timezone feed the exchange-rate handler
// so bare date parameters resolve to the market's calendar day.
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer, clk ports.Clock, loc *time.Location) {
	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, services, clk, loc)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer, clk ports.Clock, loc *time.Location) {
	v1 := r.Group("/api/v1")

	registerTransactionRoutes(v1, services.Transaction)
	registerLimitRoutes(v1, services.Limit)
	registerExchangeRateRoutes(v1, services.RateResolver, clk, loc)
}
