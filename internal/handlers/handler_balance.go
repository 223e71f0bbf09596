package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/gin-gonic/gin"
)

type balanceHandler struct {
	ledgerService portssvc.LedgerReaderSvc
}

// RegisterBalanceRoutes registers the aggregated balance view.
func RegisterBalanceRoutes(rg *gin.RouterGroup, ledgerSvc portssvc.LedgerReaderSvc) {
	h := &balanceHandler{ledgerService: ledgerSvc}
	rg.GET("/balances", h.listBalances)
}

// listBalances godoc
// @Summary List per-entity balances
// @Description Aggregates the ledger lines of a range into one balance per counterparty. Lines without an entity ID are left out.
// @Tags balances
// @Produce  json
// @Param   from query string false "Range start (YYYY-MM-DD)"
// @Param   to query string false "Range end (YYYY-MM-DD)"
// @Param   entityType query string false "Filter by entity type" Enums(EMPLOYEE, MEDIATOR, SUPPLIER)
// @Success 200 {object} dto.ListBalancesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list balances"
// @Router /balances [get]
func (h *balanceHandler) listBalances(c *gin.Context) {
	var params dto.ListBalancesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "ListBalances query")
		return
	}

	balances, err := h.ledgerService.ListBalances(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list balances")
		return
	}

	c.JSON(http.StatusOK, dto.ListBalancesResponse{Balances: balances})
}
