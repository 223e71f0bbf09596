package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/SscSPs/erp_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// renewalHandler handles vehicle and document renewals.
type renewalHandler struct {
	renewalService portssvc.RenewalSvcFacade
	dispatcher     *dispatchHandler
}

// RegisterRenewalRoutes registers the renewal routes. dispatchMW wraps the dispatch route only.
func RegisterRenewalRoutes(rg *gin.RouterGroup, renewalSvc portssvc.RenewalSvcFacade, dispatchSvc portssvc.DispatchSvc, dispatchMW ...gin.HandlerFunc) {
	h := &renewalHandler{renewalService: renewalSvc, dispatcher: newDispatchHandler(dispatchSvc)}

	renewals := rg.Group("/renewals")
	{
		renewals.POST("", h.createRenewal)
		renewals.GET("", h.listRenewals)
		renewals.GET("/:id", h.getRenewal)
		renewals.PUT("/:id", h.updateRenewal)
		renewals.DELETE("/:id", h.deleteRenewal)
		renewals.POST("/:id/dispatch", chain(dispatchMW, h.dispatchRenewal)...)
	}
}

// createRenewal godoc
// @Summary Add a renewal
// @Tags renewals
// @Accept  json
// @Produce  json
// @Param   renewal body dto.CreateRenewalRequest true "Renewal details"
// @Success 201 {object} dto.RenewalResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create renewal"
// @Router /renewals [post]
func (h *renewalHandler) createRenewal(c *gin.Context) {
	var req dto.CreateRenewalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "CreateRenewal body")
		return
	}

	renewal, err := h.renewalService.CreateRenewal(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create renewal")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Renewal created",
		slog.String("renewal_id", renewal.ID),
		slog.String("due_date", renewal.DueDate))
	c.JSON(http.StatusCreated, dto.ToRenewalResponse(renewal))
}

// listRenewals godoc
// @Summary List a month's renewals
// @Tags renewals
// @Produce  json
// @Param   month query int true "Month (1-12)"
// @Param   year query int true "Year"
// @Success 200 {array} dto.RenewalResponse
// @Failure 400 {object} map[string]string "Invalid month or year"
// @Failure 500 {object} map[string]string "Failed to list renewals"
// @Router /renewals [get]
func (h *renewalHandler) listRenewals(c *gin.Context) {
	var params dto.ListRenewalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "ListRenewals query")
		return
	}

	list, err := h.renewalService.ListRenewalsByMonth(c.Request.Context(), params.Year, params.Month)
	if err != nil {
		respondError(c, err, "Failed to list renewals")
		return
	}
	c.JSON(http.StatusOK, dto.ToRenewalResponses(list))
}

// getRenewal godoc
// @Summary Get a renewal
// @Tags renewals
// @Produce  json
// @Param   id path string true "Renewal ID"
// @Success 200 {object} dto.RenewalResponse
// @Failure 404 {object} map[string]string "Renewal not found"
// @Failure 500 {object} map[string]string "Failed to retrieve renewal"
// @Router /renewals/{id} [get]
func (h *renewalHandler) getRenewal(c *gin.Context) {
	renewal, err := h.renewalService.GetRenewal(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve renewal")
		return
	}
	c.JSON(http.StatusOK, dto.ToRenewalResponse(renewal))
}

// updateRenewal godoc
// @Summary Update a renewal
// @Tags renewals
// @Accept  json
// @Produce  json
// @Param   id path string true "Renewal ID"
// @Param   renewal body dto.UpdateRenewalRequest true "Fields to change"
// @Success 200 {object} dto.RenewalResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Renewal not found"
// @Failure 409 {object} map[string]string "Renewal was modified concurrently"
// @Failure 500 {object} map[string]string "Failed to update renewal"
// @Router /renewals/{id} [put]
func (h *renewalHandler) updateRenewal(c *gin.Context) {
	var req dto.UpdateRenewalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "UpdateRenewal body")
		return
	}

	renewal, err := h.renewalService.UpdateRenewal(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update renewal")
		return
	}
	c.JSON(http.StatusOK, dto.ToRenewalResponse(renewal))
}

// deleteRenewal godoc
// @Summary Delete a renewal
// @Tags renewals
// @Param   id path string true "Renewal ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Renewal not found"
// @Failure 500 {object} map[string]string "Failed to delete renewal"
// @Router /renewals/{id} [delete]
func (h *renewalHandler) deleteRenewal(c *gin.Context) {
	if err := h.renewalService.DeleteRenewal(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete renewal")
		return
	}
	c.Status(http.StatusNoContent)
}

// dispatchRenewal godoc
// @Summary Send the renewal reminder
// @Tags renewals
// @Produce  json
// @Param   id path string true "Renewal ID"
// @Success 200 {object} dto.DispatchResult
// @Failure 400 {object} dto.DispatchResult "Already sent or missing phone"
// @Failure 404 {object} map[string]string "Renewal not found"
// @Failure 409 {object} dto.DispatchResult "Changed while sending"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 502 {object} dto.DispatchResult "Gateway did not accept the message"
// @Router /renewals/{id}/dispatch [post]
func (h *renewalHandler) dispatchRenewal(c *gin.Context) {
	h.dispatcher.serve(c, domain.KindRenewal)
}
