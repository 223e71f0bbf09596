package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/SscSPs/erp_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// counterpartyHandler handles the employee, mediator and supplier directory.
type counterpartyHandler struct {
	counterpartyService portssvc.CounterpartySvcFacade
	importService       portssvc.ImportSvc
}

// RegisterCounterpartyRoutes registers the directory routes, including the employee CSV import.
func RegisterCounterpartyRoutes(rg *gin.RouterGroup, counterpartySvc portssvc.CounterpartySvcFacade, importSvc portssvc.ImportSvc) {
	h := &counterpartyHandler{counterpartyService: counterpartySvc, importService: importSvc}

	counterparties := rg.Group("/counterparties")
	{
		counterparties.POST("", h.createCounterparty)
		counterparties.GET("", h.listCounterparties)
		counterparties.POST("/import", h.importEmployees)
		counterparties.GET("/:id", h.getCounterparty)
		counterparties.PUT("/:id", h.updateCounterparty)
		counterparties.DELETE("/:id", h.deleteCounterparty)
	}
}

// createCounterparty godoc
// @Summary Add a directory entry
// @Tags counterparties
// @Accept  json
// @Produce  json
// @Param   counterparty body dto.CreateCounterpartyRequest true "Directory entry"
// @Success 201 {object} dto.CounterpartyResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Entity ID already in use"
// @Failure 500 {object} map[string]string "Failed to create counterparty"
// @Router /counterparties [post]
func (h *counterpartyHandler) createCounterparty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCounterpartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "CreateCounterparty body")
		return
	}

	cp, err := h.counterpartyService.CreateCounterparty(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create counterparty")
		return
	}

	logger.Info("Counterparty created", slog.String("counterparty_id", cp.ID), slog.String("entity_type", string(cp.EntityType)))
	c.JSON(http.StatusCreated, dto.ToCounterpartyResponse(cp))
}

// listCounterparties godoc
// @Summary List directory entries
// @Tags counterparties
// @Produce  json
// @Param   entityType query string false "Entity type" Enums(EMPLOYEE, MEDIATOR, SUPPLIER)
// @Param   search query string false "Case-insensitive match on name, phone or entity ID"
// @Success 200 {array} dto.CounterpartyResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list counterparties"
// @Router /counterparties [get]
func (h *counterpartyHandler) listCounterparties(c *gin.Context) {
	var params dto.ListCounterpartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "ListCounterparties query")
		return
	}

	list, err := h.counterpartyService.ListCounterparties(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list counterparties")
		return
	}
	c.JSON(http.StatusOK, dto.ToCounterpartyResponses(list))
}

// getCounterparty godoc
// @Summary Get a directory entry
// @Tags counterparties
// @Produce  json
// @Param   id path string true "Counterparty ID"
// @Success 200 {object} dto.CounterpartyResponse
// @Failure 404 {object} map[string]string "Counterparty not found"
// @Failure 500 {object} map[string]string "Failed to retrieve counterparty"
// @Router /counterparties/{id} [get]
func (h *counterpartyHandler) getCounterparty(c *gin.Context) {
	cp, err := h.counterpartyService.GetCounterparty(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve counterparty")
		return
	}
	c.JSON(http.StatusOK, dto.ToCounterpartyResponse(cp))
}

// updateCounterparty godoc
// @Summary Update a directory entry
// @Tags counterparties
// @Accept  json
// @Produce  json
// @Param   id path string true "Counterparty ID"
// @Param   counterparty body dto.UpdateCounterpartyRequest true "Fields to change"
// @Success 200 {object} dto.CounterpartyResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Counterparty not found"
// @Failure 409 {object} map[string]string "Counterparty was modified concurrently"
// @Failure 500 {object} map[string]string "Failed to update counterparty"
// @Router /counterparties/{id} [put]
func (h *counterpartyHandler) updateCounterparty(c *gin.Context) {
	var req dto.UpdateCounterpartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "UpdateCounterparty body")
		return
	}

	cp, err := h.counterpartyService.UpdateCounterparty(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update counterparty")
		return
	}
	c.JSON(http.StatusOK, dto.ToCounterpartyResponse(cp))
}

// deleteCounterparty godoc
// @Summary Delete a directory entry
// @Description Removes the entry and every other entry sharing its entity ID
// @Tags counterparties
// @Produce  json
// @Param   id path string true "Counterparty ID"
// @Success 200 {object} map[string]int "Number of entries removed"
// @Failure 404 {object} map[string]string "Counterparty not found"
// @Failure 500 {object} map[string]string "Failed to delete counterparty"
// @Router /counterparties/{id} [delete]
func (h *counterpartyHandler) deleteCounterparty(c *gin.Context) {
	id := c.Param("id")
	removed, err := h.counterpartyService.DeleteCounterparty(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to delete counterparty")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Counterparty deleted", slog.String("counterparty_id", id), slog.Int("removed", removed))
	c.JSON(http.StatusOK, gin.H{"deleted": removed})
}

// importEmployees godoc
// @Summary Import employees from CSV
// @Description Header-less rows of id,name,phone,baseSalary. Existing employee IDs are skipped.
// @Tags counterparties
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "CSV file"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} map[string]string "Missing or unreadable file"
// @Failure 500 {object} dto.ImportResult "Import stopped by a store failure"
// @Router /counterparties/import [post]
func (h *counterpartyHandler) importEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	file, err := openUpload(c)
	if err != nil {
		respondBindError(c, err, "employee CSV")
		return
	}
	defer file.Close()

	result, err := h.importService.ImportEmployees(c.Request.Context(), file)
	if err != nil {
		if result == nil {
			respondError(c, err, "Failed to import employees")
			return
		}
		logger.Error("Employee import stopped", slog.Int("inserted", result.Inserted), slog.String("error", err.Error()))
		c.JSON(statusForError(err), result)
		return
	}

	logger.Info("Employee import finished", slog.Int("inserted", result.Inserted), slog.Int("skipped", len(result.Skipped)))
	c.JSON(http.StatusOK, result)
}
