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

// salaryHandler handles payroll requests.
type salaryHandler struct {
	salaryService portssvc.SalarySvcFacade
	importService portssvc.ImportSvc
	dispatcher    *dispatchHandler
}

// RegisterSalaryRoutes registers the payroll routes. dispatchMW wraps the dispatch route only.
func RegisterSalaryRoutes(rg *gin.RouterGroup, salarySvc portssvc.SalarySvcFacade, importSvc portssvc.ImportSvc, dispatchSvc portssvc.DispatchSvc, dispatchMW ...gin.HandlerFunc) {
	h := &salaryHandler{
		salaryService: salarySvc,
		importService: importSvc,
		dispatcher:    newDispatchHandler(dispatchSvc),
	}

	salaries := rg.Group("/salaries")
	{
		salaries.POST("", h.createSalary)
		salaries.GET("", h.listSalaries)
		salaries.GET("/summary", h.periodSummary)
		salaries.POST("/recalculate", h.recalculatePeriod)
		salaries.POST("/import", h.importSalaries)
		salaries.GET("/:id", h.getSalary)
		salaries.PUT("/:id", h.updateSalary)
		salaries.DELETE("/:id", h.deleteSalary)
		salaries.POST("/:id/dispatch", chain(dispatchMW, h.dispatchSalary)...)
	}
}

// createSalary godoc
// @Summary Add a salary row
// @Description Adds one employee's row for a period. The paid salary is derived from the inputs.
// @Tags salaries
// @Accept  json
// @Produce  json
// @Param   salary body dto.CreateSalaryRequest true "Salary inputs"
// @Success 201 {object} dto.SalaryResponse
// @Failure 400 {object} map[string]string "Invalid input or missing period"
// @Failure 409 {object} map[string]string "Employee already has a row for the period"
// @Failure 500 {object} map[string]string "Failed to create salary"
// @Router /salaries [post]
func (h *salaryHandler) createSalary(c *gin.Context) {
	var req dto.CreateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "CreateSalary body")
		return
	}

	salary, err := h.salaryService.CreateSalary(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create salary")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Salary created",
		slog.String("salary_id", salary.ID),
		slog.String("period", salary.PeriodKey))
	c.JSON(http.StatusCreated, dto.ToSalaryResponse(salary))
}

// listSalaries godoc
// @Summary List a period's salaries
// @Tags salaries
// @Produce  json
// @Param   period query string true "Period (YYYY-MM)"
// @Param   search query string false "Case-insensitive match on name or phone"
// @Success 200 {object} dto.ListSalariesResponse
// @Failure 400 {object} map[string]string "Missing or invalid period"
// @Failure 500 {object} map[string]string "Failed to list salaries"
// @Router /salaries [get]
func (h *salaryHandler) listSalaries(c *gin.Context) {
	var params dto.ListSalariesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "ListSalaries query")
		return
	}

	rows, err := h.salaryService.ListSalaries(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list salaries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSalariesResponse(params.Period, rows))
}

// periodSummary godoc
// @Summary Summarise a period's payroll
// @Description Per-employee working days and advances, merging salary rows with the advances recorded in the ledger during the period
// @Tags salaries
// @Produce  json
// @Param   period query string true "Period (YYYY-MM)"
// @Success 200 {object} dto.ListBalancesResponse
// @Failure 400 {object} map[string]string "Missing or invalid period"
// @Failure 500 {object} map[string]string "Failed to summarise period"
// @Router /salaries/summary [get]
func (h *salaryHandler) periodSummary(c *gin.Context) {
	summary, err := h.salaryService.PeriodSummary(c.Request.Context(), c.Query("period"))
	if err != nil {
		respondError(c, err, "Failed to summarise period")
		return
	}
	c.JSON(http.StatusOK, dto.ListBalancesResponse{Balances: summary})
}

// recalculatePeriod godoc
// @Summary Recompute a period's paid salaries
// @Tags salaries
// @Accept  json
// @Produce  json
// @Param   request body dto.RecalculateRequest true "Period to recompute"
// @Success 200 {object} dto.RecalculateResponse
// @Failure 400 {object} map[string]string "Missing or invalid period"
// @Failure 409 {object} map[string]string "A row changed while recomputing"
// @Failure 500 {object} map[string]string "Failed to recalculate salaries"
// @Router /salaries/recalculate [post]
func (h *salaryHandler) recalculatePeriod(c *gin.Context) {
	var req dto.RecalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "Recalculate body")
		return
	}

	updated, err := h.salaryService.RecalculatePeriod(c.Request.Context(), req.Period)
	if err != nil {
		respondError(c, err, "Failed to recalculate salaries")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Salaries recalculated", slog.String("period", req.Period), slog.Int("updated", updated))
	c.JSON(http.StatusOK, dto.RecalculateResponse{Period: req.Period, Updated: updated})
}

// importSalaries godoc
// @Summary Import a period's salaries from CSV
// @Description Header-less rows of id,name,phone,baseSalary,workingDays[,previousAdvance,currentAdvance]
// @Tags salaries
// @Accept  multipart/form-data
// @Produce  json
// @Param   period query string true "Period (YYYY-MM)"
// @Param   file formData file true "CSV file"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} map[string]string "Missing period or file"
// @Failure 500 {object} dto.ImportResult "Import stopped by a store failure"
// @Router /salaries/import [post]
func (h *salaryHandler) importSalaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	period := c.Query("period")
	if period == "" {
		period = c.PostForm("period")
	}

	file, err := openUpload(c)
	if err != nil {
		respondBindError(c, err, "salary CSV")
		return
	}
	defer file.Close()

	result, err := h.importService.ImportSalaries(c.Request.Context(), period, file)
	if err != nil {
		if result == nil {
			respondError(c, err, "Failed to import salaries")
			return
		}
		logger.Error("Salary import stopped", slog.String("period", period), slog.Int("inserted", result.Inserted), slog.String("error", err.Error()))
		c.JSON(statusForError(err), result)
		return
	}

	logger.Info("Salary import finished", slog.String("period", period), slog.Int("inserted", result.Inserted), slog.Int("skipped", len(result.Skipped)))
	c.JSON(http.StatusOK, result)
}

// getSalary godoc
// @Summary Get a salary row
// @Tags salaries
// @Produce  json
// @Param   id path string true "Salary ID"
// @Success 200 {object} dto.SalaryResponse
// @Failure 404 {object} map[string]string "Salary not found"
// @Failure 500 {object} map[string]string "Failed to retrieve salary"
// @Router /salaries/{id} [get]
func (h *salaryHandler) getSalary(c *gin.Context) {
	salary, err := h.salaryService.GetSalary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve salary")
		return
	}
	c.JSON(http.StatusOK, dto.ToSalaryResponse(salary))
}

// updateSalary godoc
// @Summary Update a salary row
// @Description Changes the given inputs and recomputes the paid salary. The row returns to PENDING.
// @Tags salaries
// @Accept  json
// @Produce  json
// @Param   id path string true "Salary ID"
// @Param   salary body dto.UpdateSalaryRequest true "Fields to change"
// @Success 200 {object} dto.SalaryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Salary not found"
// @Failure 409 {object} map[string]string "Salary was modified concurrently"
// @Failure 500 {object} map[string]string "Failed to update salary"
// @Router /salaries/{id} [put]
func (h *salaryHandler) updateSalary(c *gin.Context) {
	var req dto.UpdateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "UpdateSalary body")
		return
	}

	salary, err := h.salaryService.UpdateSalary(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update salary")
		return
	}
	c.JSON(http.StatusOK, dto.ToSalaryResponse(salary))
}

// deleteSalary godoc
// @Summary Delete a salary row
// @Tags salaries
// @Param   id path string true "Salary ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Salary not found"
// @Failure 500 {object} map[string]string "Failed to delete salary"
// @Router /salaries/{id} [delete]
func (h *salaryHandler) deleteSalary(c *gin.Context) {
	if err := h.salaryService.DeleteSalary(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete salary")
		return
	}
	c.Status(http.StatusNoContent)
}

// dispatchSalary godoc
// @Summary Send the salary alert
// @Description Sends the employee's paid-salary notification and marks the row SENT
// @Tags salaries
// @Produce  json
// @Param   id path string true "Salary ID"
// @Success 200 {object} dto.DispatchResult
// @Failure 400 {object} dto.DispatchResult "Already sent or missing phone"
// @Failure 404 {object} map[string]string "Salary not found"
// @Failure 409 {object} dto.DispatchResult "Changed while sending"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 502 {object} dto.DispatchResult "Gateway did not accept the message"
// @Router /salaries/{id}/dispatch [post]
func (h *salaryHandler) dispatchSalary(c *gin.Context) {
	h.dispatcher.serve(c, domain.KindSalary)
}
