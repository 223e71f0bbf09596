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

// transactionHandler handles HTTP requests related to ledger lines.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	dispatcher    *dispatchHandler
}

func newTransactionHandler(ls portssvc.LedgerSvcFacade, ds portssvc.DispatchSvc) *transactionHandler {
	return &transactionHandler{ledgerService: ls, dispatcher: newDispatchHandler(ds)}
}

// RegisterTransactionRoutes registers the ledger routes. dispatchMW wraps the dispatch route only.
func RegisterTransactionRoutes(rg *gin.RouterGroup, ledgerSvc portssvc.LedgerSvcFacade, dispatchSvc portssvc.DispatchSvc, dispatchMW ...gin.HandlerFunc) {
	h := newTransactionHandler(ledgerSvc, dispatchSvc)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
		transactions.POST("/:id/dispatch", chain(dispatchMW, h.dispatchTransaction)...)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records a payment, receipt or miscellaneous line. Advances to employees and mediators need a known directory entry.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Receiver not found in the directory"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "CreateTransaction body")
		return
	}

	logger.Info("Received request to create transaction",
		slog.String("entity_type", string(req.EntityType)),
		slog.String("payment_type", string(req.PaymentType)),
		slog.String("occurred_on", req.OccurredOn))

	record, err := h.ledgerService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", record.ID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(record))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists one day (date, default today) or an inclusive range (from, to) of the ledger
// @Tags transactions
// @Produce  json
// @Param   date query string false "Day (YYYY-MM-DD)"
// @Param   from query string false "Range start (YYYY-MM-DD)"
// @Param   to query string false "Range end (YYYY-MM-DD)"
// @Param   entityId query string false "Filter by entity ID"
// @Param   entityType query string false "Filter by entity type" Enums(EMPLOYEE, MEDIATOR, SUPPLIER, OTHER)
// @Param   status query string false "Filter by notification status" Enums(PENDING, SENT)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "ListTransactions query")
		return
	}

	records, err := h.ledgerService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(records))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	record, err := h.ledgerService.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(record))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Changes the given fields. A supplied version must match the stored one. The line returns to PENDING.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction was modified concurrently"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "UpdateTransaction body")
		return
	}

	record, err := h.ledgerService.UpdateTransaction(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}

	logger.Info("Transaction updated successfully", slog.String("transaction_id", id), slog.Int64("version", record.Version))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(record))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param   id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	id := c.Param("id")
	if err := h.ledgerService.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transaction deleted", slog.String("transaction_id", id))
	c.Status(http.StatusNoContent)
}

// dispatchTransaction godoc
// @Summary Send the alert for a transaction
// @Description Sends the receiver's notification and marks the line SENT. On gateway failure the line stays PENDING.
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.DispatchResult
// @Failure 400 {object} dto.DispatchResult "Already sent or missing phone"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} dto.DispatchResult "Changed while sending"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 502 {object} dto.DispatchResult "Gateway did not accept the message"
// @Router /transactions/{id}/dispatch [post]
func (h *transactionHandler) dispatchTransaction(c *gin.Context) {
	h.dispatcher.serve(c, domain.KindTransaction)
}
