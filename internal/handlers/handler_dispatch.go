package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dispatchHandler serves POST /:id/dispatch for every notifiable collection.
type dispatchHandler struct {
	dispatchService portssvc.DispatchSvc
}

func newDispatchHandler(ds portssvc.DispatchSvc) *dispatchHandler {
	return &dispatchHandler{dispatchService: ds}
}

// serve dispatches the record named by the :id path parameter. A failed attempt still answers
// with the result body so the caller sees the refreshed balances next to the error.
func (h *dispatchHandler) serve(c *gin.Context, kind domain.NotificationKind) {
	id := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("kind", string(kind)),
		slog.String("record_id", id),
	)
	logger.Info("Received request to dispatch notification")

	result, err := h.dispatchService.Dispatch(c.Request.Context(), kind, id)
	if err != nil {
		if result == nil {
			respondError(c, err, "Failed to dispatch notification")
			return
		}
		code := statusForError(err)
		logger.Warn("Notification not dispatched", slog.String("error", err.Error()), slog.Int("status", code))
		if result.Error == "" {
			result.Error = err.Error()
		}
		c.JSON(code, result)
		return
	}

	logger.Info("Notification dispatched", slog.String("status", result.Status))
	c.JSON(http.StatusOK, result)
}
