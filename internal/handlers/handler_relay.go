package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/SscSPs/erp_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SMSDeliverer performs one raw gateway call and returns the provider's reply.
type SMSDeliverer interface {
	Deliver(ctx context.Context, msg domain.Message) (string, error)
}

type relayHandler struct {
	gateway SMSDeliverer
}

// RegisterRelayRoutes registers GET /relay/sms. mw runs before the handler (CORS, rate limit).
func RegisterRelayRoutes(r gin.IRouter, gateway SMSDeliverer, mw ...gin.HandlerFunc) {
	h := &relayHandler{gateway: gateway}
	relay := r.Group("/relay", mw...)
	relay.GET("/sms", h.sendSMS)
}

// sendSMS godoc
// @Summary Relay an alert to the SMS gateway
// @Description Calls the messaging provider with the account's template and answers with a structured body
// @Tags relay
// @Produce  json
// @Param   phone query string true "Receiver phone"
// @Param   name query string false "Receiver name"
// @Param   amount query string false "Amount"
// @Param   date query string false "Date shown in the message"
// @Success 200 {object} dto.RelayResponse
// @Failure 400 {object} dto.RelayResponse
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} dto.RelayResponse
// @Router /relay/sms [get]
func (h *relayHandler) sendSMS(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	phone := strings.TrimSpace(c.Query("phone"))
	if phone == "" {
		c.JSON(http.StatusBadRequest, dto.RelayResponse{Success: false, Error: "phone is required"})
		return
	}

	amount := decimal.Zero
	if raw := strings.TrimSpace(c.Query("amount")); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.RelayResponse{Success: false, Error: "amount must be a number"})
			return
		}
		amount = parsed
	}

	msg := domain.Message{Phone: phone, Name: c.Query("name"), Amount: amount, Date: c.Query("date")}
	logger.Info("Sending SMS request", slog.String("phone", msg.Phone), slog.String("name", msg.Name), slog.String("date", msg.Date))

	reply, err := h.gateway.Deliver(c.Request.Context(), msg)
	if err != nil {
		logger.Error("Error sending SMS", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.RelayResponse{Success: false, Error: "SMS API Error: " + err.Error()})
		return
	}

	logger.Info("SMS sent successfully", slog.String("response", reply))
	c.JSON(http.StatusOK, dto.RelayResponse{Success: true, Message: "SMS sent successfully", Data: reply})
}
