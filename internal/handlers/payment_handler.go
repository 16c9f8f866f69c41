package handlers

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"projectmart_backend/internal/payments"
	"projectmart_backend/internal/validator"
	"projectmart_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// PaymentHandler creates payment orders with the configured gateway. Payment
// capture and reconciliation happen entirely on the provider side.
type PaymentHandler struct {
	*BaseHandler
	gateway payments.Gateway
}

func NewPaymentHandler(v *validator.Validator, gateway payments.Gateway) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler: NewBaseHandler(v),
		gateway:     gateway,
	}
}

func (h *PaymentHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/freelance/payment/order", h.CreateOrder)
}

type createOrderRequest struct {
	// Amount is in major currency units; the gateway wants minor units.
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	Receipt string  `json:"receipt"`
}

func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	receipt := req.Receipt
	if receipt == "" {
		receipt = fmt.Sprintf("rcpt_%d", time.Now().UnixMilli())
	}

	amountMinor := int64(math.Round(req.Amount * 100))
	order, err := h.gateway.CreateOrder(c.Request.Context(), amountMinor, receipt)
	if err != nil {
		h.HandleServiceError(c, apperrors.GatewayError(err))
		return
	}

	c.JSON(http.StatusOK, order)
}
