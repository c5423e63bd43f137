package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tokoprima/admin-api/internal/service"
	"github.com/tokoprima/admin-api/internal/utils"
)

// PaymentHandler handles the payment verification relay endpoint.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// VerifyPayment handles POST /v1/payments/verify
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req struct {
		Reference string `json:"reference" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "reference is required")
		return
	}

	data, err := h.paymentService.VerifyPayment(c.Request.Context(), req.Reference)
	if err != nil {
		if errors.Is(err, utils.ErrVerificationFailed) {
			utils.Error(c, 400, "VERIFICATION_FAILED", "Payment could not be verified")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Payment verification failed")
		return
	}

	utils.Success(c, 200, "Payment verified", data)
}
