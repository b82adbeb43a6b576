package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alamin4D/battle-server-website/internal/services"
	"github.com/Alamin4D/battle-server-website/internal/utils"
	"github.com/Alamin4D/battle-server-website/internal/validator"
)

type PaymentHandler struct {
	BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(paymentService services.PaymentService, logger utils.Logger) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    NewBaseHandler(logger),
		paymentService: paymentService,
	}
}

// CreatePaymentIntent creates a USD intent for the posted price
// @Summary Create payment intent
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} models.PaymentIntentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req validator.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		paymentIntentsTotal.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid price",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.paymentService.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		paymentIntentsTotal.WithLabelValues("failed").Inc()
		h.handleServiceError(c, err)
		return
	}

	paymentIntentsTotal.WithLabelValues("created").Inc()
	c.JSON(http.StatusOK, resp)
}
