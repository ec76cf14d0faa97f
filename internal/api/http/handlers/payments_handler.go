package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/loanlink-service/internal/api/dto"
	"github.com/spec-kit/loanlink-service/internal/service"
	apperrors "github.com/spec-kit/loanlink-service/pkg/util"
)

// PaymentsHandler exposes the checkout-session endpoint.
type PaymentsHandler struct {
	payments *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(paymentService *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: paymentService}
}

// CreateCheckoutSession handles POST /create-checkout-session.
func (h *PaymentsHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	var req dto.CheckoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidInput("invalid payload", nil)
	}
	if req.LoanID == "" || req.UserEmail == "" {
		return apperrors.NewInvalidInput("loanId and userEmail required", nil)
	}

	sessionID, err := h.payments.CreateCheckoutSession(c.Context(), req.LoanID, req.UserEmail, req.Amount)
	if err != nil {
		return err
	}
	return c.JSON(dto.CheckoutSessionResponse{ID: sessionID})
}
