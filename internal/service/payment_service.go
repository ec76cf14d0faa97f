package service

import (
	"context"

	"github.com/spec-kit/loanlink-service/internal/payment"
	apperrors "github.com/spec-kit/loanlink-service/pkg/util"
)

// PaymentService issues loan-fee checkout sessions via the payment provider.
type PaymentService struct {
	checkout payment.CheckoutClient
}

// NewPaymentService builds the service.
func NewPaymentService(checkout payment.CheckoutClient) *PaymentService {
	return &PaymentService{checkout: checkout}
}

// CreateCheckoutSession opens one checkout session for a loan fee. There is
// no retry; a provider fault surfaces as a 500 to the caller.
func (s *PaymentService) CreateCheckoutSession(ctx context.Context, loanID, userEmail string, amount int64) (string, error) {
	if amount <= 0 {
		return "", apperrors.NewInvalidInput("amount must be positive", map[string]any{"amount": amount})
	}

	sessionID, err := s.checkout.CreateCheckoutSession(ctx, payment.CheckoutParams{
		LoanID:    loanID,
		UserEmail: userEmail,
		Amount:    amount,
	})
	if err != nil {
		return "", apperrors.NewPaymentProviderError(err)
	}
	return sessionID, nil
}
