package payment

import (
	"context"
	"net/url"

	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/checkout/session"

	"github.com/spec-kit/loanlink-service/internal/config"
)

// CheckoutParams describes a single loan-fee checkout.
type CheckoutParams struct {
	LoanID    string
	UserEmail string
	Amount    int64 // minor units
}

// CheckoutClient creates provider-hosted checkout sessions. Handlers depend
// on this interface so provider faults can be simulated in tests.
type CheckoutClient interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (string, error)
}

// StripeClient implements CheckoutClient against the Stripe checkout API.
type StripeClient struct {
	apiKey     string
	successURL string
	cancelURL  string
}

// NewStripeClient builds a client from checkout configuration.
func NewStripeClient(cfg config.CheckoutConfig) *StripeClient {
	return &StripeClient{
		apiKey:     cfg.StripeSecretKey,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
	}
}

// CreateCheckoutSession opens a one-line-item USD session carrying the loan
// and user in metadata so the payment can be correlated back to a loan.
func (c *StripeClient) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (string, error) {
	stripe.Key = c.apiKey

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Loan Application Fee"),
					},
					UnitAmount: stripe.Int64(p.Amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(c.successURL + "&loanId=" + url.QueryEscape(p.LoanID)),
		CancelURL:  stripe.String(c.cancelURL),
	}
	params.AddMetadata("loanId", p.LoanID)
	params.AddMetadata("userEmail", p.UserEmail)

	// Stripe Go SDK v75 does not support context, so we cannot pass ctx directly.
	s, err := session.New(params)
	if err != nil {
		return "", err
	}
	return s.ID, nil
}
