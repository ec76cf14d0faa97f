package dto

// CheckoutSessionRequest payload for POST /create-checkout-session.
// Amount is in minor currency units.
type CheckoutSessionRequest struct {
	LoanID    string `json:"loanId"`
	UserEmail string `json:"userEmail"`
	Amount    int64  `json:"amount"`
}

// CheckoutSessionResponse carries the provider session identifier.
type CheckoutSessionResponse struct {
	ID string `json:"id"`
}
