package domain

// LoanStatusDefault is stamped onto new loan documents when the caller
// supplies no status. Loan amount/terms fields are opaque to the service.
const LoanStatusDefault = "pending"
