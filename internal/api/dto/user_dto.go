package dto

import "time"

// RegisterRequest payload for new accounts. Role is optional and defaults
// to borrower.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UpdateRoleRequest payload for admin role changes.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// SuspendRequest payload for admin suspension toggles. Suspended is a
// pointer so a missing field is distinguishable from an explicit false.
type SuspendRequest struct {
	Suspended *bool  `json:"suspended"`
	Reason    string `json:"reason,omitempty"`
}
