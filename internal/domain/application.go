package domain

import "strings"

// ApplicationStatus is the canonical lifecycle state of a loan application.
// TitleCase is authoritative; the historical lowercase "pending" written by
// older clients is folded in by NormalizeStatus.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "Pending"
	StatusApproved ApplicationStatus = "Approved"
	StatusRejected ApplicationStatus = "Rejected"
)

// NormalizeStatus folds a free-form status string onto the canonical enum.
func NormalizeStatus(value string) (ApplicationStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "pending":
		return StatusPending, true
	case "approved":
		return StatusApproved, true
	case "rejected":
		return StatusRejected, true
	}
	return "", false
}

// Field names shared by the loanApplications collection and its filters.
// Application payloads are otherwise opaque documents.
const (
	FieldEmail           = "email"
	FieldStatus          = "status"
	FieldManagerFeedback = "managerFeedback"
	FieldCreatedAt       = "createdAt"
	FieldUpdatedAt       = "updatedAt"
)
