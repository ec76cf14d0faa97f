package dto

// UpdateStatusRequest payload for application review. Feedback is optional.
type UpdateStatusRequest struct {
	Status   string `json:"status"`
	Feedback string `json:"feedback,omitempty"`
}
