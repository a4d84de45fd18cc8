package dto

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error string `json:"error" example:"name is required"`
}
