package handler

import "github.com/aims/backend/internal/interfaces/http/dto"

// ListResponse represents a paginated list response for OpenAPI documentation
// @Description Page of records with pagination metadata
type ListResponse[T any] struct {
	Success bool      `json:"success" example:"true"`
	Data    []T       `json:"data"`
	Meta    *dto.Meta `json:"meta"`
}

// ErrorResponse represents an error API response for OpenAPI documentation
// @Description Standard error response
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Message string         `json:"message" example:"Asset not found"`
	Error   *dto.ErrorInfo `json:"error"`
}

// MessageResponse represents a success response that only carries a message
// @Description Success response without a record
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Category deleted successfully."`
}

// APIResponse wraps a single payload for OpenAPI documentation
// @Description Success response carrying data
type APIResponse[T any] struct {
	Success bool `json:"success" example:"true"`
	Data    T    `json:"data"`
}
