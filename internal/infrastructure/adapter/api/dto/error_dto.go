package dto

import (
	domainerr "github.com/amirhossein-jamali/expense-analyzer/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// NewErrorResponse builds the response body for a domain error
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Kind:    domainerr.Kind(err),
		Message: err.Error(),
	}
}

// InternalErrorResponse hides server-side details from the client
func InternalErrorResponse() ErrorResponse {
	return ErrorResponse{
		Code:    domainerr.CodeInternalServer,
		Kind:    domainerr.KindInternal,
		Message: "Internal server error",
	}
}
