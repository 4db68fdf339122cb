package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/expense-analyzer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-analyzer/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-analyzer/internal/infrastructure/adapter/api/dto"
)

// StatusCode maps a domain error onto an HTTP status
func StatusCode(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body and records err on the gin context
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	_ = c.Error(err)

	status := StatusCode(err)
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"operation":  operation,
			"error":      err.Error(),
			"request_id": coreport.RequestIDFromContext(c.Request.Context()),
		})
		c.JSON(status, dto.InternalErrorResponse())
		return
	}

	fields := map[string]any{
		"operation": operation,
		"error":     err.Error(),
	}
	if lf, ok := err.(interface{ LogFields() map[string]any }); ok {
		for k, v := range lf.LogFields() {
			fields[k] = v
		}
	}
	logger.Warn("Request rejected", fields)
	c.JSON(status, dto.NewErrorResponse(err))
}
