package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-analyzer/internal/infrastructure/adapter/api/dto"
)

// HealthHandler reports service liveness
type HealthHandler struct {
	expenseUseCase usecase.ExpenseUseCase
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(expenseUseCase usecase.ExpenseUseCase) *HealthHandler {
	return &HealthHandler{expenseUseCase: expenseUseCase}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	_, err := h.expenseUseCase.CurrentSession(c.Request.Context())
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:     "healthy",
		DataLoaded: err == nil,
	})
}
