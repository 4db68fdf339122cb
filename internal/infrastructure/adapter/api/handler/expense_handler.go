package handler

import (
	"bytes"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/expense-analyzer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-analyzer/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-analyzer/internal/infrastructure/adapter/api/dto"
)

// uploadField is the multipart form field carrying the statement
const uploadField = "file"

// ExportFilename is suggested to clients downloading the categorized table
const ExportFilename = "categorized_transactions.csv"

// ExpenseHandler handles statement and category HTTP requests
type ExpenseHandler struct {
	expenseUseCase usecase.ExpenseUseCase
	logger         coreport.Logger
	maxUploadBytes int64
}

// NewExpenseHandler creates a new expense handler instance
func NewExpenseHandler(
	expenseUseCase usecase.ExpenseUseCase,
	logger coreport.Logger,
	maxUploadBytes int64,
) *ExpenseHandler {
	return &ExpenseHandler{
		expenseUseCase: expenseUseCase,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// UploadCSV handles POST /api/upload_csv
func (h *ExpenseHandler) UploadCSV(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge), strings.Contains(err.Error(), "request body too large"):
			err = domainerr.NewValidationError(uploadField, "the uploaded file is too large")
		default:
			err = domainerr.NewValidationError(uploadField, "no file part in the request")
		}
		respondError(c, h.logger, "upload_csv", err)
		return
	}

	if fileHeader.Filename == "" {
		respondError(c, h.logger, "upload_csv", domainerr.NewValidationError(uploadField, "no selected file"))
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".csv") {
		respondError(c, h.logger, "upload_csv", domainerr.NewValidationError(uploadField, "file must be a CSV"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, h.logger, "upload_csv", err)
		return
	}
	defer file.Close()

	result, err := h.expenseUseCase.Ingest(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		respondError(c, h.logger, "upload_csv", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUploadResponse(result))
}

// ListTransactions handles GET /api/transactions
func (h *ExpenseHandler) ListTransactions(c *gin.Context) {
	transactions, err := h.expenseUseCase.ListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list_transactions", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionList(transactions))
}

// ListUncategorized handles GET /api/transactions/other
func (h *ExpenseHandler) ListUncategorized(c *gin.Context) {
	transactions, err := h.expenseUseCase.ListUncategorized(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list_uncategorized", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionList(transactions))
}

// ExportCSV handles GET /api/transactions/export
func (h *ExpenseHandler) ExportCSV(c *gin.Context) {
	// Buffered so a failure can still be reported as JSON
	var buf bytes.Buffer
	if err := h.expenseUseCase.ExportCSV(c.Request.Context(), &buf); err != nil {
		respondError(c, h.logger, "export_csv", err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+ExportFilename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// requireData rejects the request with NoDataError until a statement is loaded,
// before the body is looked at
func (h *ExpenseHandler) requireData(c *gin.Context, op string) bool {
	if _, err := h.expenseUseCase.CurrentSession(c.Request.Context()); err != nil {
		respondError(c, h.logger, op, err)
		return false
	}
	return true
}

// UpdateCategory handles POST /api/update_category
func (h *ExpenseHandler) UpdateCategory(c *gin.Context) {
	if !h.requireData(c, "update_category") {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "update_category", domainerr.NewValidationError("", "invalid request format: "+err.Error()))
		return
	}

	id, err := dto.ParseTransactionID(req.ID)
	if err != nil {
		respondError(c, h.logger, "update_category", err)
		return
	}

	updated, err := h.expenseUseCase.UpdateCategory(c.Request.Context(), id, req.Category, req.CustomName)
	if err != nil {
		respondError(c, h.logger, "update_category", err)
		return
	}

	c.JSON(http.StatusOK, dto.UpdateCategoryResponse{
		Message:     "Category updated successfully",
		Transaction: dto.NewTransactionResponse(*updated),
	})
}

// AddCustomCategory handles POST /api/add_custom_category
func (h *ExpenseHandler) AddCustomCategory(c *gin.Context) {
	if !h.requireData(c, "add_custom_category") {
		return
	}

	var req dto.AddCustomCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "add_custom_category", domainerr.NewValidationError("", "invalid request format: "+err.Error()))
		return
	}

	id, err := dto.ParseTransactionID(req.ID)
	if err != nil {
		respondError(c, h.logger, "add_custom_category", err)
		return
	}

	affected, err := h.expenseUseCase.AddCustomCategory(c.Request.Context(), id, req.CustomCategory, req.DescriptionKeywords)
	if err != nil {
		respondError(c, h.logger, "add_custom_category", err)
		return
	}

	c.JSON(http.StatusOK, dto.AddCustomCategoryResponse{
		Message:       "Custom category added successfully",
		AffectedCount: affected,
	})
}

// ExpenseSummary handles GET /api/expense_summary
func (h *ExpenseHandler) ExpenseSummary(c *gin.Context) {
	summary, err := h.expenseUseCase.ExpenseSummary(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "expense_summary", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSummary(summary))
}

// ListCategories handles GET /api/categories
func (h *ExpenseHandler) ListCategories(c *gin.Context) {
	listing, err := h.expenseUseCase.ListAllCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list_categories", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoriesResponse(listing))
}

// ListRules handles GET /api/rules
func (h *ExpenseHandler) ListRules(c *gin.Context) {
	rules := h.expenseUseCase.CategoryRules()
	out := make([]dto.RuleResponse, len(rules))
	for i, r := range rules {
		out[i] = dto.RuleResponse{Category: r.Category, Keywords: r.Keywords}
	}
	c.JSON(http.StatusOK, out)
}

// CurrentSession handles GET /api/session
func (h *ExpenseHandler) CurrentSession(c *gin.Context) {
	session, err := h.expenseUseCase.CurrentSession(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "current_session", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSessionResponse(*session))
}
