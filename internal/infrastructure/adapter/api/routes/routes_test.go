package routes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerr "github.com/amirhossein-jamali/expense-analyzer/internal/domain/error"
	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/expense-analyzer/internal/domain/usecase/expense"
	"github.com/amirhossein-jamali/expense-analyzer/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/expense-analyzer/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/expense-analyzer/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/expense-analyzer/internal/infrastructure/adapter/repository"
	timeprovider "github.com/amirhossein-jamali/expense-analyzer/internal/infrastructure/adapter/time"
	mockpersistence "github.com/amirhossein-jamali/expense-analyzer/mocks/port/persistence"
)

const statement = "Date,Narration,Withdrawal Amt.,Deposit Amt.\n" +
	"01/06/24,DMART PURCHASE,\"1,200.00\",\n" +
	"02/06/24,SALARY,,\"50,000.00\"\n" +
	"03/06/24,ZOMATO ORDER,300,\n" +
	"04/06/24,VET VISIT,500,\n"

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T, repo persistence.TransactionRepository, maxUploadBytes int64) *gin.Engine {
	t.Helper()

	log := logger.NewNoopLogger()
	clock := timeprovider.NewRealTimeProvider()

	service := expense.NewService(repo, log, clock, 10)
	t.Cleanup(service.Shutdown)

	router := gin.New()
	SetupMiddlewares(router, log, clock, []string{"*"})
	SetupRoutes(router,
		handler.NewExpenseHandler(service, log, maxUploadBytes),
		handler.NewHealthHandler(service),
	)
	return router
}

func upload(t *testing.T, router *gin.Engine, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload_csv", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	router := newRouter(t, repository.NewMemoryTransactionRepository(), 1<<20)

	w := do(router, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","data_loaded":false}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestQueriesBeforeUpload(t *testing.T) {
	router := newRouter(t, repository.NewMemoryTransactionRepository(), 1<<20)

	for _, path := range []string{
		"/api/transactions",
		"/api/transactions/other",
		"/api/transactions/export",
		"/api/expense_summary",
		"/api/categories",
		"/api/session",
	} {
		t.Run(path, func(t *testing.T) {
			w := do(router, http.MethodGet, path, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, domainerr.KindNoData, decodeError(t, w).Kind)
		})
	}

	for _, tc := range []struct{ path, body string }{
		{"/api/update_category", `{"id":`},
		{"/api/update_category", `{"id":"one","category":"Rent"}`},
		{"/api/add_custom_category", `not json`},
		{"/api/add_custom_category", `{"id":1,"custom_category":"Pets"}`},
	} {
		t.Run(tc.path+" "+tc.body, func(t *testing.T) {
			w := do(router, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, domainerr.KindNoData, decodeError(t, w).Kind)
		})
	}

	w := do(router, http.MethodGet, "/api/rules", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUploadValidation(t *testing.T) {
	router := newRouter(t, repository.NewMemoryTransactionRepository(), 1<<20)

	t.Run("No file part", func(t *testing.T) {
		w := do(router, http.MethodPost, "/api/upload_csv", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.KindValidation, decodeError(t, w).Kind)
	})

	t.Run("Not a CSV", func(t *testing.T) {
		w := upload(t, router, "statement.xlsx", statement)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Message, "file must be a CSV")
	})

	t.Run("Empty CSV", func(t *testing.T) {
		w := upload(t, router, "empty.csv", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Message, "the uploaded CSV file is empty")
	})

	t.Run("Unknown layout", func(t *testing.T) {
		w := upload(t, router, "odd.csv", "Memo,Value\nx,1\n")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, domainerr.KindSchema, resp.Kind)
		assert.Equal(t, domainerr.CodeSchema, resp.Code)
	})
}

func TestUploadTooLarge(t *testing.T) {
	router := newRouter(t, repository.NewMemoryTransactionRepository(), 64)

	w := upload(t, router, "big.csv", statement+strings.Repeat("05/06/24,FILLER,1,\n", 20))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domainerr.KindValidation, decodeError(t, w).Kind)
}

func TestStatementWorkflow(t *testing.T) {
	router := newRouter(t, repository.NewMemoryTransactionRepository(), 1<<20)

	w := upload(t, router, "june.CSV", statement)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var uploaded dto.UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &uploaded))
	assert.Equal(t, 4, uploaded.TotalTransactions)
	assert.Equal(t, 2, uploaded.OtherCount)
	assert.Equal(t, map[string]int{"Groceries": 1, "Dining": 1, "Other": 2}, uploaded.Categories)
	assert.Equal(t, "june.CSV", uploaded.Session.SourceFile)

	w = do(router, http.MethodGet, "/api/transactions/other", "")
	require.Equal(t, http.StatusOK, w.Code)
	var other []dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &other))
	require.Len(t, other, 2)
	assert.Equal(t, 50000.0, other[0].Amount)

	// Id as a numeric string, custom category with display name
	w = do(router, http.MethodPost, "/api/update_category", `{"id":"4","category":"Pets","custom_name":"Pet Care"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated dto.UpdateCategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Pet Care", updated.Transaction.CustomName)

	w = do(router, http.MethodPost, "/api/add_custom_category",
		`{"id":1,"custom_category":"Household","description_keywords":["zomato"," "]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var added dto.AddCustomCategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))
	assert.Equal(t, 2, added.AffectedCount)

	w = do(router, http.MethodGet, "/api/expense_summary", "")
	require.Equal(t, http.StatusOK, w.Code)
	var summary []dto.SummaryRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.Len(t, summary, 2)
	assert.Equal(t, dto.SummaryRow{Category: "Household", Amount: 1500, TransactionCount: 2, Percentage: 75}, summary[0])
	assert.Equal(t, dto.SummaryRow{Category: "Pet Care", Amount: 500, TransactionCount: 1, Percentage: 25}, summary[1])

	w = do(router, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	var categories dto.CategoriesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	assert.Equal(t, []string{"Household", "Pet Care"}, categories.Custom)
	assert.Len(t, categories.Predefined, 15)

	w = do(router, http.MethodGet, "/api/transactions/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=categorized_transactions.csv", w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "id,Date,Description,Amount,Category,custom_name\n"))

	w = do(router, http.MethodGet, "/api/health", "")
	assert.JSONEq(t, `{"status":"healthy","data_loaded":true}`, w.Body.String())
}

func TestUpdateCategoryErrors(t *testing.T) {
	router := newRouter(t, repository.NewMemoryTransactionRepository(), 1<<20)
	require.Equal(t, http.StatusOK, upload(t, router, "june.csv", statement).Code)

	tests := []struct {
		name    string
		body    string
		status  int
		kind    string
		message string
	}{
		{"Malformed JSON", `{"id":`, http.StatusBadRequest, domainerr.KindValidation, "invalid request format"},
		{"Missing id", `{"category":"Rent"}`, http.StatusBadRequest, domainerr.KindValidation, "transaction ID is required"},
		{"Bad id", `{"id":"one","category":"Rent"}`, http.StatusBadRequest, domainerr.KindValidation, "invalid transaction ID format"},
		{"Missing category", `{"id":1}`, http.StatusBadRequest, domainerr.KindValidation, "category is required"},
		{"Custom without name", `{"id":1,"category":"Pets"}`, http.StatusBadRequest, domainerr.KindValidation, "Custom category name is required"},
		{"Unknown id", `{"id":40,"category":"Rent"}`, http.StatusNotFound, domainerr.KindNotFound, "Available IDs: [1 2 3 4]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(router, http.MethodPost, "/api/update_category", tt.body)
			assert.Equal(t, tt.status, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.kind, resp.Kind)
			assert.Contains(t, resp.Message, tt.message)
		})
	}
}

func TestExpenseSummaryGroupsByEffectiveLabel(t *testing.T) {
	router := newRouter(t, repository.NewMemoryTransactionRepository(), 1<<20)
	csv := "Date,Amount,Description\n" +
		"01/06/24,-100,RESTAURANT\n" +
		"02/06/24,-50,CAFE LATTE\n" +
		"03/06/24,200,SALARY\n"
	require.Equal(t, http.StatusOK, upload(t, router, "dining.csv", csv).Code)

	w := do(router, http.MethodPost, "/api/update_category", `{"id":2,"category":"Dining","custom_name":"Coffee"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(router, http.MethodGet, "/api/expense_summary", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"Category":"Dining","Amount":100,"Transaction_Count":1,"Percentage":66.7},
		{"Category":"Coffee","Amount":50,"Transaction_Count":1,"Percentage":33.3}
	]`, w.Body.String())
}

func TestEmptyExpenseSummary(t *testing.T) {
	router := newRouter(t, repository.NewMemoryTransactionRepository(), 1<<20)
	require.Equal(t, http.StatusOK, upload(t, router, "income.csv", "Date,Amount\n1,100\n").Code)

	w := do(router, http.MethodGet, "/api/expense_summary", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domainerr.KindEmptyData, decodeError(t, w).Kind)
}

func TestStorageFailureIsHidden(t *testing.T) {
	repo := mockpersistence.NewMockTransactionRepository(t)
	repo.EXPECT().Replace(mock.Anything, mock.Anything).Return(domainerr.ErrDatabaseConnection)

	router := newRouter(t, repo, 1<<20)

	w := upload(t, router, "june.csv", statement)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":5000,"kind":"InternalError","message":"Internal server error"}`, w.Body.String())
}
