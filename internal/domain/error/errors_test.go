package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrEmptyData.Error() != "no expense data found" {
		t.Errorf("ErrEmptyData has unexpected message: %s", ErrEmptyData.Error())
	}
	if ErrNoData.Error() != "no data available, please upload a CSV file first" {
		t.Errorf("ErrNoData has unexpected message: %s", ErrNoData.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
		kind     string
	}{
		{"Schema", ErrSchema, 4001, KindSchema},
		{"Validation", ErrValidation, 4002, KindValidation},
		{"NoData", ErrNoData, 4003, KindNoData},
		{"EmptyData", ErrEmptyData, 4004, KindEmptyData},
		{"NotFound", ErrNotFound, 4040, KindNotFound},
		{"UnknownError", errors.New("unknown error"), 5000, KindInternal},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrValidation), 4002, KindValidation},
		{"TypedSchema", NewSchemaError([]string{"Foo"}, "missing Date column"), 4001, KindSchema},
		{"TypedNotFound", NewNotFoundError(7, []uint64{1, 2}), 4040, KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if code := ErrorCode(tc.err); code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
			if kind := Kind(tc.err); kind != tc.kind {
				t.Errorf("Kind(%v) = %s, want %s", tc.err, kind, tc.kind)
			}
		})
	}
}

func TestSchemaError(t *testing.T) {
	err := NewSchemaError([]string{"Date", "Memo"}, "CSV must contain a 'Date' column")

	expectedErrMsg := "CSV must contain a 'Date' column (found columns: Date, Memo)"
	if err.Error() != expectedErrMsg {
		t.Errorf("SchemaError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}
	if !errors.Is(err, ErrSchema) {
		t.Errorf("errors.Is(err, ErrSchema) = false, want true")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("custom_name", "required for non-predefined categories")

	expectedErrMsg := "custom_name: required for non-predefined categories"
	if err.Error() != expectedErrMsg {
		t.Errorf("ValidationError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, want true")
	}

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("errors.As failed: not a *ValidationError")
	}
	if vErr.Field != "custom_name" {
		t.Errorf("Field = %s, want custom_name", vErr.Field)
	}
}

func TestNotFoundError(t *testing.T) {
	available := []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	err := NewNotFoundError(99, available)

	expectedErrMsg := "transaction ID 99 not found. Available IDs: [1 2 3 4 5 6 7 8 9 10]..."
	if err.Error() != expectedErrMsg {
		t.Errorf("NotFoundError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}
	if !IsNotFoundError(err) {
		t.Errorf("IsNotFoundError(err) = false, want true")
	}

	// The sample must not alias the caller's slice
	available[0] = 100
	var nfErr *NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("errors.As failed: not a *NotFoundError")
	}
	if nfErr.AvailableIDs[0] != 1 {
		t.Errorf("AvailableIDs[0] = %d, want 1", nfErr.AvailableIDs[0])
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	if IsNoDataError(ErrValidation) {
		t.Errorf("IsNoDataError(ErrValidation) = true, want false")
	}
	if !IsNoDataError(fmt.Errorf("wrapped: %w", ErrNoData)) {
		t.Errorf("IsNoDataError(wrapped) = false, want true")
	}
	if IsClientError(ErrDatabaseConnection) {
		t.Errorf("IsClientError(ErrDatabaseConnection) = true, want false")
	}
	if !IsClientError(ErrEmptyData) {
		t.Errorf("IsClientError(ErrEmptyData) = false, want true")
	}
}
