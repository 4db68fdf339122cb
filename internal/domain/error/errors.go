package error

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeSchema     = 4001
	CodeValidation = 4002
	CodeNoData     = 4003
	CodeEmptyData  = 4004
	CodeNotFound   = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Error kinds reported to API clients alongside the numeric code
const (
	KindSchema     = "SchemaError"
	KindValidation = "ValidationError"
	KindNotFound   = "NotFoundError"
	KindNoData     = "NoDataError"
	KindEmptyData  = "EmptyDataError"
	KindInternal   = "InternalError"
)

// Base error types
var (
	// ErrSchema is returned when an uploaded statement has an unrecognized column layout
	ErrSchema = errors.New("unrecognized statement schema")

	// ErrValidation is returned when a request carries missing or conflicting fields
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a transaction id does not exist in the loaded table
	ErrNotFound = errors.New("transaction not found")

	// ErrNoData is returned by every operation except ingestion before a statement was loaded
	ErrNoData = errors.New("no data available, please upload a CSV file first")

	// ErrEmptyData is returned when a summary has no qualifying rows
	ErrEmptyData = errors.New("no expense data found")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrQueueClosed is returned when a mutation is submitted after shutdown
	ErrQueueClosed = errors.New("write queue is closed")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrSchema):
		return CodeSchema
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrNoData):
		return CodeNoData
	case errors.Is(err, ErrEmptyData):
		return CodeEmptyData
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	default:
		return CodeInternalServer
	}
}

// Kind returns the error kind name for known errors
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrSchema):
		return KindSchema
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNoData):
		return KindNoData
	case errors.Is(err, ErrEmptyData):
		return KindEmptyData
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindInternal
	}
}

// SchemaError describes why an uploaded statement could not be mapped
type SchemaError struct {
	Columns []string
	Reason  string
}

// Error implements the error interface for SchemaError
func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s (found columns: %s)", e.Reason, strings.Join(e.Columns, ", "))
}

// Is checks if the target error is an ErrSchema
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// LogFields returns a map of fields for structured logging
func (e *SchemaError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "schema_error",
		"columns":    e.Columns,
		"reason":     e.Reason,
		"error_code": CodeSchema,
	}
}

// NewSchemaError creates a new schema error for the given header
func NewSchemaError(columns []string, reason string) error {
	return &SchemaError{
		Columns: columns,
		Reason:  reason,
	}
}

// ValidationError describes a rejected field in a request
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": CodeValidation,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(field, reason string) error {
	return &ValidationError{
		Field:  field,
		Reason: reason,
	}
}

// NotFoundError reports a missing transaction together with a sample of ids that do exist
type NotFoundError struct {
	ID           uint64
	AvailableIDs []uint64
}

// Error implements the error interface for NotFoundError
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction ID %d not found. Available IDs: %v...", e.ID, e.AvailableIDs)
}

// Is checks if the target error is an ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// LogFields returns a map of fields for structured logging
func (e *NotFoundError) LogFields() map[string]any {
	return map[string]any{
		"error_type":    "not_found",
		"id":            e.ID,
		"available_ids": e.AvailableIDs,
		"error_code":    CodeNotFound,
	}
}

// MaxSampleIDs bounds the id sample embedded in NotFoundError
const MaxSampleIDs = 10

// NewNotFoundError creates a not-found error keeping at most MaxSampleIDs of the available ids
func NewNotFoundError(id uint64, available []uint64) error {
	sample := available
	if len(sample) > MaxSampleIDs {
		sample = sample[:MaxSampleIDs]
	}
	return &NotFoundError{
		ID:           id,
		AvailableIDs: append([]uint64(nil), sample...),
	}
}

// IsNotFoundError checks if the error is a transaction not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNoDataError checks if the error was caused by querying before ingestion
func IsNoDataError(err error) bool {
	return errors.Is(err, ErrNoData)
}

// IsClientError reports whether the error was caused by the caller rather than the server
func IsClientError(err error) bool {
	return ErrorCode(err) != CodeInternalServer
}
