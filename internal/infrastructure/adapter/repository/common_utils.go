package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/expense-analyzer/internal/domain/error"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	TransientError  ErrorType = "transient"
	LockError       ErrorType = "lock"
	ConnectionError ErrorType = "connection"
	CanceledError   ErrorType = "canceled"
)

// ErrorClassifier buckets driver errors so repositories can map them onto domain errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error, or "" when it is not recognized
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return CanceledError
	case c.matches(err, "deadlock", "lock wait timeout", "could not serialize access"):
		return LockError
	case c.matches(err, "connection reset", "connection refused", "broken pipe", "server closed", "EOF"):
		return TransientError
	case c.matches(err, "connection", "dial", "network"):
		return ConnectionError
	default:
		return ""
	}
}

// Wrap maps err onto the domain taxonomy, keeping the driver message for logs
func (c *ErrorClassifier) Wrap(err error, operation string) error {
	if err == nil {
		return nil
	}
	if c.Classify(err) == CanceledError {
		return err
	}
	return fmt.Errorf("%w: %s: %s", errs.ErrDatabaseConnection, operation, err.Error())
}

func (c *ErrorClassifier) matches(err error, fragments ...string) bool {
	msg := strings.ToLower(err.Error())
	for _, f := range fragments {
		if strings.Contains(msg, strings.ToLower(f)) {
			return true
		}
	}
	return false
}
