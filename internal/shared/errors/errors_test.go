package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Constructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("quantity must be positive"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("license not found"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("license already exists"), ErrorTypeConflict, http.StatusConflict},
		{"unavailable", NewUnavailableError("database unavailable"), ErrorTypeUnavailable, http.StatusServiceUnavailable},
		{"rate limited", NewRateLimitedError("too many attempts"), ErrorTypeRateLimited, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestAppError_ErrorString(t *testing.T) {
	assert.Equal(t, "conflict: license already exists", NewConflictError("license already exists").Error())
	assert.Equal(t,
		"validation_error: invalid currency (XYZ)",
		NewValidationError("invalid currency", "XYZ").Error())
}

func TestGetAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("renew failed: %w", NewNotFoundError("license not found"))

	assert.True(t, IsAppError(wrapped))
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsConflictError(wrapped))
	assert.Nil(t, GetAppError(stderrors.New("plain")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(stderrors.New("Error 1062 (23000): Duplicate entry '1-2' for key 'idx_customer_product'")))
	assert.True(t, IsDuplicateError(stderrors.New("UNIQUE constraint failed: licenses.customer_id, licenses.product_id")))
	assert.False(t, IsDuplicateError(stderrors.New("record not found")))
	assert.False(t, IsDuplicateError(nil))
}

func TestIsConnectionError(t *testing.T) {
	assert.True(t, IsConnectionError(stderrors.New("dial tcp 127.0.0.1:3306: connect: connection refused")))
	assert.True(t, IsConnectionError(stderrors.New("sql: database is closed")))
	assert.False(t, IsConnectionError(stderrors.New("UNIQUE constraint failed")))
}
