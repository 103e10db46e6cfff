package commons

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"palantir/internal/dto"
	apperrors "palantir/internal/errors"
)

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", apperrors.NewInvalidArgument("name", "name is required"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", apperrors.NewNotFoundError("order not found"), http.StatusNotFound, "NOT_FOUND"},
		{"already exists", apperrors.NewAlreadyExistsError("dup"), http.StatusConflict, "ALREADY_EXISTS"},
		{"conflict", apperrors.NewConflictError("payment is already APPROVED"), http.StatusConflict, "CONFLICT"},
		{"deadlock", apperrors.NewDeadlockError("max retries exceeded"), http.StatusConflict, "DEADLOCK"},
		{"invalid state", apperrors.NewInvalidStateError("bad transition"), http.StatusUnprocessableEntity, "INVALID_STATE"},
		{"wrapped not found", fmt.Errorf("loading: %w", apperrors.NewNotFoundError("x")), http.StatusNotFound, "NOT_FOUND"},
		{"internal", fmt.Errorf("connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, "trace-1", tt.err, zap.NewNop())

			assert.Equal(t, tt.status, rec.Code)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "trace-1", body.TraceID)
		})
	}
}

func TestWriteError_HidesInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, "trace-1", fmt.Errorf("dial tcp 10.0.0.1:3306"), zap.NewNop())

	assert.NotContains(t, rec.Body.String(), "10.0.0.1")
	assert.Contains(t, rec.Body.String(), "an unexpected error occurred")
}

func TestWriteError_InternalWrappingValidation(t *testing.T) {
	err := apperrors.NewInternalError("restoring order abc", apperrors.NewValidationError("invalid order"))

	rec := httptest.NewRecorder()
	WriteError(rec, "trace-1", err, zap.NewNop())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Equal(t, "an unexpected error occurred", body.Message)
	assert.Empty(t, body.Details)
	assert.NotContains(t, rec.Body.String(), "invalid order")
}

func TestStoreID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	_, err := StoreID(req)
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)

	req.Header.Set(StoreIDHeader, " store-1 ")
	storeID, err := StoreID(req)
	require.NoError(t, err)
	assert.Equal(t, "store-1", storeID)
}

func TestDecodeJSON_Invalid(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{"))
	var v map[string]interface{}

	err := DecodeJSON(req, &v)
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}
