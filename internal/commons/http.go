package commons

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"palantir/internal/dto"
	apperrors "palantir/internal/errors"
)

// StoreIDHeader carries the caller's store on every store-scoped route.
const StoreIDHeader = "X-Store-ID"

// TraceLogger returns a fresh trace id and a logger tagged with it.
func TraceLogger(logger *zap.Logger) (string, *zap.Logger) {
	traceID := uuid.New().String()
	return traceID, logger.With(zap.String("traceId", traceID))
}

func StoreID(r *http.Request) (string, error) {
	storeID := strings.TrimSpace(r.Header.Get(StoreIDHeader))
	if storeID == "" {
		return "", apperrors.NewInvalidArgument("storeId", StoreIDHeader+" header is required")
	}
	return storeID, nil
}

func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.NewInvalidArgument("body", "request body must be valid JSON")
	}
	return nil
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// WriteError maps an error kind to its HTTP status. An InternalError wins over
// any kind it wraps; it and anything unrecognised are logged and reported as a
// generic 500.
func WriteError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	response := dto.ErrorResponse{
		TraceID:   traceID,
		Message:   err.Error(),
		Timestamp: time.Now().UTC(),
	}

	if _, ok := apperrors.IsInternalError(err); ok {
		logger.Error("internal error", zap.Error(err))
		response.Status, response.Code = http.StatusInternalServerError, "INTERNAL_ERROR"
		response.Message = "an unexpected error occurred"
	} else if ve, ok := apperrors.IsValidationError(err); ok {
		response.Status, response.Code = http.StatusBadRequest, "VALIDATION_ERROR"
		response.Message, response.Details = ve.Message, ve.Details
	} else if _, ok := apperrors.IsNotFoundError(err); ok {
		response.Status, response.Code = http.StatusNotFound, "NOT_FOUND"
	} else if _, ok := apperrors.IsAlreadyExistsError(err); ok {
		response.Status, response.Code = http.StatusConflict, "ALREADY_EXISTS"
	} else if _, ok := apperrors.IsConflictError(err); ok {
		response.Status, response.Code = http.StatusConflict, "CONFLICT"
	} else if _, ok := apperrors.IsDeadlockError(err); ok {
		response.Status, response.Code = http.StatusConflict, "DEADLOCK"
	} else if _, ok := apperrors.IsInvalidStateError(err); ok {
		response.Status, response.Code = http.StatusUnprocessableEntity, "INVALID_STATE"
	} else {
		logger.Error("unexpected error", zap.Error(err))
		response.Status, response.Code = http.StatusInternalServerError, "INTERNAL_ERROR"
		response.Message = "an unexpected error occurred"
	}

	if response.Status < http.StatusInternalServerError {
		logger.Warn("request failed", zap.String("code", response.Code), zap.Error(err))
	}
	WriteJSON(w, response.Status, response, logger)
}
