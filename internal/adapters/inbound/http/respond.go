package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sukseskontraktor/rental-assistant/internal/domain"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case ErrorCode_BadRequest:
		statusCode = http.StatusBadRequest
	case ErrorCode_NotFound:
		statusCode = http.StatusNotFound
	}
	respondJSON(w, statusCode, err)
}

func toError(err error) ErrorResp {
	resp := ErrorResp{}
	resp.Error.Message = err.Error()

	var validationErr *domain.ValidationErr
	var notFoundErr *domain.NotFoundErr
	switch {
	case errors.As(err, &validationErr):
		resp.Error.Code = ErrorCode_BadRequest
	case errors.As(err, &notFoundErr):
		resp.Error.Code = ErrorCode_NotFound
	default:
		resp.Error.Code = ErrorCode_Internal
	}
	return resp
}
