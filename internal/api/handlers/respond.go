package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error statuses as the bot platform expects them in the response body.
const (
	StatusValidationError = "validation_error"
	StatusConflict        = "conflict_error"
	StatusNotFound        = "not_found"
	StatusUpstreamError   = "upstream_error"
	StatusAuthError       = "auth_error"
	StatusInternalError   = "internal_error"
)

// ErrorResponse is the error envelope returned on every failed request.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DecodeJSON decodes the request body into dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("empty request body")
	}
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// RespondJSON writes a JSON response with the given status code
func RespondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError writes an error envelope with the given HTTP code and status
func RespondError(w http.ResponseWriter, code int, status, message string) {
	RespondJSON(w, code, ErrorResponse{Status: status, Message: message})
}

// RespondValidationError writes a 400 validation error
func RespondValidationError(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, StatusValidationError, message)
}

// RespondConflict writes a 409 slot conflict error
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, StatusConflict, message)
}

// RespondNotFound writes a 404 error
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, StatusNotFound, message)
}

// RespondUpstreamError writes a 502 error for calendar gateway failures
func RespondUpstreamError(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadGateway, StatusUpstreamError, message)
}

// RespondForbidden writes a 403 auth error
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, StatusAuthError, message)
}

// RespondInternalError writes a 500 error without leaking details
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, StatusInternalError, "erro interno do servidor")
}
