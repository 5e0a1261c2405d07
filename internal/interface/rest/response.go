package rest

import (
	"encoding/json"
	"net/http"
)

// envelope は全レスポンス共通のJSON封筒です。
// クライアントエラーは常にstatusとmessage（またはerrors）を持ちます
type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// respondSuccess sends a 200 JSON response with data.
func respondSuccess(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, envelope{Status: http.StatusOK, Data: data})
}

// respondCreated sends a 201 JSON response with data.
func respondCreated(w http.ResponseWriter, data any) {
	write(w, http.StatusCreated, envelope{Status: http.StatusCreated, Data: data})
}

// respondNoContent sends a 204 response without a body.
func respondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// respondError sends a JSON error response with a single message.
func respondError(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Status: status, Message: message})
}

// respondValidationError sends a 400 with a field-level error map.
func respondValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusBadRequest, envelope{
		Status: http.StatusBadRequest,
		Errors: errs,
	})
}
