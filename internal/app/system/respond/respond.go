// Package respond writes the uniform JSON envelope used by every API
// endpoint:
//
//	{ "success": bool, "message": "...", <payload keys>, "pagination": {...},
//	  "error": "...", "errors": [...] }
//
// Handlers build the payload as a Body map so each resource can keep its
// historical payload key ("blog", "blogs", "data", "categories", ...).
package respond

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Body is the payload portion of an envelope, merged into the top-level
// JSON object alongside success/message.
type Body map[string]any

// JSON writes an envelope with the given status. Fields in body override
// nothing: success and message are set first, then body keys are merged in.
func JSON(w http.ResponseWriter, status int, success bool, message string, body Body) {
	out := map[string]any{"success": success}
	if message != "" {
		out["message"] = message
	}
	for k, v := range body {
		out[k] = v
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(out); err != nil {
		zap.L().Error("respond: encode failed", zap.Error(err))
	}
}

// OK writes a 200 success envelope.
func OK(w http.ResponseWriter, message string, body Body) {
	JSON(w, http.StatusOK, true, message, body)
}

// Created writes a 201 success envelope.
func Created(w http.ResponseWriter, message string, body Body) {
	JSON(w, http.StatusCreated, true, message, body)
}

// BadRequest writes a 400 failure envelope with a single message.
func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, false, message, nil)
}

// ValidationFailed writes a 400 failure envelope carrying itemized messages.
func ValidationFailed(w http.ResponseWriter, errs []string) {
	JSON(w, http.StatusBadRequest, false, "Validation error", Body{"errors": errs})
}

// NotFound writes a 404 failure envelope.
func NotFound(w http.ResponseWriter, message string) {
	JSON(w, http.StatusNotFound, false, message, nil)
}

// Internal writes a 500 failure envelope. The underlying error is logged by
// the caller; only err's message is exposed, matching the upstream API.
func Internal(w http.ResponseWriter, message string, err error) {
	body := Body{}
	if err != nil {
		body["error"] = err.Error()
	}
	JSON(w, http.StatusInternalServerError, false, message, body)
}
