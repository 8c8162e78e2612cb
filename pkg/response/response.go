// Package response writes the JSON envelopes the storefront API speaks.
// Every JSON endpoint responds with {"success": bool, ...}.
package response

import (
	"encoding/json"
	"net/http"
)

func write(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// JSON writes an arbitrary payload (used for review lists, ratings).
func JSON(w http.ResponseWriter, status int, v interface{}) {
	write(w, status, v)
}

// Success writes {"success":true} merged with extra fields.
func Success(w http.ResponseWriter, extra map[string]interface{}) {
	body := map[string]interface{}{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	write(w, http.StatusOK, body)
}

// Fail writes {"success":false,"message":...} with the given status.
// The storefront mirrors the original wire contract: validation failures go
// out as 200 with success=false.
func Fail(w http.ResponseWriter, status int, message string) {
	body := map[string]interface{}{"success": false}
	if message != "" {
		body["message"] = message
	}
	write(w, status, body)
}

// ValidationError writes field-level errors with success=false.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusOK, map[string]interface{}{
		"success": false,
		"message": "Validation failed",
		"errors":  errs,
	})
}

// Unauthorized writes a 401.
func Unauthorized(w http.ResponseWriter) {
	Fail(w, http.StatusUnauthorized, "Unauthorized")
}

// Forbidden writes a 403.
func Forbidden(w http.ResponseWriter) {
	Fail(w, http.StatusForbidden, "Forbidden")
}

// NotFound writes a 404.
func NotFound(w http.ResponseWriter) {
	Fail(w, http.StatusNotFound, "Not found")
}

// ServerError writes a generic 500; details stay in the logs.
func ServerError(w http.ResponseWriter) {
	Fail(w, http.StatusInternalServerError, "Internal Server Error")
}
