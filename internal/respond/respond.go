package respond

import (
	"encoding/json"
	"net/http"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/validation"
)

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// Error writes the {"error","message"} envelope used by every handler.
func Error(w http.ResponseWriter, statusCode int, errorType, message string) {
	JSON(w, statusCode, map[string]interface{}{
		"error":   errorType,
		"message": message,
	})
}

// Validation writes a 400 listing the failing fields of a validation.Error.
// It returns false when err is not a validation error.
func Validation(w http.ResponseWriter, err error) bool {
	fields, ok := validation.Fields(err)
	if !ok {
		return false
	}
	JSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":   "validation_error",
		"message": "validation failed",
		"fields":  fields,
	})
	return true
}

// ConfirmationRequired rejects a destructive request that lacks ?confirm=true.
func ConfirmationRequired(w http.ResponseWriter, what string) {
	Error(w, http.StatusConflict, "confirmation_required", what+" requires confirm=true")
}

// Confirmed reports whether the request carries ?confirm=true.
func Confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}

// Decode reads a JSON body into v and answers 400 on failure.
func Decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return false
	}
	return true
}
