package handlers

import (
	"encoding/json"
	"net/http"
)

// respondJSON writes v as the JSON response body with the given status code.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondInternal is the single fallback for unclassified failures. Callers
// get the same 500 envelope whether the store rejected a constraint or the
// file was unreachable.
func respondInternal(w http.ResponseWriter, err error) {
	respondJSON(w, http.StatusInternalServerError, map[string]string{
		"message": "Something went wrong",
		"error":   err.Error(),
	})
}

// Health reports process liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
