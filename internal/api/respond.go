package api

import (
	"encoding/json"
	"net/http"

	apperrors "vanrental/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps a service error to its HTTP status and a {"detail": ...}
// body. Anything outside the taxonomy becomes a 500.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, apperrors.StatusOf(err), map[string]string{"detail": err.Error()})
}
