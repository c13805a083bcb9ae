package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// uuidParam validates the route id the lookup tables are keyed by. Blank or
// malformed ids are a 400, matching the empty-guid check upstream clients
// rely on.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := chi.URLParam(r, name)
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return "", false
	}
	return id, true
}

// intParam parses complaint ids; anything below 1 is invalid.
func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || n < 1 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return n, true
}
