package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"claimscore/internal/apperr"
)

// genericServerError is the only text a 500 ever carries; internals stay in
// the logs.
const genericServerError = "Ocurrió un error inesperado. Contacte a sistemas."

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// respondError is the single place error kinds become status codes.
func respondError(w http.ResponseWriter, err error) {
	switch apperr.KindOf(err) {
	case apperr.InvalidInput:
		http.Error(w, err.Error(), http.StatusBadRequest)
	case apperr.NotFound:
		http.Error(w, "not found", http.StatusNotFound)
	case apperr.Unauthorized:
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case apperr.Forbidden:
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		http.Error(w, genericServerError, http.StatusInternalServerError)
	}
}

// logLookupErr records infrastructure failures with the request's key
// parameter. Expected outcomes (not found, bad input) are not log-worthy.
func logLookupErr(lg *zap.SugaredLogger, what, id string, err error) {
	if apperr.KindOf(err) == apperr.Internal {
		lg.Errorw(what+" lookup failed", "id", id, "error", err)
	}
}
