package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"claimscore/internal/store"
)

func ListTechnicians(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := st.Technicians(r.Context())
		if err != nil {
			lg.Errorw("list technicians failed", "error", err)
			respondError(w, err)
			return
		}
		if len(rows) == 0 {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, rows)
	}
}

func GetTechnician(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}
		row, err := st.Technician(r.Context(), id)
		if err != nil {
			logLookupErr(lg, "technician", id, err)
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, row)
	}
}

func ListTechnicianTypes(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := st.TechnicianTypes(r.Context())
		if err != nil {
			lg.Errorw("list technician types failed", "error", err)
			respondError(w, err)
			return
		}
		if len(rows) == 0 {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, rows)
	}
}

func GetTechnicianType(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}
		row, err := st.TechnicianType(r.Context(), id)
		if err != nil {
			logLookupErr(lg, "technician type", id, err)
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, row)
	}
}
