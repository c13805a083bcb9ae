package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"claimscore/internal/store"
)

func ListProvinces(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := st.Provinces(r.Context())
		if err != nil {
			lg.Errorw("list provinces failed", "error", err)
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

func GetProvince(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}
		row, err := st.Province(r.Context(), id)
		if err != nil {
			logLookupErr(lg, "province", id, err)
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, row)
	}
}

func ListProblems(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := st.Problems(r.Context())
		if err != nil {
			lg.Errorw("list problems failed", "error", err)
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

func GetProblem(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}
		row, err := st.Problem(r.Context(), id)
		if err != nil {
			logLookupErr(lg, "problem", id, err)
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, row)
	}
}
