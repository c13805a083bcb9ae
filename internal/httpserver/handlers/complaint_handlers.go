package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"claimscore/internal/apperr"
	"claimscore/internal/models"
	"claimscore/internal/store"
)

func ListComplaints(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := st.Complaints(r.Context())
		if err != nil {
			lg.Errorw("list complaints failed", "error", err)
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

func GetComplaint(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := intParam(w, r, "id")
		if !ok {
			return
		}
		c, err := st.Complaint(r.Context(), id)
		if err != nil {
			if apperr.KindOf(err) == apperr.Internal {
				lg.Errorw("complaint lookup failed", "id", id, "error", err)
			}
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, c)
	}
}

// CreateComplaint persists the aggregate and answers 201 with a Location
// pointing at the get-by-id route.
func CreateComplaint(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ComplaintDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		c := models.ComplaintFromDTO(req)
		if err := st.CreateComplaint(r.Context(), &c); err != nil {
			lg.Errorw("complaint create failed", "document_id", req.DocumentID, "error", err)
			respondError(w, err)
			return
		}
		w.Header().Set("Location", fmt.Sprintf("/v1/complaints/%d", c.ID))
		respondJSON(w, http.StatusCreated, c)
	}
}

func UpdateComplaint(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := intParam(w, r, "id")
		if !ok {
			return
		}
		var req models.ComplaintDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := st.UpdateComplaint(r.Context(), id, req); err != nil {
			if apperr.KindOf(err) == apperr.Internal {
				lg.Errorw("complaint update failed", "id", id, "error", err)
			}
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteComplaint(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := intParam(w, r, "id")
		if !ok {
			return
		}
		if err := st.DeleteComplaint(r.Context(), id); err != nil {
			if apperr.KindOf(err) == apperr.Internal {
				lg.Errorw("complaint delete failed", "id", id, "error", err)
			}
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
