package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"claimscore/internal/apperr"
	"claimscore/internal/auth"
	"claimscore/internal/config"
	"claimscore/internal/models"
	"claimscore/internal/store"
)

// Login verifies the submitted credential and issues a bearer token. A miss
// is a bare 401; infrastructure failures are logged with the username (never
// the password) and surface as the generic 500.
func Login(st *store.Store, cfg config.Config, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UserLoginDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.User == "" || req.Password == "" {
			http.Error(w, "user and password required", http.StatusBadRequest)
			return
		}
		cred, err := st.FindCredential(r.Context(), req.User, req.Password)
		if err != nil {
			if apperr.KindOf(err) == apperr.Internal {
				lg.Errorw("credential lookup failed", "user", req.User, "error", err)
			}
			respondError(w, err)
			return
		}
		token, exp, err := auth.Issue(cfg, cred)
		if err != nil {
			lg.Errorw("token issue failed", "user", req.User, "error", err)
			http.Error(w, genericServerError, http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"token":         token,
			"expirationUtc": exp,
			"userInfo":      models.UserInfoFromCredential(cred),
		})
	}
}
