package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"claimscore/internal/models"
	"claimscore/internal/store"
)

func ListProducts(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := st.Products(r.Context())
		if err != nil {
			lg.Errorw("list products failed", "error", err)
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

func GetProduct(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}
		row, err := st.Product(r.Context(), id)
		if err != nil {
			logLookupErr(lg, "product", id, err)
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, row)
	}
}

func ListProductsByType(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		typeID, ok := uuidParam(w, r, "typeId")
		if !ok {
			return
		}
		rows, err := st.ProductsByType(r.Context(), typeID)
		if err != nil {
			logLookupErr(lg, "products by type", typeID, err)
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

// Canonical product-type codes the label table is keyed by, with the aliases
// integrations send for each.
var (
	stoveAliases = map[string]struct{}{
		"c": {}, "cocina": {}, "27d3f815-3f17-43bd-b1e9-e5c366276f13": {},
	}
	heaterAliases = map[string]struct{}{
		"ca": {}, "calefon": {}, "t": {}, "termo": {},
		"7aaadd97-8a7d-4e74-97bb-4378890ee1f0": {},
		"9d1ab5c1-9a9b-4ea5-8885-f255afb68d0f": {},
	}
)

func canonicalTypeCode(code string) (string, bool) {
	k := strings.ToLower(strings.TrimSpace(code))
	if _, ok := stoveAliases[k]; ok {
		return "COCINA", true
	}
	if _, ok := heaterAliases[k]; ok {
		return "TERMOTANQUE", true
	}
	return "", false
}

// LookupLabel resolves a product from a printed serial-number label and the
// product-type code on it.
func LookupLabel(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LabelLookupDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Serial < 1 {
			http.Error(w, "invalid serial number", http.StatusBadRequest)
			return
		}
		if req.ProductType.Code == "" {
			http.Error(w, "product type code required", http.StatusBadRequest)
			return
		}
		canonical, ok := canonicalTypeCode(req.ProductType.Code)
		if !ok {
			http.Error(w, "unknown product type code", http.StatusBadRequest)
			return
		}
		out, err := st.LabelLookup(r.Context(), req.Serial, canonical, req.ProductType.Code)
		if err != nil {
			logLookupErr(lg, "label", canonical, err)
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, out)
	}
}

func ListProductTypes(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := st.ProductTypes(r.Context())
		if err != nil {
			lg.Errorw("list product types failed", "error", err)
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

func GetProductType(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}
		row, err := st.ProductType(r.Context(), id)
		if err != nil {
			logLookupErr(lg, "product type", id, err)
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, row)
	}
}
