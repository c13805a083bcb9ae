package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"claimscore/internal/auth"
	"claimscore/internal/config"
	"claimscore/internal/httpserver/handlers"
	"claimscore/internal/store"
)

// NewRouter wires the route tree. Login is the only anonymous endpoint;
// everything else sits behind the bearer middleware, split into the user
// tier (reads) and the administrator tier (complaint writes).
func NewRouter(st *store.Store, cfg config.Config, lg *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)
	r.Post("/v1/auth/login", handlers.Login(st, cfg, lg))
	r.Group(func(protected chi.Router) {
		protected.Use(auth.Bearer(cfg))
		protected.Group(func(user chi.Router) {
			user.Use(auth.RequireUserRole())
			user.Get("/v1/technicians", handlers.ListTechnicians(st, lg))
			user.Get("/v1/technicians/{id}", handlers.GetTechnician(st, lg))
			user.Get("/v1/technician-types", handlers.ListTechnicianTypes(st, lg))
			user.Get("/v1/technician-types/{id}", handlers.GetTechnicianType(st, lg))
			user.Get("/v1/products", handlers.ListProducts(st, lg))
			user.Get("/v1/products/type/{typeId}", handlers.ListProductsByType(st, lg))
			user.Get("/v1/products/{id}", handlers.GetProduct(st, lg))
			user.Post("/v1/products/label", handlers.LookupLabel(st, lg))
			user.Get("/v1/product-types", handlers.ListProductTypes(st, lg))
			user.Get("/v1/product-types/{id}", handlers.GetProductType(st, lg))
			user.Get("/v1/provinces", handlers.ListProvinces(st, lg))
			user.Get("/v1/provinces/{id}", handlers.GetProvince(st, lg))
			user.Get("/v1/problems", handlers.ListProblems(st, lg))
			user.Get("/v1/problems/{id}", handlers.GetProblem(st, lg))
			user.Get("/v1/complaints", handlers.ListComplaints(st, lg))
			user.Get("/v1/complaints/{id}", handlers.GetComplaint(st, lg))
		})
		protected.Group(func(admin chi.Router) {
			admin.Use(auth.RequireAdministratorRole())
			admin.Post("/v1/complaints", handlers.CreateComplaint(st, lg))
			admin.Put("/v1/complaints/{id}", handlers.UpdateComplaint(st, lg))
			admin.Delete("/v1/complaints/{id}", handlers.DeleteComplaint(st, lg))
		})
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return r
}
