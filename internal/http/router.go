package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/rentroll/internal/http/billing"
	"github.com/MrJamesThe3rd/rentroll/internal/http/export"
	"github.com/MrJamesThe3rd/rentroll/internal/http/httputil"
	"github.com/MrJamesThe3rd/rentroll/internal/http/ownership"
)

func New(
	allowedOrigins []string,
	billingV1 *billing.Handler,
	ownershipV1 *ownership.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/tenants", billingV1.TenantRoutes)
		r.Route("/leases", billingV1.LeaseRoutes)
		r.Route("/payments", billingV1.PaymentRoutes)

		r.Route("/owners", ownershipV1.OwnerRoutes)
		r.Route("/shops", ownershipV1.ShopRoutes)
		r.Route("/expenses", ownershipV1.ExpenseRoutes)

		r.Route("/export", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			exportV1.Routes(r)
		})
	})

	return router
}
