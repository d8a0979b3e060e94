package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/cashup/internal/auth"
	"github.com/MrJamesThe3rd/cashup/internal/http/account"
	"github.com/MrJamesThe3rd/cashup/internal/http/admin"
	"github.com/MrJamesThe3rd/cashup/internal/http/audit"
	"github.com/MrJamesThe3rd/cashup/internal/http/exception"
	"github.com/MrJamesThe3rd/cashup/internal/http/guide"
	"github.com/MrJamesThe3rd/cashup/internal/http/invoice"
	"github.com/MrJamesThe3rd/cashup/internal/http/report"
	"github.com/MrJamesThe3rd/cashup/internal/http/session"
	"github.com/MrJamesThe3rd/cashup/internal/http/trip"
)

type Handlers struct {
	Session    *session.Handler
	Guides     *guide.Handler
	Accounts   *account.Handler
	Trips      *trip.Handler
	Exceptions *exception.Handler
	Invoices   *invoice.Handler
	Reports    *report.Handler
	Admin      *admin.Handler
	Audit      *audit.Handler
}

// New mounts every API route under /api/v1 behind the identity middleware.
// Only /healthz is public.
func New(tokens *auth.Verifier, allowedOrigins []string, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(tokens.Middleware)

		r.Route("/session", h.Session.Routes)
		r.Route("/guides", h.Guides.Routes)
		r.Route("/accounts", h.Accounts.Routes)
		r.Route("/trips", h.Trips.Routes)
		r.Route("/trip-guides", h.Trips.FeeRoutes)
		r.Route("/cashups", h.Trips.CashUpRoutes)
		r.Route("/exceptions", h.Exceptions.Routes)
		r.Route("/invoices", h.Invoices.Routes)
		r.Route("/reports", h.Reports.Routes)
		r.Route("/admin", h.Admin.Routes)
		r.Route("/audit", h.Audit.Routes)
	})

	return router
}
