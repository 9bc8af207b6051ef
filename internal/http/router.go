package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bullseye-app/bullseye/internal/http/auth"
	"github.com/bullseye-app/bullseye/internal/http/budget"
	"github.com/bullseye-app/bullseye/internal/http/category"
	"github.com/bullseye-app/bullseye/internal/http/importcsv"
	"github.com/bullseye-app/bullseye/internal/http/report"
	"github.com/bullseye-app/bullseye/internal/http/transaction"
)

type Config struct {
	AuthSecret     []byte
	AllowedOrigins []string
}

func New(
	cfg Config,
	transactionsV1 *transaction.Handler,
	categoriesV1 *category.Handler,
	budgetsV1 *budget.Handler,
	reportsV1 *report.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(cfg.AuthSecret))

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			categoriesV1.Routes(r)
		})

		r.Route("/budget", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			budgetsV1.Routes(r)
		})

		r.Route("/report", func(r chi.Router) {
			reportsV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)
	})

	return router
}
