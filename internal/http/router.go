package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/openvol/fundledger/internal/http/account"
	"github.com/openvol/fundledger/internal/http/donation"
	"github.com/openvol/fundledger/internal/http/expense"
	"github.com/openvol/fundledger/internal/http/middleware"
	"github.com/openvol/fundledger/internal/http/transfer"
)

type Options struct {
	Logger    zerolog.Logger
	JWTSecret string
	DB        *sql.DB
}

func New(
	donationsV1 *donation.Handler,
	expensesV1 *expense.Handler,
	transfersV1 *transfer.Handler,
	accountsV1 *account.Handler,
	opts Options,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(opts.Logger))
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := opts.DB.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/donations", func(r chi.Router) {
			r.Use(chimiddleware.AllowContentType("application/json"))
			donationsV1.Routes(r)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(opts.JWTSecret))
				donationsV1.ReviewRoutes(r)
			})
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Use(chimiddleware.AllowContentType("application/json"))
			r.Use(middleware.Auth(opts.JWTSecret))
			expensesV1.Routes(r)
		})

		r.Route("/transfers", func(r chi.Router) {
			r.Use(chimiddleware.AllowContentType("application/json"))
			r.Use(middleware.Auth(opts.JWTSecret))
			transfersV1.Routes(r)
		})

		r.Route("/accounts", accountsV1.Routes)
	})

	return router
}
