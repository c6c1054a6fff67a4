package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/diediegodie/inkledger/internal/http/backup"
	"github.com/diediegodie/inkledger/internal/http/extrato"
)

func New(
	allowedOrigins []string,
	extratoV1 *extrato.Handler,
	backupV1 *backup.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/extratos", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			extratoV1.Routes(r)
		})

		r.Route("/backups", backupV1.Routes)
	})

	return router
}
