package handler

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRouter creates the main Chi router for the application.
// It takes the service and a logger as dependencies to inject into the handlers.
func SetupRouter(s PokedexService, db *sql.DB, logger *log.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Standard Middleware ---
	// Logger: logs request details (method, path, latency, status).
	// Recoverer: recovers from panics and returns a 500 instead of crashing.
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	pokedexHandler := NewPokedexHandler(s, logger)
	apiHandler := NewAPIHandler(s, logger)
	healthHandler := NewHealthHandler(db, logger)

	// --- HTML pages ---
	// The {id:[0-9]+} pattern makes the router answer 404 for any
	// non-integer path segment before a handler runs.
	r.Get("/", pokedexHandler.ListPage)
	r.Get("/pokemon/{id:[0-9]+}", pokedexHandler.DetailPage)

	// Embedded stylesheet; request paths match the embedded paths directly.
	r.Handle("/static/*", http.FileServer(http.FS(staticFS)))

	r.Get("/healthz", healthHandler.Check)

	// --- JSON API ---
	// CORS only applies here: the HTML pages are same-origin, but the JSON
	// endpoints are meant to be callable from other frontends.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Get("/pokemon", apiHandler.List)
		r.Get("/pokemon/{id:[0-9]+}", apiHandler.Detail)
	})

	return r
}
