package routes

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/briitney/daybook-backend/internal/handlers"
)

// Setup registers the API routes and the static frontend.
func Setup(r *chi.Mux, journal *handlers.Journal, staticDir string) {
	// Journal entry routes
	r.Post("/api/journal/entries", journal.Create)
	r.Get("/api/journal/entries", journal.List)
	r.Put("/api/journal/entries/{entryID}", journal.Update)

	// Auth stub
	r.Post("/api/auth/verify", handlers.VerifyToken)

	// Health check
	r.Get("/health", handlers.Health)

	// Static frontend: login page at /, journal page at /journal, assets
	// under /static/
	r.Get("/", servePage(staticDir, "login.html"))
	r.Get("/journal", servePage(staticDir, "index.html"))

	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir)))
	r.Get("/static/*", fileServer.ServeHTTP)
}

func servePage(staticDir, page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(staticDir, page))
	}
}
