package rest

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	core_port "listings-service/internal/core/port"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string, webDir string, listingHandler *ListingHandler, baseLogger core_port.LoggerPort) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	// API JSON de solo lectura; CORS abierto para consumidores externos.
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
			MaxAge:         300,
		}))

		r.Get("/properties", listingHandler.SearchListings)
		r.Get("/properties/{listingID}", listingHandler.GetListingByID)
		r.Get("/properties/{listingID}/similar", listingHandler.GetSimilarListings)
		r.Get("/health", listingHandler.Health)
	})

	// Página de detalle: el script del navegador saca el id del path.
	r.Get("/p/{listingID}", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(webDir, "property.html"))
	})

	// El resto del frontend estático (index, scripts, estilos).
	r.Handle("/*", http.FileServer(http.Dir(webDir)))

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

// Handler expone el router, útil para los tests con httptest.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
