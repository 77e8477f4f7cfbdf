package rest

import (
	"log/slog"
	"net/http"

	"github.com/mfigueiredo/cursos-backend/internal/config"
	"github.com/mfigueiredo/cursos-backend/internal/transport/middleware"
)

// Router wires the catalog resources, health probes, and the middleware
// chain into a single http.Handler.
func Router(
	logger *slog.Logger,
	cfg config.CORSConfig,
	areas *AreaHandler,
	cursos *CursoHandler,
	health *HealthHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /api/areas", areas.Create)
	mux.HandleFunc("GET /api/areas", areas.List)
	mux.HandleFunc("GET /api/areas/{id}", areas.Get)
	mux.HandleFunc("PUT /api/areas/{id}", areas.Update)
	mux.HandleFunc("PATCH /api/areas/{id}", areas.PartialUpdate)
	mux.HandleFunc("DELETE /api/areas/{id}", areas.Delete)
	mux.HandleFunc("GET /api/areas/{id}/cursos", cursos.ListByArea)

	mux.HandleFunc("POST /api/cursos", cursos.Create)
	mux.HandleFunc("GET /api/cursos", cursos.List)
	mux.HandleFunc("GET /api/cursos/{id}", cursos.Get)
	mux.HandleFunc("PUT /api/cursos/{id}", cursos.Update)
	mux.HandleFunc("PATCH /api/cursos/{id}", cursos.PartialUpdate)
	mux.HandleFunc("DELETE /api/cursos/{id}", cursos.Delete)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg),
	)

	return chain(mux)
}
