package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/retell-relay/internal/api"
	apiMiddleware "github.com/phrazzld/retell-relay/internal/api/middleware"
	"github.com/phrazzld/retell-relay/internal/metrics"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(metrics.Middleware)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	callHandler := api.NewCallHandler(app.callCreator, app.logger)
	agentHandler := api.NewAgentHandler(app.agentCatalog)

	r.Route("/api", func(r chi.Router) {
		// Browser origin policy applies to the API only.
		r.Use(apiMiddleware.NewCORSMiddleware(app.config.CORS.AllowedOrigin))

		r.Post("/retell/call", callHandler.CreateCall)

		r.Get("/agents", agentHandler.ListAgents)
		r.Get("/agents/{id}", agentHandler.GetAgent)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}
