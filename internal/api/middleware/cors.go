package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/phrazzld/retell-relay/internal/api/shared"
)

// NewCORSMiddleware allows browser requests from exactly one frontend origin.
func NewCORSMiddleware(allowedOrigin string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{allowedOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{shared.TraceIDHeader},
		MaxAge:         300,
	})
}
