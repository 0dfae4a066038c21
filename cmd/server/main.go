// Package main implements the entry point for the Retell relay server,
// which accepts call requests from the frontend and forwards them to
// Retell AI's voice-call API.
package main

import (
	"context"
	"log"
	"os"
)

// main is the entry point for the retell-relay server.
// Configuration errors (including a missing RETELL_API_KEY) abort the process
// before the HTTP port is bound.
func main() {
	ctx := context.Background()

	app, err := initializeApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		app.logger.Error("server terminated with error", "error", err)
		os.Exit(1)
	}
}
