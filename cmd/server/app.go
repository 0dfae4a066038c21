package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/retell-relay/internal/agents"
	"github.com/phrazzld/retell-relay/internal/config"
	"github.com/phrazzld/retell-relay/internal/platform/retell"
)

// application holds all the shared application dependencies. Every field is
// created once at startup and is read-only afterwards.
type application struct {
	config *config.Config
	logger *slog.Logger

	callCreator  *retell.Client
	agentCatalog *agents.Catalog
}

// initializeApp loads configuration, sets up logging and builds the application.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return nil, err
	}
	logAppConfig(logger, cfg)

	return newApplication(ctx, cfg, logger, nil)
}

// newApplication creates a new application instance with all dependencies initialized.
// httpClient is used for provider requests; nil selects the default client.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	httpClient retell.HTTPDoer,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.callCreator, err = retell.NewClient(logger.With("component", "retell_client"), cfg.Retell, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Retell client: %w", err)
	}
	logger.InfoContext(ctx, "Retell client initialized", "base_url", cfg.Retell.BaseURL)

	app.agentCatalog, err = agents.Load(cfg.Agents.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent catalog: %w", err)
	}
	logger.InfoContext(ctx, "Agent catalog loaded",
		"agents", len(app.agentCatalog.List()),
		"custom_catalog", cfg.Agents.CatalogPath != "")

	logger.InfoContext(ctx, "Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
