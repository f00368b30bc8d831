package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/monglot/internal/bootstrap"
	"github.com/at-ishikawa/monglot/internal/config"
	"github.com/at-ishikawa/monglot/internal/database"
	"github.com/at-ishikawa/monglot/internal/history"
	"github.com/at-ishikawa/monglot/internal/logging"
	"github.com/at-ishikawa/monglot/internal/server"
	"github.com/at-ishikawa/monglot/internal/translation"
	"github.com/at-ishikawa/monglot/internal/vocabulary"
)

var (
	configFile string
	debugMode  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "monglot-server",
		Short:         "Monglot vocabulary and translation HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	if err := logging.Setup(os.Stdout, cfg.Log, debugMode); err != nil {
		return fmt.Errorf("logging.Setup() > %w", err)
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Default().Error("failed to close database", "error", err)
		}
	}()

	app := bootstrap.New()
	handler, closeClient, err := newHandler(ctx, cfg, db)
	if err != nil {
		return err
	}
	app.AddCloser("translation client", closeClient)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	app.AddShutdownHook("http server", srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Default().Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

// openDatabase opens the store, applies the schema and seeds the vocabulary.
func openDatabase(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	if err := database.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database.EnsureSchema() > %w", err)
	}

	entries, err := vocabulary.LoadSeed(cfg.Vocabulary.SeedFile)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("vocabulary.LoadSeed() > %w", err)
	}
	learned, err := vocabulary.Seed(ctx, db, entries)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("vocabulary.Seed() > %w", err)
	}
	slog.Default().Info("vocabulary seeded", "entries", len(entries), "learned", learned)
	return db, nil
}

// newHandler wires the stores and the translation gateway into the HTTP handler.
func newHandler(ctx context.Context, cfg *config.Config, db *sqlx.DB) (http.Handler, func() error, error) {
	client, closeClient, err := translation.NewClientFromConfig(ctx, cfg.Translation)
	if err != nil {
		return nil, nil, fmt.Errorf("translation.NewClientFromConfig() > %w", err)
	}
	if client == nil {
		slog.Default().Warn("no translation API key configured, /api/translate will fail")
	}

	handler, err := server.NewHandler(
		vocabulary.NewStore(vocabulary.NewDBRepository(db)),
		history.NewLog(history.NewDBRepository(db)),
		translation.NewGateway(client),
		db,
	)
	if err != nil {
		_ = closeClient()
		return nil, nil, fmt.Errorf("server.NewHandler() > %w", err)
	}

	return h2c.NewHandler(server.Wrap(handler.Routes(), cfg.Server.CORS.AllowedOrigins), &http2.Server{}), closeClient, nil
}
