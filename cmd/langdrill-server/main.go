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

	"github.com/at-ishikawa/langdrill/internal/auth"
	"github.com/at-ishikawa/langdrill/internal/bootstrap"
	"github.com/at-ishikawa/langdrill/internal/config"
	"github.com/at-ishikawa/langdrill/internal/database"
	"github.com/at-ishikawa/langdrill/internal/practice"
	"github.com/at-ishikawa/langdrill/internal/questiontype"
	"github.com/at-ishikawa/langdrill/internal/server"
	"github.com/at-ishikawa/langdrill/internal/word"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %+v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configFile string
		debugMode  bool
	)
	command := &cobra.Command{
		Use:           "langdrill-server",
		Short:         "Serve the langdrill RPC API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return run(cmd.Context(), configFile)
		},
	}
	command.Flags().StringVar(&configFile, "config", os.Getenv("LANGDRILL_CONFIG"), "config file path")
	command.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")
	return command
}

func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
	})))
}

func run(ctx context.Context, configFile string) error {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("loader.Load() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	if err := database.Migrate(db); err != nil {
		_ = db.Close()
		return fmt.Errorf("database.Migrate() > %w", err)
	}

	handler, err := newHandler(cfg, db)
	if err != nil {
		_ = db.Close()
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	app := bootstrap.New()
	app.AddShutdownHook(func(context.Context) error {
		return db.Close()
	})
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Info("starting server", "addr", srv.Addr, "database", cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe() > %w", err)
		}
		return nil
	})
}

// newHandler wires the services over db into the RPC handler.
func newHandler(cfg *config.Config, db *sqlx.DB) (http.Handler, error) {
	words, err := word.NewService(word.NewDBRepository(db))
	if err != nil {
		return nil, fmt.Errorf("word.NewService() > %w", err)
	}
	questionTypes, err := questiontype.NewService(questiontype.NewDBRepository(db))
	if err != nil {
		return nil, fmt.Errorf("questiontype.NewService() > %w", err)
	}
	practiceService := practice.NewService(practice.NewDBRepository(db), questionTypes, words, cfg.Practice.Lookup)

	mux := server.New(words, questionTypes, practiceService, cfg.Practice.DefaultLanguage).
		Handler(auth.NewTokenResolver(cfg.Server.Auth.Tokens))
	return server.CORS(cfg.Server.CORS.AllowedOrigins, h2c.NewHandler(mux, &http2.Server{})), nil
}
