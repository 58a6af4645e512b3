package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/deppfellow/recipebox/internal/database"
	"github.com/deppfellow/recipebox/internal/handler"
	"github.com/deppfellow/recipebox/internal/middleware"
	"github.com/deppfellow/recipebox/internal/repository"
	"github.com/deppfellow/recipebox/internal/router"
	"github.com/deppfellow/recipebox/internal/server"
	"github.com/deppfellow/recipebox/internal/service"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime()
			if err != nil {
				return err
			}
			defer rt.loggerService.Shutdown()

			return serve(cmd.Context(), rt, skipMigrations)
		},
	}

	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations on startup")

	return cmd
}

func serve(ctx context.Context, rt *bootstrap, skipMigrations bool) error {
	log := &rt.log

	// Local databases are migrated by hand with "recipebox migrate".
	if !rt.cfg.IsLocal() && !skipMigrations {
		if err := database.Migrate(ctx, log, rt.cfg); err != nil {
			return err
		}
	}

	srv, err := server.New(ctx, rt.cfg, log, rt.loggerService)
	if err != nil {
		return err
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		_ = srv.Shutdown(ctx)
		return err
	}

	handlers := handler.NewHandlers(srv, services)
	srv.SetupHTTPServer(router.NewRouter(srv, handlers, middleware.NewMiddlewares(srv)))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to release resources")
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}
