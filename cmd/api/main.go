// Command api runs the teachers HTTP service: it loads configuration,
// wires the application container, migrates the database schema, and
// serves until interrupted.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edukit/teachers-api/internal/config"
	"github.com/edukit/teachers-api/internal/database"
	"github.com/edukit/teachers-api/internal/handler"
	"github.com/edukit/teachers-api/internal/logger"
	"github.com/edukit/teachers-api/internal/middleware"
	"github.com/edukit/teachers-api/internal/repository"
	"github.com/edukit/teachers-api/internal/router"
	"github.com/edukit/teachers-api/internal/server"
	"github.com/edukit/teachers-api/internal/service"
	"github.com/rs/zerolog"
)

// shutdownTimeout is how long inflight requests get to finish after a
// termination signal.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		// config.New exits on invalid config; this covers future error paths.
		os.Exit(1)
	}

	loggerService, err := logger.NewLoggerService(cfg)
	if err != nil {
		bootstrap := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		bootstrap.Fatal().Err(err).Msg("failed to initialize logger service")
	}

	log := logger.New(cfg, loggerService)

	ctx := context.Background()
	if err := database.Migrate(ctx, &log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.New(srv, handlers, middlewares)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
