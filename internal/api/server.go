package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/verity-api/internal/api/handler"
	"github.com/vfg2006/verity-api/internal/api/handler/router"
	"github.com/vfg2006/verity-api/internal/config"
	"github.com/vfg2006/verity-api/internal/usecases/authenticating"
	"github.com/vfg2006/verity-api/internal/usecases/extracting"
	"github.com/vfg2006/verity-api/internal/usecases/insighting"
	"github.com/vfg2006/verity-api/internal/usecases/reminding"
	"github.com/vfg2006/verity-api/internal/usecases/resolving"
	"github.com/vfg2006/verity-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services groups the use cases exposed over HTTP.
type Services struct {
	Authenticator authenticating.Authenticator
	Resolver      resolving.Resolver
	Extractor     extracting.Extractor
	Insighter     insighting.Insighter
	Reminder      reminding.Reminder
	CronJobs      handler.CronJobServices
}

func New(config *config.Config, services Services) (*Server, error) {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// NewHandler builds the routed handler wrapped in the global middleware chain.
func NewHandler(config *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Business(services.Authenticator)...),
		router.WithRoutes(handler.Ingest(services.Resolver, services.Extractor)...),
		router.WithRoutes(handler.Insights(services.Insighter)...),
		router.WithRoutes(handler.Actions(services.Reminder)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Interrupt signal received")
	case <-ctx.Done():
		logrus.Info("Application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Shutting down server")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error during server shutdown")
		return err
	}

	logrus.Info("Server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
