package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/verity-api/infrastructure/database/postgres"
	"github.com/vfg2006/verity-api/infrastructure/integrator/llm"
	"github.com/vfg2006/verity-api/infrastructure/integrator/whatsapp"
	"github.com/vfg2006/verity-api/infrastructure/integrator/whatsapp/whatsappclient"
	"github.com/vfg2006/verity-api/infrastructure/migration"
	"github.com/vfg2006/verity-api/infrastructure/repository"
	"github.com/vfg2006/verity-api/internal/api"
	"github.com/vfg2006/verity-api/internal/api/handler"
	"github.com/vfg2006/verity-api/internal/config"
	"github.com/vfg2006/verity-api/internal/scheduler"
	"github.com/vfg2006/verity-api/internal/usecases/aggregating"
	"github.com/vfg2006/verity-api/internal/usecases/authenticating"
	"github.com/vfg2006/verity-api/internal/usecases/extracting"
	"github.com/vfg2006/verity-api/internal/usecases/insighting"
	"github.com/vfg2006/verity-api/internal/usecases/reminding"
	"github.com/vfg2006/verity-api/internal/usecases/resolving"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.MigrateOnStart {
		if err := migration.Up(pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Failed to apply database migrations")
		}
	}

	businessRepo := repository.NewBusinessRepository(pgConn)
	contactRepo := repository.NewContactRepository(pgConn)
	invoiceRepo := repository.NewInvoiceRepository(pgConn)
	transactionRepo := repository.NewTransactionRepository(pgConn)
	rawEventRepo := repository.NewRawEventRepository(pgConn)

	gateway := newGateway(ctx, cfg.Gateway)

	catalog, err := extracting.DefaultCatalog()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load prompt catalog")
	}
	extractor := extracting.NewService(gateway, catalog)

	authenticator := authenticating.NewService(businessRepo, cfg)
	resolver := resolving.NewService(extractor, pgConn, businessRepo, contactRepo, invoiceRepo, transactionRepo, rawEventRepo)
	aggregator := aggregating.NewService(businessRepo, transactionRepo, invoiceRepo)
	insighter := insighting.NewService(aggregator, extractor, contactRepo, invoiceRepo, transactionRepo)
	reminder := reminding.NewService(extractor, newSender(cfg.WhatsApp), businessRepo)

	overdueSweep := scheduler.NewOverdueSweepService(invoiceRepo, cfg)
	if err := overdueSweep.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start the overdue sweep scheduler")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Resolver:      resolver,
		Extractor:     extractor,
		Insighter:     insighter,
		Reminder:      reminder,
		CronJobs: handler.CronJobServices{
			OverdueSweep: overdueSweep,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}

// newGateway builds the provider chain. With no credentials every extraction degrades to
// its default, which keeps the API usable offline.
func newGateway(ctx context.Context, cfg config.Gateway) *llm.Gateway {
	clients, err := llm.NewClients(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to build extraction providers")
	}

	gateway := llm.NewGateway(cfg, clients)
	if len(clients) == 0 {
		logrus.Warn("No extraction provider configured, running in offline mode")
	} else {
		logrus.WithField("providers", gateway.Providers()).Info("Extraction gateway ready")
	}
	return gateway
}

func newSender(cfg config.WhatsApp) whatsapp.Sender {
	if !cfg.Configured() {
		logrus.Info("WhatsApp credentials absent, reminders will be mocked")
		return whatsapp.New(nil)
	}
	return whatsapp.New(whatsappclient.NewClient(cfg))
}
