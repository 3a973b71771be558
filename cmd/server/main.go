package main

import (
	"context"
	"fmt"
	"github.com/QuangTung97/crowdfund/config"
	"github.com/QuangTung97/crowdfund/pkg/memtable"
	"github.com/QuangTung97/crowdfund/pkg/migration"
	"github.com/QuangTung97/crowdfund/pkg/otellib"
	"github.com/QuangTung97/crowdfund/pkg/rabbitmq"
	"github.com/QuangTung97/crowdfund/repository"
	"github.com/QuangTung97/crowdfund/service/api"
	"github.com/QuangTung97/crowdfund/service/monitor"
	"github.com/QuangTung97/crowdfund/service/notify"
	"github.com/QuangTung97/crowdfund/service/registry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/spf13/cobra"
)

const serviceName = "crowdfund-api"

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()

	tracerProvider, shutdown := otellib.InitOtel(serviceName, conf.Jaeger.Environment, conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	if err := migration.MigrateUp(conf.MySQL.DSN()); err != nil {
		logger.Fatal("migrate database", zap.Error(err))
	}

	db := conf.MySQL.MustConnect(logger)
	defer func() { _ = db.Close() }()

	journal := repository.NewJournal(
		repository.NewProvider(db),
		repository.NewCampaign(),
		repository.NewContributor(),
		repository.NewBadge(),
		repository.NewEvent(),
	)

	publisher := rabbitmq.Connect(conf.RabbitMQ.Enabled, conf.RabbitMQ.URL, conf.RabbitMQ.DialTimeout, logger)
	defer publisher.Close()

	payoutPublisher := rabbitmq.Required(publisher)
	if payoutPublisher != publisher {
		logger.Warn("rabbitmq: no broker, withdrawals and refunds will be rejected")
	}

	reg := registry.New(
		registry.WithJournal(journal),
		registry.WithNotifier(notify.NewEventPublisher(publisher, conf.RabbitMQ.EventExchange)),
		registry.WithTransferer(notify.NewPayoutPublisher(payoutPublisher, conf.RabbitMQ.PayoutExchange)),
	)

	ctx := otellib.ToContext(context.Background(), logger)
	if err := reg.Restore(ctx, journal); err != nil {
		logger.Fatal("restore registry", zap.Error(err))
	}

	mon := monitor.New(reg, prometheus.DefaultRegisterer, logger, conf.Monitor.Interval)
	mon.Sweep(ctx)
	if err := mon.Start(); err != nil {
		logger.Fatal("start monitor", zap.Error(err))
	}
	defer mon.Stop()

	svc := registry.NewIServiceWrapper(registry.NewService(reg), tracerProvider.Tracer(serviceName), "registry.")

	handler := api.NewHandler(svc, reg, memtable.New(conf.Cache.IdempotencySize),
		api.WithLogger(logger),
		api.WithTracerProvider(tracerProvider),
		api.WithPrometheus(prometheus.DefaultRegisterer, prometheus.DefaultGatherer),
		api.WithIdempotencyTTL(conf.Cache.IdempotencyTTL),
	)

	startHTTPServer(conf, logger, handler)
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func startHTTPServer(conf config.Config, logger *zap.Logger, handler http.Handler) {
	logger.Info("HTTP server listening", zap.String("addr", conf.Server.HTTP.ListenString()))

	httpServer := &http.Server{
		Addr:    conf.Server.HTTP.ListenString(),
		Handler: handler,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen HTTP", zap.Error(err))
		}
		logger.Info("Shutdown HTTP server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()

	err := httpServer.Shutdown(ctx)
	if err != nil {
		logger.Error("shutdown HTTP server", zap.Error(err))
	}

	<-done
}
