package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/memo-api/app/api/handlers"
	"github.com/ribgsilva/memo-api/app/messsaging/consumers/v1/calls"
	"github.com/ribgsilva/memo-api/bridge"
	"github.com/ribgsilva/memo-api/business/v1/gateway"
	"github.com/ribgsilva/memo-api/persistence/v1/schema"
	"github.com/ribgsilva/memo-api/platform/cache"
	"github.com/ribgsilva/memo-api/platform/database"
	"github.com/ribgsilva/memo-api/platform/env"
	"github.com/ribgsilva/memo-api/platform/logger"
	"github.com/ribgsilva/memo-api/sys"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"gocloud.dev/pubsub/awssnssqs"
)

func main() {

	log, err := logger.New("Memo-Messaging", logger.WithFile(os.Getenv("LOG_FILE_PATH")))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer func(log *zap.SugaredLogger) {
		_ = log.Sync()
	}(log)

	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =======================================================================================================
	// Setup max procs
	if _, err := maxprocs.Set(); err != nil {
		return fmt.Errorf("maxprocs: %w", err)
	}
	log.Infow("startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// =======================================================================================================
	// Setup configs
	env.Load(log)
	res := &sys.Resources{
		Configs: sys.LoadConfigs(log),
		Log:     log,
	}
	res.Configs.Messaging.TopicName = env.Must(log, "MESSAGING_TOPIC_NAME")
	res.Configs.Messaging.MaxWorkers = env.IntDefault(log, "MESSAGING_MAX_WORKERS", "1")
	res.Configs.Messaging.WaitTime = env.DurationDefault(log, "MESSAGING_WAIT_TIME", "10s")
	res.Configs.Messaging.ShutdownTimeout = env.DurationDefault(log, "MESSAGING_SHUTDOWN_TIMEOUT", "10s")
	cfg := res.Configs

	// =======================================================================================================
	// Setup static resources

	db, err := database.Open(context.Background(), database.Config{
		Driver:        cfg.Database.Driver,
		ConnectionURL: cfg.Database.ConnectionURL,
		PingTimeout:   cfg.Database.PingTimeout,
	})
	if err != nil {
		return err
	}
	defer database.Close(log, db)
	res.Database = db

	if cfg.Cache.Enabled {
		rdb, err := cache.Open(context.Background(), cache.Config{
			ConnectionURL: cfg.Cache.ConnectionURL,
			User:          cfg.Cache.User,
			Pass:          cfg.Cache.Pass,
			PingTimeout:   cfg.Cache.PingTimeout,
		})
		if err != nil {
			return err
		}
		defer cache.Close(log, rdb)
		res.Cache = rdb
	}

	if err := schema.Create(context.Background(), res); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	d := bridge.NewDispatcher(log)
	gateway.Register(d, res)

	// =======================================================================================================
	// NR

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.NewRelic.AppName),
		newrelic.ConfigLicense(cfg.NewRelic.Licence),
		newrelic.ConfigEnabled(cfg.NewRelic.Enabled),
	)
	if err != nil {
		return err
	}
	if cfg.NewRelic.Enabled {
		if err := nrApp.WaitForConnection(cfg.NewRelic.ConnectionTimeout); err != nil {
			return err
		}
	}
	defer nrApp.Shutdown(cfg.NewRelic.ShutdownTimeout)

	// =======================================================================================================
	// Messaging configuration

	awsCfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		return err
	}

	sqsCli := sqs.NewFromConfig(awsCfg)

	subscription := awssnssqs.OpenSubscriptionV2(
		context.Background(),
		sqsCli,
		cfg.Messaging.TopicName,
		&awssnssqs.SubscriptionOptions{
			Raw:      true,
			WaitTime: cfg.Messaging.WaitTime,
		})

	defer func() {
		stdCtx, stdCancel := context.WithTimeout(context.Background(), cfg.Messaging.ShutdownTimeout)
		defer stdCancel()

		if err := subscription.Shutdown(stdCtx); err != nil {
			log.Errorf("could not stop subscription gracefully: %s", err)
		}
	}()

	// =======================================================================================================
	// Router configuration

	router := gin.New()
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/v1/healthcheck"},
	}), gin.Recovery(), nrgin.Middleware(nrApp))

	handlers.MapDefaults(router, res)

	// =======================================================================================================
	// App start and shutdown

	svr := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Http.Port),
		Handler: router,
	}

	go func() {
		log.Info("started healthcheck http server")
		if err := svr.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("error in server http server: %s", err)
		}
	}()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Http.ShutdownTimeout)
		defer cancel()
		if err := svr.Shutdown(ctx); err != nil {
			_ = svr.Close()
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	withCancel, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	go func() {
		sig := <-shutdown
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)
		cancelFunc()
	}()

	if err := calls.Consume(withCancel, subscription, cfg.Messaging.MaxWorkers, d, log); err != nil {
		return fmt.Errorf("listener error: %w", err)
	}

	return nil
}
