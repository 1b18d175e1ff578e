package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/memo-api/app/api/docs"
	"github.com/ribgsilva/memo-api/app/api/handlers"
	"github.com/ribgsilva/memo-api/bridge"
	"github.com/ribgsilva/memo-api/business/v1/gateway"
	"github.com/ribgsilva/memo-api/persistence/v1/schema"
	"github.com/ribgsilva/memo-api/platform/cache"
	"github.com/ribgsilva/memo-api/platform/database"
	"github.com/ribgsilva/memo-api/platform/env"
	"github.com/ribgsilva/memo-api/platform/logger"
	"github.com/ribgsilva/memo-api/sys"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/gin-swagger/swaggerFiles"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
)

// @title Memo API
// @version 1.0
// @description Gateway owning the notebook and memo store.
// @contact.name Gabriel Ribeiro Silva
func main() {
	log, err := logger.New("Memo-API", logger.WithFile(os.Getenv("LOG_FILE_PATH")))
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
	log.Infow("startup", "operations", d.Operations())

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
	// Router configuration

	router := gin.New()
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/v1/healthcheck"},
	}), gin.Recovery(), nrgin.Middleware(nrApp))

	handlers.MapDefaults(router, res)
	handlers.MapApi(router, d, res)

	docs.SwaggerInfo.Host = cfg.Swagger.Host
	url := ginSwagger.URL(fmt.Sprintf("%s://%s/swagger/doc.json", cfg.Swagger.Protocol, cfg.Swagger.Host))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	// =======================================================================================================
	// App start and shutdown

	svr := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Http.Port),
		Handler:      router,
		ReadTimeout:  cfg.Http.ReadTimeout,
		WriteTimeout: cfg.Http.WriteTimeout,
		IdleTimeout:  cfg.Http.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Infow("startup", "status", "started http server", "port", cfg.Http.Port)
		serverErrors <- svr.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := svr.Shutdown(ctx); err != nil {
			_ = svr.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}
