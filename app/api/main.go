package main

import (
	"context"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/notes/app/api/docs"
	"github.com/ribgsilva/notes/app/api/handlers"
	"github.com/ribgsilva/notes/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/notes/app/api/handlers/v1/notes"
	"github.com/ribgsilva/notes/business/v1/note"
	"github.com/ribgsilva/notes/persistence/v1/database"
	pnote "github.com/ribgsilva/notes/persistence/v1/note"
	"github.com/ribgsilva/notes/platform/logger"
	"github.com/ribgsilva/notes/platform/ratelimit"
	"github.com/ribgsilva/notes/sys"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/gin-swagger/swaggerFiles"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

// @title Notes API
// @version 1.0
// @description Service to create, read, update and delete notes.
// @contact.name Gabriel Ribeiro Silva
func main() {
	log, err := logger.New("Notes-API")
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
	if err := sys.Bootstrap(context.Background(), log); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg := sys.Load(log)

	// =======================================================================================================
	// Setup static resources

	// database
	conn, err := database.Open(context.Background(), cfg.Database.ConnectionURL, cfg.Database.Name, cfg.Database.PingTimeout)
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close(context.Background())
	}()
	log.Infow("startup", "database", conn.Kind)

	// redis, optional
	// doing in a func, so I can use defer to cancel the contexts
	var rdb *redis.Client
	if cfg.Cache.ConnectionURL != "" {
		if err := func() error {
			rdb = redis.NewClient(&redis.Options{
				Addr:     cfg.Cache.ConnectionURL,
				Username: cfg.Cache.User,
				Password: cfg.Cache.Pass,
			})
			rdsCtx, rdsCancel := context.WithTimeout(context.Background(), cfg.Cache.PingTimeout)
			defer rdsCancel()
			if err := rdb.Ping(rdsCtx).Err(); err != nil {
				return fmt.Errorf("could not connect to redis: %w", err)
			}
			return nil
		}(); err != nil {
			return err
		}
		defer func() {
			_ = rdb.Close()
		}()
	}

	store := conn.Notes(cfg.Database.OperationTimeout)
	if rdb != nil {
		store = pnote.NewCached(log, store, rdb, cfg.Cache.CacheTTL, cfg.Cache.OperationTimeout)
	}

	var limiter ratelimit.Limiter
	switch {
	case !cfg.RateLimit.Enabled:
		log.Infow("startup", "rateLimit", "disabled")
	case rdb != nil:
		limiter = ratelimit.NewRedis(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window, cfg.Cache.OperationTimeout)
	default:
		limiter = ratelimit.NewMemory(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

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

	hc := handlers.Config{
		Notes: notes.Handlers{
			Log:   log,
			Notes: note.NewCore(store),
		},
		Health: healthcheck.Handlers{
			Log:     log,
			Ping:    conn.Ping,
			Timeout: cfg.Database.PingTimeout,
		},
		Limiter:        limiter,
		AllowedOrigin:  cfg.Cors.AllowedOrigin,
		TrustedProxies: cfg.Http.TrustedProxies,
	}

	router := gin.New()
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/v1/healthcheck"},
	}), gin.Recovery(), nrgin.Middleware(nrApp))
	if err := handlers.Use(router, hc); err != nil {
		return err
	}

	handlers.MapDefaults(router, hc)
	handlers.MapApi(router, hc)

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
