package main

import (
	"context"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes/app/web/client"
	"github.com/ribgsilva/notes/app/web/pages"
	"github.com/ribgsilva/notes/platform/logger"
	"github.com/ribgsilva/notes/sys"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

func main() {
	log, err := logger.New("Notes-Web")
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
	// Router configuration

	tmpl, err := pages.Templates()
	if err != nil {
		return fmt.Errorf("parsing templates: %w", err)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Http.TrustedProxies); err != nil {
		return fmt.Errorf("setting trusted proxies: %w", err)
	}
	router.Use(gin.Logger(), gin.Recovery())
	router.SetHTMLTemplate(tmpl)

	pages.Map(router, pages.Handlers{
		Log: log,
		API: client.New(cfg.Web.ApiURL, cfg.Web.ApiTimeout),
	})

	// =======================================================================================================
	// App start and shutdown

	svr := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Web.Port),
		Handler:      router,
		ReadTimeout:  cfg.Http.ReadTimeout,
		WriteTimeout: cfg.Http.WriteTimeout,
		IdleTimeout:  cfg.Http.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Infow("startup", "status", "started web server", "port", cfg.Web.Port, "api", cfg.Web.ApiURL)
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
