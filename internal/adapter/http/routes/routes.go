package routes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "master_booking/docs"
	"master_booking/internal/adapter/http/middleware"
	"master_booking/internal/config"
)

// Run wires every dependency, serves HTTP and blocks until ctx is cancelled.
// The recovery scheduler shares ctx with the server.
func Run(ctx context.Context, cfg *config.Config) error {
	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		return fmt.Errorf("build dependencies: %w", err)
	}
	defer deps.close()

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      newRouter(cfg, deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	if deps.scheduler != nil {
		go deps.scheduler.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("[app][routes] http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("[app][routes] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newRouter(cfg *config.Config, deps *dependencies) *gin.Engine {
	gin.SetMode(cfg.Gin.Mode)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoMethod(deps.gate.MethodNotAllowed())
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	addOperationalRoutes(router)
	addFunctionRoutes(router.Group(PathFunctions), deps.gate, deps.handlers, cfg.InternalAPIKey)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
}
