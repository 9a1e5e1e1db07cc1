package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Marquin099/Cinema-Dublado/internal/middleware"
)

func main() {
	initializeLogger()
	initializeConfig()
	initializeStore()
	initializeDatabase()
	initializeServices()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(appLogger))
	r.Use(middleware.Gzip())
	r.Use(middleware.CORS())

	handler.RegisterRoutes(r)

	metaCache.StartCleanup(ctx)

	srv := &http.Server{
		Addr:    ":" + appConfig.Port,
		Handler: r,
	}

	go func() {
		appLogger.Infof("[App] starting HTTP server on port %s", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Infof("[App] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("[App] shutdown error: %v", err)
	}

	if db != nil {
		if err := db.Close(); err != nil {
			appLogger.Errorf("[App] failed to close database: %v", err)
		}
	}
}
