package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"serverless-router/internal/adapters/ginhttp"
	"serverless-router/internal/config"
	"serverless-router/internal/logging"
	"serverless-router/pkg/server"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logging.Configure(cfg.Log); err != nil {
		logrus.Fatalf("Failed to configure logging: %v", err)
	}

	// Initialize dependencies
	container, err := server.NewContainer(cfg, config.GetServerlessConfig())
	if err != nil {
		logrus.Fatalf("Failed to initialize container: %v", err)
	}

	router := ginhttp.NewRouter(container.RouterOptions()...)
	if err := container.RegisterRoutes(router); err != nil {
		logrus.Fatalf("Failed to register routes: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: ginhttp.NewEngine(cfg, router, container.MetricsHandler()),
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	container.Logger.WithFields(logrus.Fields{
		"port":    cfg.Port,
		"routes":  router.Routes().Len(),
		"swagger": "/swagger/index.html",
	}).Info("Server started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	container.Logger.Info("Server exited")
}
