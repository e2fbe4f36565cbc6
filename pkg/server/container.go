package server

import (
	"fmt"
	"net/http"

	"serverless-router/internal/config"
	"serverless-router/internal/handlers"
	"serverless-router/internal/logging"
	"serverless-router/internal/metrics"
	"serverless-router/pkg/lambda"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Container holds all application dependencies shared by the Lambda and
// local server entrypoints
type Container struct {
	Config     *config.Config
	Serverless *config.ServerlessConfig
	Logger     *logrus.Entry
	Hello      *handlers.HelloHandler

	// Metrics is nil when metrics are disabled
	Metrics  *metrics.Collector
	registry *prometheus.Registry
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, sc *config.ServerlessConfig) (*Container, error) {
	if sc == nil {
		sc = &config.ServerlessConfig{}
	}

	container := &Container{
		Config:     cfg,
		Serverless: sc,
		Logger:     logging.ForFunction(sc, cfg.Stage),
		Hello:      handlers.NewHelloHandler(cfg.Stage, sc.DeploymentMode()),
	}

	if cfg.Metrics.Enabled {
		container.registry = prometheus.NewRegistry()
		collector, err := metrics.NewCollector(container.registry)
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics collector: %w", err)
		}
		container.Metrics = collector
	}

	return container, nil
}

// RouterOptions returns the options every router of this process is built with
func (c *Container) RouterOptions() []lambda.Option {
	opts := []lambda.Option{lambda.WithLogger(c.Logger)}
	if c.Metrics != nil {
		opts = append(opts, lambda.WithObserver(c.Metrics))
	}
	return opts
}

// RegisterRoutes registers the application routes on r
func (c *Container) RegisterRoutes(r handlers.Registrar) error {
	return handlers.RegisterRoutes(r, c.Hello)
}

// MetricsHandler returns the Prometheus handler, or nil when metrics are disabled
func (c *Container) MetricsHandler() http.Handler {
	if c.registry == nil {
		return nil
	}
	return metrics.Handler(c.registry)
}
