package logging

import (
	"fmt"

	"serverless-router/internal/config"

	"github.com/sirupsen/logrus"
)

// Configure applies level and format to the standard logrus logger
func Configure(cfg config.LogConfig) error {
	return apply(logrus.StandardLogger(), cfg)
}

func apply(logger *logrus.Logger, cfg config.LogConfig) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return nil
}

// ForFunction returns a logger carrying the deployment context of this process
func ForFunction(sc *config.ServerlessConfig, stage string) *logrus.Entry {
	fields := logrus.Fields{
		"stage": stage,
	}
	if sc != nil && sc.IsLambda {
		fields["function_name"] = sc.FunctionName
		fields["region"] = sc.Region
		if sc.MemoryMB > 0 {
			fields["memory_mb"] = sc.MemoryMB
		}
	}
	return logrus.WithFields(fields)
}
