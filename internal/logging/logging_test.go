package logging

import (
	"testing"

	"serverless-router/internal/config"

	"github.com/sirupsen/logrus"
)

func TestApply(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		logger := logrus.New()
		if err := apply(logger, config.LogConfig{Level: "debug", Format: "json"}); err != nil {
			t.Fatalf("apply failed: %v", err)
		}
		if logger.GetLevel() != logrus.DebugLevel {
			t.Errorf("Expected debug level, got %s", logger.GetLevel())
		}
		if _, ok := logger.Formatter.(*logrus.JSONFormatter); !ok {
			t.Errorf("Expected JSON formatter, got %T", logger.Formatter)
		}
	})

	t.Run("Text", func(t *testing.T) {
		logger := logrus.New()
		if err := apply(logger, config.LogConfig{Level: "warn", Format: "text"}); err != nil {
			t.Fatalf("apply failed: %v", err)
		}
		if _, ok := logger.Formatter.(*logrus.TextFormatter); !ok {
			t.Errorf("Expected text formatter, got %T", logger.Formatter)
		}
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		if err := apply(logrus.New(), config.LogConfig{Level: "loud"}); err == nil {
			t.Error("Expected error for invalid level")
		}
	})
}

func TestForFunction(t *testing.T) {
	entry := ForFunction(&config.ServerlessConfig{IsLambda: true, FunctionName: "router", Region: "us-east-1", MemoryMB: 256}, "prod")
	if entry.Data["function_name"] != "router" || entry.Data["region"] != "us-east-1" || entry.Data["stage"] != "prod" {
		t.Errorf("Unexpected fields: %v", entry.Data)
	}
	if entry.Data["memory_mb"] != 256 {
		t.Errorf("Unexpected fields: %v", entry.Data)
	}

	entry = ForFunction(&config.ServerlessConfig{}, "dev")
	if _, ok := entry.Data["function_name"]; ok {
		t.Errorf("Expected no function fields outside Lambda, got %v", entry.Data)
	}
}
