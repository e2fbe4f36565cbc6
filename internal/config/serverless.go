package config

import (
	"sync"
)

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	IsLambda     bool
	FunctionName string
	Region       string
	MemoryMB     int
}

// Deployment modes reported by DeploymentMode
const (
	ModeServerless = "serverless"
	ModeServer     = "server"
)

// Global serverless configuration
var (
	serverlessConfig *ServerlessConfig
	serverlessOnce   sync.Once
)

// GetServerlessConfig returns the serverless configuration
func GetServerlessConfig() *ServerlessConfig {
	serverlessOnce.Do(func() {
		serverlessConfig = detectServerless()
	})
	return serverlessConfig
}

func detectServerless() *ServerlessConfig {
	functionName := GetEnv("AWS_LAMBDA_FUNCTION_NAME", "")
	return &ServerlessConfig{
		IsLambda:     functionName != "",
		FunctionName: functionName,
		Region:       GetEnv("AWS_REGION", GetEnv("AWS_DEFAULT_REGION", "")),
		MemoryMB:     GetEnvAsInt("AWS_LAMBDA_FUNCTION_MEMORY_SIZE", 0),
	}
}

// DeploymentMode returns ModeServerless inside Lambda and ModeServer otherwise
func (sc *ServerlessConfig) DeploymentMode() string {
	if sc != nil && sc.IsLambda {
		return ModeServerless
	}
	return ModeServer
}

// AdaptConfigForServerless modifies configuration for serverless deployment.
// CloudWatch ingests one JSON object per line, and nothing scrapes a
// metrics endpoint inside a function.
func AdaptConfigForServerless(config *Config, sc *ServerlessConfig) *Config {
	if sc == nil || !sc.IsLambda {
		return config
	}

	config.Log.Format = "json"
	config.Metrics.Enabled = false

	return config
}

// GetOptimizedConfig returns configuration optimized for the current deployment mode
func GetOptimizedConfig() (*Config, error) {
	config, err := Load()
	if err != nil {
		return nil, err
	}

	return AdaptConfigForServerless(config, GetServerlessConfig()), nil
}
