package main

import (
	"serverless-router/internal/adapters/apigateway"
	"serverless-router/internal/config"
	"serverless-router/internal/logging"
	"serverless-router/pkg/server"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

// handler is built once per execution environment and reused across invocations
var handler interface{}

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logging.Configure(cfg.Log); err != nil {
		panic("Failed to configure logging: " + err.Error())
	}

	container, err := server.NewContainer(cfg, config.GetServerlessConfig())
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	switch cfg.Lambda.PayloadVersion {
	case "2.0":
		router := apigateway.NewHTTPRouter(container.RouterOptions()...)
		if err := container.RegisterRoutes(router); err != nil {
			panic("Failed to register routes: " + err.Error())
		}
		handler = apigateway.HTTPHandler(router)
	default:
		router := apigateway.NewProxyRouter(container.RouterOptions()...)
		if err := container.RegisterRoutes(router); err != nil {
			panic("Failed to register routes: " + err.Error())
		}
		handler = apigateway.ProxyHandler(router)
	}

	container.Logger.WithField("payload_version", cfg.Lambda.PayloadVersion).Info("Router initialized")
}

func main() {
	awslambda.Start(handler)
}
