package handlers

import (
	"fmt"

	"serverless-router/pkg/lambda"
)

// Registrar is implemented by lambda.Router for any event type
type Registrar interface {
	SetRoute(path, method string, handler lambda.HandlerFunc) error
}

// RegisterRoutes registers all application routes
func RegisterRoutes(r Registrar, hello *HelloHandler) error {
	routes := []struct {
		path    string
		method  string
		handler lambda.HandlerFunc
	}{
		{"/", "GET", hello.HandleHello},
		{"/echo", lambda.AnyMethod, hello.HandleEcho},
		{"/health", "GET", hello.HandleHealth},
	}

	for _, route := range routes {
		if err := r.SetRoute(route.path, route.method, route.handler); err != nil {
			return fmt.Errorf("failed to register %s %s: %w", route.method, route.path, err)
		}
	}

	return nil
}
