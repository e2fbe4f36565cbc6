package apigateway

import (
	"context"

	"serverless-router/pkg/lambda"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

// ProxyRouter routes API Gateway REST API (proxy integration) events
type ProxyRouter = lambda.Router[events.APIGatewayProxyRequest, events.APIGatewayProxyResponse]

// NewProxyRouter creates a router for REST API proxy events
func NewProxyRouter(opts ...lambda.Option) *ProxyRouter {
	return lambda.NewRouter(ToRequest, FromResponse, opts...)
}

// ProxyHandler adapts the router to the signature expected by lambda.Start
func ProxyHandler(r *ProxyRouter) func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return r.Handle(ctx, event), nil
	}
}

// ToRequest converts a REST API proxy event to a normalized request
func ToRequest(event events.APIGatewayProxyRequest) *lambda.Request {
	return &lambda.Request{
		Path:            event.Path,
		Method:          event.HTTPMethod,
		Headers:         firstOrLast(event.Headers, event.MultiValueHeaders),
		PathParams:      copyMap(event.PathParameters),
		QueryParams:     firstOrLast(event.QueryStringParameters, event.MultiValueQueryStringParameters),
		Body:            event.Body,
		IsBase64Encoded: event.IsBase64Encoded,
		SourceIP:        event.RequestContext.Identity.SourceIP,
		RequestID:       requestID(event.RequestContext.RequestID),
	}
}

// FromResponse converts a normalized response to a REST API proxy response
func FromResponse(resp lambda.Response) events.APIGatewayProxyResponse {
	resp = resp.WithDefaults()
	return events.APIGatewayProxyResponse{
		StatusCode:      resp.StatusCode,
		Headers:         resp.Headers,
		Body:            resp.Body,
		IsBase64Encoded: resp.IsBase64Encoded,
	}
}

// requestID falls back to a generated id when the event carries none,
// e.g. when invoked directly instead of through API Gateway
func requestID(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// firstOrLast prefers the single-value map and fills keys only present in
// the multi-value map with their last value, matching what API Gateway puts
// in the single-value map itself
func firstOrLast(single map[string]string, multi map[string][]string) map[string]string {
	out := copyMap(single)
	for k, values := range multi {
		if _, ok := out[k]; ok || len(values) == 0 {
			continue
		}
		out[k] = values[len(values)-1]
	}
	return out
}
