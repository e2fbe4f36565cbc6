package apigateway

import (
	"context"
	"strings"

	"serverless-router/pkg/lambda"

	"github.com/aws/aws-lambda-go/events"
)

// HTTPRouter routes API Gateway HTTP API (payload format 2.0) events
type HTTPRouter = lambda.Router[events.APIGatewayV2HTTPRequest, events.APIGatewayV2HTTPResponse]

// NewHTTPRouter creates a router for HTTP API events
func NewHTTPRouter(opts ...lambda.Option) *HTTPRouter {
	return lambda.NewRouter(ToRequestV2, FromResponseV2, opts...)
}

// HTTPHandler adapts the router to the signature expected by lambda.Start
func HTTPHandler(r *HTTPRouter) func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		return r.Handle(ctx, event), nil
	}
}

// ToRequestV2 converts an HTTP API event to a normalized request.
// Payload 2.0 moves cookies out of the headers; they are folded back into Cookie.
func ToRequestV2(event events.APIGatewayV2HTTPRequest) *lambda.Request {
	headers := copyMap(event.Headers)
	if len(event.Cookies) > 0 {
		if _, ok := headers["cookie"]; !ok {
			headers["cookie"] = strings.Join(event.Cookies, "; ")
		}
	}

	path := event.RawPath
	if path == "" {
		path = event.RequestContext.HTTP.Path
	}

	return &lambda.Request{
		Path:            path,
		Method:          event.RequestContext.HTTP.Method,
		Headers:         headers,
		PathParams:      copyMap(event.PathParameters),
		QueryParams:     copyMap(event.QueryStringParameters),
		Body:            event.Body,
		IsBase64Encoded: event.IsBase64Encoded,
		SourceIP:        event.RequestContext.HTTP.SourceIP,
		RequestID:       requestID(event.RequestContext.RequestID),
	}
}

// FromResponseV2 converts a normalized response to an HTTP API response
func FromResponseV2(resp lambda.Response) events.APIGatewayV2HTTPResponse {
	resp = resp.WithDefaults()
	return events.APIGatewayV2HTTPResponse{
		StatusCode:      resp.StatusCode,
		Headers:         resp.Headers,
		Body:            resp.Body,
		IsBase64Encoded: resp.IsBase64Encoded,
	}
}
