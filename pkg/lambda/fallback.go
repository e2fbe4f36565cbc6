package lambda

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"
)

// FallbackBody is the JSON body written by the built-in fallback handlers
type FallbackBody struct {
	Path      string `json:"path"`
	Method    string `json:"method"`
	RequestID string `json:"requestId,omitempty"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
}

// JSON builds a response with v encoded as the body
func JSON(statusCode int, v interface{}) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}, nil
}

// DefaultNotFoundHandler answers 404 with the routing context of the request
func DefaultNotFoundHandler(ctx context.Context, req *Request) (*Response, error) {
	return JSON(http.StatusNotFound, FallbackBody{
		Path:      req.Path,
		Method:    req.Method,
		RequestID: req.RequestID,
		Message:   http.StatusText(http.StatusNotFound),
	})
}

// DefaultErrorHandler answers 500 and includes the error message
func DefaultErrorHandler(ctx context.Context, req *Request, err error) (*Response, error) {
	return JSON(http.StatusInternalServerError, FallbackBody{
		Path:      req.Path,
		Method:    req.Method,
		RequestID: req.RequestID,
		Message:   http.StatusText(http.StatusInternalServerError),
		Error:     err.Error(),
	})
}

// unknownErrorResponse is the last resort. It never fails and never looks
// at the failure that led here.
func unknownErrorResponse(req *Request) Response {
	body, err := json.Marshal(FallbackBody{
		Path:    req.Path,
		Method:  req.Method,
		Message: http.StatusText(http.StatusInternalServerError),
		Error:   "Unknown",
	})
	if err != nil {
		body = []byte(`{"message":"Internal Server Error","error":"Unknown"}`)
	}
	return Response{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
