package lambda

import "context"

// AnyMethod registers a handler for every HTTP method of a path
const AnyMethod = "ANY"

// DefaultStatusCode is used when a handler leaves StatusCode unset
const DefaultStatusCode = 200

// Request represents a platform-agnostic HTTP request for serverless functions.
// It is built once per invocation by an edge adapter and must not be modified afterwards.
type Request struct {
	Path            string            `json:"path"`
	Method          string            `json:"method"`
	Headers         map[string]string `json:"headers"`
	PathParams      map[string]string `json:"path_params"`
	QueryParams     map[string]string `json:"query_params"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"is_base64_encoded"`
	SourceIP        string            `json:"source_ip"`
	RequestID       string            `json:"request_id"`
}

// Response represents a platform-agnostic HTTP response for serverless functions.
// A zero StatusCode and a nil Headers map mean "not set"; see WithDefaults.
type Response struct {
	StatusCode      int               `json:"status_code,omitempty"`
	Headers         map[string]string `json:"headers,omitempty"`
	Body            string            `json:"body,omitempty"`
	IsBase64Encoded bool              `json:"is_base64_encoded,omitempty"`
}

// WithDefaults returns a copy of the response with absent fields filled in:
// status 200 and an empty header map. Body and IsBase64Encoded already
// default to their zero values.
func (r Response) WithDefaults() Response {
	if r.StatusCode == 0 {
		r.StatusCode = DefaultStatusCode
	}
	if r.Headers == nil {
		r.Headers = map[string]string{}
	}
	return r
}

// HandlerFunc handles one normalized request
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// ErrorHandlerFunc turns a recognized handler failure into a response
type ErrorHandlerFunc func(ctx context.Context, req *Request, err error) (*Response, error)

// RequestTransformer maps a platform event into a normalized request. It must not fail.
type RequestTransformer[T any] func(event T) *Request

// ResponseTransformer maps a normalized response back into the platform's response type.
// It receives a response that already went through WithDefaults.
type ResponseTransformer[K any] func(resp Response) K
