package lambda

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Router dispatches normalized requests to registered handlers. T is the
// platform event type and K the platform response type.
//
// Routes and fallback handlers are registered during initialization. The
// first dispatch seals the router, after which registration fails with
// ErrRouterSealed. Registration is not synchronized with dispatch, so it
// must finish before concurrent calls to Handle start.
type Router[T, K any] struct {
	routes     *RouteTable
	toRequest  RequestTransformer[T]
	toResponse ResponseTransformer[K]
	notFound   HandlerFunc
	onError    ErrorHandlerFunc
	logger     logrus.FieldLogger
	observer   Observer
	sealed     atomic.Bool
}

// NewRouter creates a router that converts events with toRequest and
// responses with toResponse
func NewRouter[T, K any](toRequest RequestTransformer[T], toResponse ResponseTransformer[K], opts ...Option) *Router[T, K] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Router[T, K]{
		routes:     NewRouteTable(),
		toRequest:  toRequest,
		toResponse: toResponse,
		notFound:   o.notFound,
		onError:    o.onError,
		logger:     o.logger,
		observer:   o.observer,
	}
}

// SetRoute registers handler for the exact path and method. Use AnyMethod
// to match every method of the path.
func (r *Router[T, K]) SetRoute(path, method string, handler HandlerFunc) error {
	if r.sealed.Load() {
		return ErrRouterSealed
	}
	if handler == nil {
		return ErrNilHandler
	}
	r.routes.Set(path, method, handler)
	return nil
}

// SetNotFoundHandler replaces the handler used when no route matches
func (r *Router[T, K]) SetNotFoundHandler(handler HandlerFunc) error {
	if r.sealed.Load() {
		return ErrRouterSealed
	}
	if handler == nil {
		return ErrNilHandler
	}
	r.notFound = handler
	return nil
}

// SetErrorHandler replaces the handler used when a handler fails with an error
func (r *Router[T, K]) SetErrorHandler(handler ErrorHandlerFunc) error {
	if r.sealed.Load() {
		return ErrRouterSealed
	}
	if handler == nil {
		return ErrNilHandler
	}
	r.onError = handler
	return nil
}

// Routes returns the route table. It must be treated as read-only.
func (r *Router[T, K]) Routes() *RouteTable {
	return r.routes
}

// Handle runs one invocation: transform the event, dispatch it and
// transform the response back. Handler failures never escape; panics in
// the transformers do.
func (r *Router[T, K]) Handle(ctx context.Context, event T) K {
	req := r.toRequest(event)
	resp, _ := r.Dispatch(ctx, req)
	return r.toResponse(resp)
}

// Dispatch looks up the handler for req, runs it and falls back to the
// not-found, error and unknown-error handlers as needed. The returned
// response already has its defaults applied.
func (r *Router[T, K]) Dispatch(ctx context.Context, req *Request) (Response, Outcome) {
	r.sealed.Store(true)
	start := time.Now()

	handler, found := r.routes.Find(req.Path, req.Method)
	outcome := OutcomeHandled
	if !found {
		handler = r.notFound
		outcome = OutcomeNotFound
	}

	resp, err := invoke(ctx, handler, req)
	if err != nil {
		outcome = OutcomeErrored
		resp = r.fallback(ctx, req, err)
	}

	resp = resp.WithDefaults()
	elapsed := time.Since(start)

	r.logDispatch(req, resp, outcome, elapsed)
	if r.observer != nil {
		r.observer.ObserveDispatch(req, resp, outcome, elapsed)
	}

	return resp, outcome
}

// fallback converts a handler failure into a response. Recognized errors go
// to the error handler once; anything else, including a failure of the
// error handler itself, ends in the unknown-error response.
func (r *Router[T, K]) fallback(ctx context.Context, req *Request, err error) Response {
	entry := r.logger.WithFields(logrus.Fields{
		"request_id": req.RequestID,
		"method":     req.Method,
		"path":       req.Path,
		"error":      err.Error(),
	})

	if IsUnknown(err) {
		entry.Error("Unrecognized handler failure")
		return unknownErrorResponse(req)
	}
	entry.Error("Handler failed")

	resp, herr := invoke(ctx, func(ctx context.Context, req *Request) (*Response, error) {
		return r.onError(ctx, req, err)
	}, req)
	if herr != nil {
		entry.WithField("error_handler_error", herr.Error()).Error("Error handler failed")
		return unknownErrorResponse(req)
	}

	return resp
}

func (r *Router[T, K]) logDispatch(req *Request, resp Response, outcome Outcome, elapsed time.Duration) {
	fields := logrus.Fields{
		"request_id":  req.RequestID,
		"method":      req.Method,
		"path":        req.Path,
		"source_ip":   req.SourceIP,
		"status_code": resp.StatusCode,
		"outcome":     string(outcome),
		"latency_ms":  float64(elapsed.Nanoseconds()) / 1000000,
	}

	entry := r.logger.WithFields(fields)
	switch {
	case resp.StatusCode >= 500:
		entry.Error("Server error")
	case resp.StatusCode >= 400:
		entry.Warn("Client error")
	default:
		entry.Info("Request completed")
	}
}

// invoke runs h and turns a panic into an error: an error value stays a
// recognized failure, any other value becomes an UnknownFailure.
func invoke(ctx context.Context, h HandlerFunc, req *Request) (resp Response, err error) {
	defer func() {
		if v := recover(); v != nil {
			resp = Response{}
			err = describable(fromPanic(v))
		}
	}()

	var out *Response
	out, err = h(ctx, req)
	if err != nil {
		return Response{}, describable(err)
	}
	if out != nil {
		resp = *out
	}
	return resp, nil
}
