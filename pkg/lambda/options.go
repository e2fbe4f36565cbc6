package lambda

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Outcome is the branch a dispatch ended in
type Outcome string

const (
	OutcomeHandled  Outcome = "handled"
	OutcomeNotFound Outcome = "not_found"
	OutcomeErrored  Outcome = "errored"
)

// Observer receives every finished dispatch, after defaults were applied
type Observer interface {
	ObserveDispatch(req *Request, resp Response, outcome Outcome, elapsed time.Duration)
}

// Option configures a Router at construction time
type Option func(*options)

type options struct {
	notFound HandlerFunc
	onError  ErrorHandlerFunc
	logger   logrus.FieldLogger
	observer Observer
}

func defaultOptions() *options {
	return &options{
		notFound: DefaultNotFoundHandler,
		onError:  DefaultErrorHandler,
		logger:   logrus.StandardLogger(),
	}
}

// WithNotFoundHandler replaces the default 404 handler. A nil handler is ignored.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(o *options) {
		if h != nil {
			o.notFound = h
		}
	}
}

// WithErrorHandler replaces the default 500 handler. A nil handler is ignored.
func WithErrorHandler(h ErrorHandlerFunc) Option {
	return func(o *options) {
		if h != nil {
			o.onError = h
		}
	}
}

// WithLogger sets the logger used for dispatch and failure entries
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver reports every dispatch to obs
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}
