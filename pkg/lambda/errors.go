package lambda

import (
	"errors"
	"fmt"
)

// Common router error types
var (
	ErrRouterSealed = errors.New("router is sealed: routes and fallback handlers must be registered before the first request")
	ErrNilHandler   = errors.New("handler must not be nil")
)

// UnknownFailure is a failure without a usable message. Handlers return it
// through Unknown when something unexpected happened; the router also uses
// it for panics whose value is not an error. Its content never reaches the
// response.
type UnknownFailure struct {
	Value interface{}
}

func (e *UnknownFailure) Error() string {
	return fmt.Sprintf("unknown failure: %v", e.Value)
}

// Unknown wraps v as an unrecognized failure
func Unknown(v interface{}) error {
	return &UnknownFailure{Value: v}
}

// IsUnknown returns true if err is, or wraps, an unrecognized failure
func IsUnknown(err error) bool {
	var unknown *UnknownFailure
	return errors.As(err, &unknown)
}

// PanicError is a recovered panic whose value was an error
type PanicError struct {
	Err error
}

func (e *PanicError) Error() string {
	return e.Err.Error()
}

func (e *PanicError) Unwrap() error {
	return e.Err
}

// fromPanic classifies a recovered panic value
func fromPanic(v interface{}) error {
	if err, ok := v.(error); ok {
		return &PanicError{Err: err}
	}
	return &UnknownFailure{Value: v}
}

// describable returns err unchanged when its Error method works. An error
// whose Error method panics, such as a nil pointer held in a non-nil error
// interface, carries no usable message and becomes an UnknownFailure.
func describable(err error) (out error) {
	defer func() {
		if v := recover(); v != nil {
			out = &UnknownFailure{Value: v}
		}
	}()
	_ = err.Error()
	return err
}
