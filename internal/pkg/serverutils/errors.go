package serverutils

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstream marks failures of a dependency we call (completion
	// backend, event bus). The error middleware answers them with 502.
	ErrUpstream = errors.New("upstream service failed")
	// ErrBadRequest marks input the service rejects after validation.
	ErrBadRequest = errors.New("bad request")
)

func Upstream(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrUpstream, err)
}

func BadRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...))
}
