package filters

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownFilter   = errors.New("unknown filter")
	ErrUnknownOption   = errors.New("unknown option")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrOutOfRange      = errors.New("value out of range")
	ErrInvalidChoice   = errors.New("invalid choice")
	ErrMissingRequired = errors.New("missing required option")
	ErrInvalidDef      = errors.New("invalid filter definition")
)

// ConfigError reports a problem with one option of one filter. Option is
// empty when the problem concerns the filter as a whole.
type ConfigError struct {
	Filter string
	Option string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	msg := e.Reason
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Option == "" {
		return fmt.Sprintf("filter %s: %s", e.Filter, msg)
	}
	return fmt.Sprintf("filter %s: option %s: %s", e.Filter, e.Option, msg)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErr(filter, option string, err error, format string, args ...any) *ConfigError {
	return &ConfigError{
		Filter: filter,
		Option: option,
		Reason: fmt.Sprintf(format, args...),
		Err:    err,
	}
}
