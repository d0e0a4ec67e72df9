package gs1ai

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/gs1ai/gs1ai/validate"
)

// Option configures a Context, following the usual functional-options
// idiom: WithX constructors returning a closure over unexported fields.
type Option func(*Context)

// WithLogger attaches a *logrus.Logger that the Context uses for
// Debug-level diagnostic tracing at each parse stage. A nil logger,
// or no WithLogger option at all, leaves the Context with a discard logger: logging is always opt-in and
// never required for correctness.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Context) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithUnknownAIs permits AI codes absent from the table to be vivified
// into synthetic entries rather than rejected outright.
func WithUnknownAIs() Option {
	return func(c *Context) { c.permitUnknownAIs = true }
}

// WithZeroSuppressedGTINPadding permits legacy zero-suppressed GTIN-8/12/13
// values found in a DL URI path or query to be left-zero-padded to 14
// digits.
func WithZeroSuppressedGTINPadding() Option {
	return func(c *Context) { c.permitZeroSuppressedGTIN = true }
}

// WithValidators overrides the Context's cross-AI validator registry.
// Absent this option, New builds the default registry (validate.NewRegistry).
func WithValidators(registry *validate.Registry) Option {
	return func(c *Context) {
		if registry != nil {
			c.validators = registry
		}
	}
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
