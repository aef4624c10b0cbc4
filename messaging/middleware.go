package messaging

import (
	"log/slog"
	"time"
)

// Middleware wraps the entry of a channel at dispatch time
type Middleware func(id string, next Callable) Callable

// WithMiddleware adds dispatch middleware to the instance
func WithMiddleware(middleware ...Middleware) Option {
	return func(i *Instance) {
		i.middleware = append(i.middleware, middleware...)
	}
}

// LoggingMiddleware logs every dispatch at debug level
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(id string, next Callable) Callable {
		return func(args ...any) {
			start := time.Now()
			next(args...)
			logger.Debug("dispatched channel",
				"channel", id,
				"args", len(args),
				"duration", time.Since(start),
			)
		}
	}
}

// buildMiddlewareChain wraps call so that the first middleware runs outermost
func (i *Instance) buildMiddlewareChain(id string, call Callable) Callable {
	if len(i.middleware) == 0 {
		return call
	}

	result := call
	for idx := len(i.middleware) - 1; idx >= 0; idx-- {
		result = i.middleware[idx](id, result)
	}

	return result
}
