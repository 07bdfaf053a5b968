package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers the middleware on e. Order matters: RequestID first so
// every later log line carries the ID, then RequestLogger, then Recover
// closest to the handlers.
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(Chain(log)...)
}

// Chain returns the middleware in Setup order for use on a route group.
func Chain(log zerolog.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(log),
		RequestLogger(log),
		Recover(log),
	}
}
