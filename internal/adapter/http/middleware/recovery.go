package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/celesia/flight-insights/internal/adapter/http/response"
)

// RecoveryConfig controls what Recover logs.
type RecoveryConfig struct {
	// DisablePrintStack omits the stack trace from the log line
	DisablePrintStack bool
}

// Recover turns a panic in the handler chain into a 500 response and an
// error log line. The server keeps serving.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, RecoveryConfig{})
}

// RecoverWithConfig is Recover with explicit settings.
func RecoverWithConfig(log zerolog.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				event := log.Error().
					Str("request_id", GetRequestID(c)).
					Str("panic", fmt.Sprint(r))
				if !config.DisablePrintStack {
					event = event.Str("stack", string(debug.Stack()))
				}
				event.Msg("Panic recovered")

				if !c.Response().Committed {
					err = response.InternalServerError(c)
				}
			}()

			return next(c)
		}
	}
}
