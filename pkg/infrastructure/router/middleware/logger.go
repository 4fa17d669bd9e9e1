package middleware

import (
	"todo-app/pkg/infrastructure/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// RequestID tags each request with a ULID, echoed in the X-Request-Id header.
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return ulid.Make().String()
		},
	})
}

// RequestLogger writes one line per request. Failed requests carry the error left by handler.HandleError.
func RequestLogger(logger *zap.SugaredLogger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			err := v.Error
			if stored, ok := c.Get(handler.ErrorKey).(error); ok {
				err = stored
			}

			fields := []interface{}{
				"id", v.RequestID,
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			switch {
			case v.Status >= 500:
				logger.Errorw("request failed", append(fields, "err", err)...)
			case err != nil:
				logger.Warnw("request rejected", append(fields, "err", err)...)
			default:
				logger.Infow("handled", fields...)
			}
			return nil
		},
	})
}
