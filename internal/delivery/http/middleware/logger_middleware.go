package middleware

import (
	"log/slog"
	"time"

	"fogon/config"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware emits one detailed line per request when debug is on.
// The always-on structured access log is slog-echo's; this adds latency
// and caller detail for local diagnosis without doubling production logs.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware builds the middleware from the environment config.
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle wraps next with per-request logging. Outside debug it is a
// pass-through.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.debug {
		return next
	}

	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		req := c.Request()
		res := c.Response()

		attrs := []slog.Attr{
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", res.Status),
			slog.Duration("latency", time.Since(start)),
			slog.String("remote_ip", c.RealIP()),
		}
		if query := req.URL.RawQuery; query != "" {
			attrs = append(attrs, slog.String("query", query))
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}

		m.logger.LogAttrs(req.Context(), levelForStatus(res.Status), "HTTP request", attrs...)

		return err
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
